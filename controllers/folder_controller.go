package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vaultdrive/services"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

type FolderController struct {
	folderService  *services.FolderService
	searchService  *services.SearchService
	archiveService *services.ArchiveService
}

func NewFolderController(folderService *services.FolderService, searchService *services.SearchService, archiveService *services.ArchiveService) *FolderController {
	return &FolderController{
		folderService:  folderService,
		searchService:  searchService,
		archiveService: archiveService,
	}
}

// Unified error handler
func handleError(c *gin.Context, err error, defaultMessage string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.NotFoundResponse(c, defaultMessage+": not found")
	case errors.Is(err, storage.ErrFolderNotEmpty):
		utils.ConflictResponse(c, "Folder is not empty; delete its files and subfolders first", err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, defaultMessage, err.Error())
	default:
		utils.InternalServerErrorResponse(c, defaultMessage, err.Error())
	}
}

// CreateFolder
func (fc *FolderController) CreateFolder(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required,min=1,max=255"`
		ParentID *string `json:"parent_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data", err.Error())
		return
	}

	folder, err := fc.folderService.CreateFolder(req.Name, req.ParentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Parent folder not found")
			return
		}
		handleError(c, err, "Failed to create folder")
		return
	}

	utils.CreatedResponse(c, "Folder created successfully", folder)
}

// GetFolder
func (fc *FolderController) GetFolder(c *gin.Context) {
	folder, err := fc.folderService.GetFolder(c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to retrieve folder")
		return
	}
	utils.SuccessResponse(c, "Folder retrieved successfully", folder)
}

// GetFolderContents returns the direct children, filtered by the optional
// q parameter.
func (fc *FolderController) GetFolderContents(c *gin.Context) {
	folderID := c.Param("id")
	contents, err := fc.searchService.Contents(&folderID, c.Query("q"))
	if err != nil {
		handleError(c, err, "Failed to retrieve folder contents")
		return
	}
	utils.SuccessResponse(c, "Folder contents retrieved successfully", contents)
}

// GetBreadcrumb
func (fc *FolderController) GetBreadcrumb(c *gin.Context) {
	chain, err := fc.folderService.Breadcrumb(c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to build breadcrumb")
		return
	}
	utils.SuccessResponse(c, "Breadcrumb retrieved successfully", chain)
}

// RenameFolder
func (fc *FolderController) RenameFolder(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,min=1,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data", err.Error())
		return
	}

	if err := fc.folderService.RenameFolder(c.Param("id"), req.Name); err != nil {
		handleError(c, err, "Failed to rename folder")
		return
	}
	utils.SuccessResponse(c, "Folder renamed successfully", nil)
}

// SetBackground
func (fc *FolderController) SetBackground(c *gin.Context) {
	var req struct {
		Background string `json:"background" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data", err.Error())
		return
	}

	if err := fc.folderService.SetBackground(c.Param("id"), req.Background); err != nil {
		handleError(c, err, "Failed to change folder background")
		return
	}
	utils.SuccessResponse(c, "Folder background changed successfully", nil)
}

// DeleteFolder refuses non-empty folders.
func (fc *FolderController) DeleteFolder(c *gin.Context) {
	if err := fc.folderService.DeleteFolder(c.Param("id")); err != nil {
		handleError(c, err, "Failed to delete folder")
		return
	}
	utils.SuccessResponse(c, "Folder deleted successfully", nil)
}

// DownloadFolder streams the subtree as a zip.
func (fc *FolderController) DownloadFolder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Minute)
	defer cancel()

	if err := fc.archiveService.DownloadFolder(ctx, c.Writer, c.Param("id")); err != nil {
		if !c.Writer.Written() {
			handleError(c, err, "Failed to download folder")
			return
		}
		utils.LogError("error streaming folder zip for "+c.Param("id"), err)
		c.Status(http.StatusInternalServerError)
	}
}
