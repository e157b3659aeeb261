package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vaultdrive/services"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

type FileController struct {
	fileService *services.FileService
}

func NewFileController(fileService *services.FileService) *FileController {
	return &FileController{fileService: fileService}
}

// UploadFiles accepts a multipart batch under files[] with an optional
// folder_id form value naming the destination folder.
func (fc *FileController) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
		return
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No files provided", nil)
		return
	}

	var folderID *string
	if v := c.PostForm("folder_id"); v != "" {
		folderID = &v
	}

	result, err := fc.fileService.UploadFiles(c.Request.Context(), files, folderID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			utils.NotFoundResponse(c, "Destination folder not found")
		case strings.Contains(err.Error(), "exceeds maximum allowed size"):
			utils.PayloadTooLargeResponse(c, err.Error())
		default:
			utils.BadRequestResponse(c, "Failed to upload files", err.Error())
		}
		return
	}

	utils.SuccessResponse(c, "Files uploaded successfully", result)
}

// DownloadFile streams the decoded payload under the stored name and type.
func (fc *FileController) DownloadFile(c *gin.Context) {
	name, mimeType, payload, err := fc.fileService.DownloadFile(c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to download file")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, mimeType, payload)
}

// DeleteFile
func (fc *FileController) DeleteFile(c *gin.Context) {
	if err := fc.fileService.DeleteFile(c.Param("id")); err != nil {
		handleError(c, err, "Failed to delete file")
		return
	}
	utils.SuccessResponse(c, "File deleted successfully", nil)
}
