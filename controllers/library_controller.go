package controllers

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/models"
	"vaultdrive/services"
	"vaultdrive/utils"
)

type LibraryController struct {
	searchService *services.SearchService
}

func NewLibraryController(searchService *services.SearchService) *LibraryController {
	return &LibraryController{searchService: searchService}
}

// GetRootContents lists the root level, filtered by the optional q parameter.
func (lc *LibraryController) GetRootContents(c *gin.Context) {
	contents, err := lc.searchService.Contents(nil, c.Query("q"))
	if err != nil {
		handleError(c, err, "Failed to retrieve library contents")
		return
	}
	utils.SuccessResponse(c, "Library contents retrieved successfully", contents)
}

// GetBackgroundPresets returns the curated palette for folder backgrounds.
func (lc *LibraryController) GetBackgroundPresets(c *gin.Context) {
	utils.SuccessResponse(c, "Background presets retrieved successfully", models.DefaultBackgroundPresets())
}
