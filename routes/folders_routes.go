package routes

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/controllers"
	"vaultdrive/middleware"
)

func RegisterFolderRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	folderController := controllers.NewFolderController(container.FolderService, container.SearchService, container.ArchiveService)
	gate := middleware.RequireAdmin(container.RoleService)

	folders := rg.Group("/folders")
	{
		// Reads are open in both modes
		folders.GET("/:id", folderController.GetFolder)                 // GET /folders/:id
		folders.GET("/:id/contents", folderController.GetFolderContents) // GET /folders/:id/contents?q=
		folders.GET("/:id/breadcrumb", folderController.GetBreadcrumb)  // GET /folders/:id/breadcrumb
		folders.GET("/:id/download", folderController.DownloadFolder)   // GET /folders/:id/download

		// Mutations sit behind the role gate
		folders.POST("/", gate, folderController.CreateFolder)                    // POST /folders
		folders.PATCH("/:id/rename", gate, folderController.RenameFolder)         // PATCH /folders/:id/rename
		folders.PATCH("/:id/background", gate, folderController.SetBackground)    // PATCH /folders/:id/background
		folders.DELETE("/:id", gate, folderController.DeleteFolder)               // DELETE /folders/:id (empty folders only)
	}
}
