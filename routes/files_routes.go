package routes

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/controllers"
	"vaultdrive/middleware"
)

func RegisterFileRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	fileController := controllers.NewFileController(container.FileService)
	gate := middleware.RequireAdmin(container.RoleService)

	files := rg.Group("/files")
	{
		files.GET("/:id/download", fileController.DownloadFile) // GET /files/:id/download

		files.POST("/", gate, fileController.UploadFiles)   // POST /files (multipart)
		files.DELETE("/:id", gate, fileController.DeleteFile) // DELETE /files/:id
	}
}
