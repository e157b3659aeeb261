// routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/services"
	"vaultdrive/storage"
)

// ServiceContainer holds all services and dependencies
type ServiceContainer struct {
	Library        *storage.Library
	FolderService  *services.FolderService
	FileService    *services.FileService
	SearchService  *services.SearchService
	ArchiveService *services.ArchiveService
	RoleService    *services.RoleService
}

// NewServiceContainer wires every service onto one shared library instance.
func NewServiceContainer(library *storage.Library, maxFileSize int64) *ServiceContainer {
	folderService := services.NewFolderService(library)

	return &ServiceContainer{
		Library:        library,
		FolderService:  folderService,
		FileService:    services.NewFileService(library, maxFileSize),
		SearchService:  services.NewSearchService(library, folderService),
		ArchiveService: services.NewArchiveService(library),
		RoleService:    services.NewRoleService(library),
	}
}

// SetupRoutes configures all API routes for the application
// This function is called from main.go after middleware is already set up
func SetupRoutes(api *gin.RouterGroup, container *ServiceContainer) {
	RegisterLibraryRoutes(api, container)
	RegisterFolderRoutes(api, container)
	RegisterFileRoutes(api, container)
}
