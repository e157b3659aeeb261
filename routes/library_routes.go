package routes

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/controllers"
)

func RegisterLibraryRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	libraryController := controllers.NewLibraryController(container.SearchService)
	roleController := controllers.NewRoleController(container.RoleService)

	rg.GET("/library", libraryController.GetRootContents)        // GET /library?q=
	rg.GET("/backgrounds", libraryController.GetBackgroundPresets) // GET /backgrounds

	// The role toggle is open by design; it is a mode switch, not a login.
	rg.GET("/role", roleController.GetRole) // GET /role
	rg.PUT("/role", roleController.SwitchRole) // PUT /role
}
