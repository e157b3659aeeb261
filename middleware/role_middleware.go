package middleware

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/services"
	"vaultdrive/utils"
)

// RequireAdmin rejects mutation requests while the role gate is in user mode.
// The gate is advisory (anyone may switch the role back), but the rejection
// happens here, in front of the store, not in a rendering layer.
func RequireAdmin(roleService *services.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roleService.Current().CanMutate() {
			utils.ForbiddenResponse(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
