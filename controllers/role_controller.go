package controllers

import (
	"github.com/gin-gonic/gin"

	"vaultdrive/services"
	"vaultdrive/utils"
)

type RoleController struct {
	roleService *services.RoleService
}

func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// GetRole
func (rc *RoleController) GetRole(c *gin.Context) {
	utils.SuccessResponse(c, "Role retrieved successfully", gin.H{
		"role": rc.roleService.Current(),
	})
}

// SwitchRole is deliberately not behind the admin gate: the toggle is
// advisory, not an authentication boundary.
func (rc *RoleController) SwitchRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data", err.Error())
		return
	}

	role, err := rc.roleService.Switch(req.Role)
	if err != nil {
		utils.BadRequestResponse(c, "Failed to switch role", err.Error())
		return
	}

	utils.SuccessResponse(c, "Role switched successfully", gin.H{"role": role})
}
