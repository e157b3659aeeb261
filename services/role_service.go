package services

import (
	"fmt"

	"vaultdrive/models"
	"vaultdrive/storage"
)

// RoleService owns the advisory admin/user mode. Switching is open to anyone;
// the value only decides whether mutation endpoints accept requests.
type RoleService struct {
	library *storage.Library
}

func NewRoleService(library *storage.Library) *RoleService {
	return &RoleService{library: library}
}

func (s *RoleService) Current() models.Role {
	return s.library.Role()
}

// Switch parses, persists and returns the new role.
func (s *RoleService) Switch(role string) (models.Role, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return "", err
	}
	if err := s.library.SetRole(parsed); err != nil {
		return "", fmt.Errorf("failed to persist role: %w", err)
	}
	return parsed, nil
}
