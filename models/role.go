package models

import "fmt"

// Role is the advisory mode toggle. It gates mutation endpoints but is not an
// identity or access-control system; anyone can switch it.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a stored or submitted role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role: %q (allowed: admin, user)", s)
}

// CanMutate reports whether mutation endpoints are available in this mode.
func (r Role) CanMutate() bool {
	return r == RoleAdmin
}
