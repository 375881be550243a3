package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. Anything outside the three
// constants is rejected at the boundary by ParseRole.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleSurveyor Role = "SURVEYOR"
)

// ParseRole normalizes raw input to one of the known roles.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleSurveyor:
		return RoleSurveyor, nil
	default:
		return "", fmt.Errorf("invalid role: %q", raw)
	}
}

// RequiresKYC reports whether accounts with this role must complete
// KYC before accessing their workspace.
func (r Role) RequiresKYC() bool {
	return r == RoleSurveyor
}

func (r Role) String() string {
	return string(r)
}
