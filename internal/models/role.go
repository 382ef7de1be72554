package models

import (
	"errors"
	"strconv"
	"strings"
)

// Role is the access level assigned to a generated account.
type Role string

const (
	RoleAdministrator     Role = "Administrator"
	RoleDataAdministrator Role = "Data Administrator"
	RoleDataEditor        Role = "Data Editor"
	RoleDataViewer        Role = "Data Viewer"
)

var ErrInvalidRole = errors.New("invalid role")

var roles = []Role{RoleAdministrator, RoleDataAdministrator, RoleDataEditor, RoleDataViewer}

// Roles returns the allowed roles in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func (r Role) Valid() bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole accepts a role name (case-insensitive) or its 1-based position
// in Roles().
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(roles) {
			return "", ErrInvalidRole
		}
		return roles[n-1], nil
	}
	for _, r := range roles {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}
