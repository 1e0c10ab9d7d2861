package models

import "fmt"

// Role is the internal authorization level derived from guild membership.
type Role string

const (
	RoleStaff Role = "staff"
	RoleElite Role = "elite"
	RoleBot   Role = "bot"
)

// ParseRole converts the persisted form of a role back into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff, RoleElite, RoleBot:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}
