package domain

import "strings"

// Role enumerates account access levels.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// ParseRole maps a stored or submitted value onto a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleRegular:
		return RoleRegular, true
	default:
		return "", false
	}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// IsAdmin reports whether the role may manage accounts.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
