package domain

import "time"

// Identity is what a verified session token asserts about its bearer.
type Identity struct {
	EmployeeID string
	Role       Role
	TokenID    string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
