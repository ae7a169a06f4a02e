package dto

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// LoginRequest payload for POST /api/login.
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token      string      `json:"token"`
	ExpiresAt  time.Time   `json:"expires_at"`
	EmployeeID string      `json:"employee_id"`
	Access     domain.Role `json:"access"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
