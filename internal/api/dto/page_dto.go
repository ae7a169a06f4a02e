package dto

import "github.com/spec-kit/employee-directory/internal/session"

// PageResponse describes a page the gate let through.
type PageResponse struct {
	Page    string       `json:"page"`
	Session session.View `json:"session"`
}
