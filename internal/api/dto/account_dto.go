package dto

import "github.com/spec-kit/employee-directory/internal/domain"

// AccountRequest is the body for POST, PUT and DELETE /api/users.
type AccountRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
	AccessType string `json:"access_type"`
}

// AccountResponse never includes the secret.
type AccountResponse struct {
	EmployeeID string      `json:"employee_id"`
	Access     domain.Role `json:"access"`
}

// NewAccountResponse maps a summary to its wire form.
func NewAccountResponse(a domain.AccountSummary) AccountResponse {
	return AccountResponse{EmployeeID: a.EmployeeID, Access: a.Role}
}

// NewAccountListResponse maps summaries, preserving order.
func NewAccountListResponse(accounts []domain.AccountSummary) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}
