package session

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
)

// View is the verified session state handed to pages and to the client.
// It only drives UI conditionals; every request is re-authorized by the gate.
type View struct {
	Authenticated bool        `json:"authenticated"`
	EmployeeID    string      `json:"employee_id,omitempty"`
	Access        domain.Role `json:"access,omitempty"`
	IsAdmin       bool        `json:"is_admin"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
}

// Anonymous is the view for a request without a verified token.
func Anonymous() View {
	return View{}
}

// FromPrincipal builds the view for a verified caller. A nil principal is anonymous.
func FromPrincipal(p *auth.Principal) View {
	if p == nil {
		return Anonymous()
	}
	exp := p.ExpiresAt
	return View{
		Authenticated: true,
		EmployeeID:    p.EmployeeID,
		Access:        p.Role,
		IsAdmin:       p.IsAdmin(),
		ExpiresAt:     &exp,
	}
}
