package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
)

func TestFromPrincipal(t *testing.T) {
	exp := time.Unix(1_700_000_900, 0)
	view := FromPrincipal(&auth.Principal{Identity: domain.Identity{EmployeeID: "E001", Role: domain.RoleAdmin, ExpiresAt: exp}})

	assert.True(t, view.Authenticated)
	assert.True(t, view.IsAdmin)
	assert.Equal(t, "E001", view.EmployeeID)
	require.NotNil(t, view.ExpiresAt)
	assert.Equal(t, exp, *view.ExpiresAt)
}

func TestFromPrincipal_Regular(t *testing.T) {
	view := FromPrincipal(&auth.Principal{Identity: domain.Identity{EmployeeID: "E002", Role: domain.RoleRegular}})
	assert.True(t, view.Authenticated)
	assert.False(t, view.IsAdmin)
	assert.Equal(t, domain.RoleRegular, view.Access)
}

func TestFromPrincipal_Nil(t *testing.T) {
	assert.Equal(t, Anonymous(), FromPrincipal(nil))
	assert.False(t, FromPrincipal(nil).Authenticated)
}
