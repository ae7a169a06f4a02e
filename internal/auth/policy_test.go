package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy_Lookup(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		path    string
		class   RouteClass
		context RouteContext
	}{
		{"/login", ClassPublic, ContextPage},
		{"/employeeTable", ClassAuthenticated, ContextPage},
		{"/manageUser", ClassAdmin, ContextPage},
		{"/api/users", ClassAdmin, ContextAPI},
		{"/api/employees", ClassAuthenticated, ContextAPI},
		{"/api/login", ClassPublic, ContextAPI},
	}
	for _, tt := range tests {
		rule, ok := p.Lookup(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.class, rule.Class, tt.path)
		assert.Equal(t, tt.context, rule.Context, tt.path)
	}

	_, ok := p.Lookup("/health/live")
	assert.False(t, ok)
}

func TestLookup_IgnoresCaseAndTrailingSlash(t *testing.T) {
	p := DefaultPolicy()

	for _, path := range []string{"/API/USERS", "/api/users/", "/ManageUser"} {
		rule, ok := p.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, ClassAdmin, rule.Class, path)
	}
}

func TestLoadPolicy_EmptyPathUsesDefault(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, "/login", p.LoginPath)
	assert.Len(t, p.Routes, len(DefaultPolicy().Routes))
}

func TestLoadPolicy_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
landing_path: /employeeTable
routes:
  - path: /login
    class: public
    context: page
  - path: /reports
    class: admin
    context: page
  - path: /api/users
    class: admin
    context: api
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, "/login", p.LoginPath)
	assert.Equal(t, "/employeeTable", p.LandingPath)

	rule, ok := p.Lookup("/reports")
	require.True(t, ok)
	assert.Equal(t, ClassAdmin, rule.Class)

	_, ok = p.Lookup("/about")
	assert.False(t, ok)
}

func TestLoadPolicy_RejectsUnknownClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
routes:
  - path: /reports
    class: superuser
    context: page
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadPolicy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown class")
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	p := &PolicyTable{
		LoginPath:   "/login",
		LandingPath: "/about",
		Routes: []RouteRule{
			{Path: "/about", Class: ClassAuthenticated, Context: ContextPage},
			{Path: "/About/", Class: ClassPublic, Context: ContextPage},
		},
	}
	require.Error(t, p.Validate())
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
