package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository/repotest"
)

var (
	adminActor   = &auth.Principal{Identity: domain.Identity{EmployeeID: "E001", Role: domain.RoleAdmin}}
	regularActor = &auth.Principal{Identity: domain.Identity{EmployeeID: "E002", Role: domain.RoleRegular}}
)

func newAccountService(accounts *repotest.Accounts) *AccountService {
	return NewAccountService(accounts, bcrypt.MinCost, zap.NewNop())
}

func TestAccountService_RequiresAdmin(t *testing.T) {
	svc := newAccountService(repotest.NewAccounts())
	ctx := context.Background()

	_, err := svc.List(ctx, regularActor)
	status, _ := statusOf(t, err)
	assert.Equal(t, http.StatusForbidden, status)

	_, err = svc.Create(ctx, nil, AccountInput{EmployeeID: "E010", Password: "p", Access: "regular"})
	status, _ = statusOf(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)

	err = svc.Delete(ctx, regularActor, "E001")
	status, _ = statusOf(t, err)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAccountService_CreateHashesSecret(t *testing.T) {
	accounts := repotest.NewAccounts()
	svc := newAccountService(accounts)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor, AccountInput{EmployeeID: " E010 ", Password: "pw", Access: "Regular"})
	require.NoError(t, err)
	assert.Equal(t, "E010", created.EmployeeID)
	assert.Equal(t, domain.RoleRegular, created.Role)

	stored, err := accounts.GetByEmployeeID(ctx, "E010")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "pw"))
}

func TestAccountService_CreateValidation(t *testing.T) {
	svc := newAccountService(repotest.NewAccounts(domain.Account{EmployeeID: "E001", PasswordHash: "x", Role: domain.RoleAdmin}))
	ctx := context.Background()

	tests := []struct {
		name   string
		in     AccountInput
		status int
	}{
		{"missing id", AccountInput{Password: "p", Access: "admin"}, http.StatusBadRequest},
		{"missing password", AccountInput{EmployeeID: "E011", Access: "admin"}, http.StatusBadRequest},
		{"unknown role", AccountInput{EmployeeID: "E011", Password: "p", Access: "root"}, http.StatusBadRequest},
		{"duplicate", AccountInput{EmployeeID: "E001", Password: "p", Access: "admin"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, adminActor, tt.in)
			status, _ := statusOf(t, err)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestAccountService_UpdateKeepsOmittedFields(t *testing.T) {
	accounts := repotest.NewAccounts(domain.Account{EmployeeID: "E002", PasswordHash: mustHash(t, "old"), Role: domain.RoleRegular})
	svc := newAccountService(accounts)
	ctx := context.Background()

	updated, err := svc.Update(ctx, adminActor, AccountInput{EmployeeID: "E002", Access: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)

	stored, err := accounts.GetByEmployeeID(ctx, "E002")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "old"))

	_, err = svc.Update(ctx, adminActor, AccountInput{EmployeeID: "E002", Password: "new"})
	require.NoError(t, err)
	stored, err = accounts.GetByEmployeeID(ctx, "E002")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "new"))
	assert.Equal(t, domain.RoleAdmin, stored.Role)
}

func TestAccountService_UpdateAndDeleteMissing(t *testing.T) {
	svc := newAccountService(repotest.NewAccounts())
	ctx := context.Background()

	_, err := svc.Update(ctx, adminActor, AccountInput{EmployeeID: "NOPE", Access: "admin"})
	status, _ := statusOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	err = svc.Delete(ctx, adminActor, "NOPE")
	status, _ = statusOf(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	err = svc.Delete(ctx, adminActor, "")
	status, _ = statusOf(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAccountService_StoreFailure(t *testing.T) {
	accounts := repotest.NewAccounts()
	accounts.Err = errors.New("pq: relation \"users\" does not exist")
	svc := newAccountService(accounts)

	_, err := svc.List(context.Background(), adminActor)
	status, msg := statusOf(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", msg)
}
