package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// AccountInput carries a create or update request.
type AccountInput struct {
	EmployeeID string
	Password   string
	Access     string
}

// AccountService manages credential records. Every operation requires an admin actor.
type AccountService struct {
	accounts   repository.AccountRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewAccountService constructs the service.
func NewAccountService(accounts repository.AccountRepository, bcryptCost int, logger *zap.Logger) *AccountService {
	return &AccountService{accounts: accounts, bcryptCost: bcryptCost, logger: logger}
}

func requireAdmin(actor *auth.Principal) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !actor.IsAdmin() {
		return apperrors.NewForbidden("Forbidden")
	}
	return nil
}

// List returns every account ordered by identifier.
func (s *AccountService) List(ctx context.Context, actor *auth.Principal) ([]domain.AccountSummary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, s.upstream("list accounts", err)
	}
	return accounts, nil
}

// Create adds a credential record with a hashed secret.
func (s *AccountService) Create(ctx context.Context, actor *auth.Principal, in AccountInput) (*domain.AccountSummary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" || in.Password == "" || in.Access == "" {
		return nil, apperrors.NewValidationError("employee_id, password and access_type are required")
	}
	role, ok := domain.ParseRole(in.Access)
	if !ok {
		return nil, apperrors.NewValidationError("access_type must be admin or regular")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, s.upstream("hash secret", err)
	}
	account := &domain.Account{EmployeeID: employeeID, PasswordHash: hash, Role: role}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("User already exists")
		}
		return nil, s.upstream("create account", err)
	}
	return &domain.AccountSummary{EmployeeID: employeeID, Role: role}, nil
}

// Update changes the secret and/or role of an existing account. Omitted
// fields keep their stored values.
func (s *AccountService) Update(ctx context.Context, actor *auth.Principal, in AccountInput) (*domain.AccountSummary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, apperrors.NewValidationError("employee_id is required")
	}
	if in.Password == "" && in.Access == "" {
		return nil, apperrors.NewValidationError("password or access_type is required")
	}

	account, err := s.accounts.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, s.upstream("load account", err)
	}

	if in.Access != "" {
		role, ok := domain.ParseRole(in.Access)
		if !ok {
			return nil, apperrors.NewValidationError("access_type must be admin or regular")
		}
		account.Role = role
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return nil, s.upstream("hash secret", err)
		}
		account.PasswordHash = hash
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, s.upstream("update account", err)
	}
	return &domain.AccountSummary{EmployeeID: account.EmployeeID, Role: account.Role}, nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, actor *auth.Principal, employeeID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return apperrors.NewValidationError("employee_id is required")
	}
	if err := s.accounts.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user")
		}
		return s.upstream("delete account", err)
	}
	return nil
}

func (s *AccountService) upstream(op string, err error) error {
	s.logger.Error("account operation failed", zap.String("op", op), zap.Error(err))
	return apperrors.NewUpstreamError("", err)
}
