package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// InvalidCredentialsMessage is shared by unknown identifiers and wrong secrets.
const InvalidCredentialsMessage = "Invalid employee_id or password"

// Session is the outcome of a successful login.
type Session struct {
	EmployeeID string
	Role       domain.Role
	Token      string
	ExpiresAt  time.Time
}

// AuthService coordinates login.
type AuthService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(accounts repository.AccountRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, logger: logger, now: time.Now}
}

// Login checks the secret against the credential store and issues a session token.
func (s *AuthService) Login(ctx context.Context, employeeID, password string) (*Session, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || password == "" {
		return nil, apperrors.NewValidationError("Employee ID and password are required")
	}

	account, err := s.accounts.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.CompareDummy(password)
			return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
		}
		s.logger.Error("credential lookup failed", zap.Error(err))
		return nil, apperrors.NewUpstreamError("", err)
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrSecretMismatch) {
			s.logger.Warn("stored secret is not a valid hash", zap.String("employee_id", account.EmployeeID))
		}
		return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}

	token, exp, err := s.tokens.Issue(account.EmployeeID, account.Role, s.now())
	if err != nil {
		s.logger.Error("token issue failed", zap.String("employee_id", account.EmployeeID), zap.Error(err))
		return nil, apperrors.NewUpstreamError("", err)
	}
	return &Session{EmployeeID: account.EmployeeID, Role: account.Role, Token: token, ExpiresAt: exp}, nil
}

// Logout is a no-op for stateless tokens: there is no server-side revocation
// list, so a copied token stays valid until it expires.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
