package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// DefaultTokenTTL is the session lifetime when none is configured.
const DefaultTokenTTL = 15 * time.Minute

var (
	// ErrUnauthenticated is matched by every verification failure.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrTokenInvalid marks malformed, forged or wrongly-signed tokens.
	ErrTokenInvalid = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	// ErrTokenExpired marks well-signed tokens past their expiry.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrUnauthenticated)
)

// TokenManager handles issuing and validating session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. An empty secret is rejected so a
// misconfigured process never signs with a guessable key.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims describes the token payload.
type Claims struct {
	EmployeeID string      `json:"employee_id"`
	Access     domain.Role `json:"access"`
	jwt.RegisteredClaims
}

// Issue signs a token for the identifier valid from now until now+TTL.
// Claims carry whole seconds, so now is truncated first and exp-iat is exactly TTL.
func (tm *TokenManager) Issue(employeeID string, role domain.Role, now time.Time) (string, time.Time, error) {
	if employeeID == "" {
		return "", time.Time{}, errors.New("employee id required")
	}
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("unknown role %q", role)
	}
	now = now.Truncate(time.Second)
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		EmployeeID: employeeID,
		Access:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   employeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry as of now and returns the asserted identity.
// The error is always ErrTokenInvalid or ErrTokenExpired.
func (tm *TokenManager) Verify(tokenStr string, now time.Time) (domain.Identity, error) {
	if tokenStr == "" {
		return domain.Identity{}, ErrTokenInvalid
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, ErrTokenInvalid
	}
	if claims.EmployeeID == "" || claims.EmployeeID != claims.Subject || !claims.Access.Valid() {
		return domain.Identity{}, ErrTokenInvalid
	}

	identity := domain.Identity{
		EmployeeID: claims.EmployeeID,
		Role:       claims.Access,
		TokenID:    claims.ID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}
