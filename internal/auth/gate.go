package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// Gate authenticates every request and enforces the route policy table before
// any handler runs. It never clears the session cookie on failure.
type Gate struct {
	tokens     *TokenManager
	policy     *PolicyTable
	cookieName string
	logger     *zap.Logger
	now        func() time.Time
}

// GateOption customizes a Gate.
type GateOption func(*Gate)

// WithClock replaces the wall clock used for expiry checks.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

// NewGate constructs the gate.
func NewGate(tokens *TokenManager, policy *PolicyTable, cookieName string, logger *zap.Logger, opts ...GateOption) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gate{
		tokens:     tokens,
		policy:     policy,
		cookieName: cookieName,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Handle is the fiber middleware.
func (g *Gate) Handle(c *fiber.Ctx) error {
	principal := g.authenticate(c)
	if principal != nil {
		setPrincipal(c, principal)
	}

	rule, ok := g.policy.Lookup(c.Path())
	if !ok {
		return c.Next()
	}

	switch rule.Class {
	case ClassPublic:
		if principal != nil && rule.Context == ContextPage {
			return c.Redirect(g.policy.LandingPath, fiber.StatusTemporaryRedirect)
		}
		return c.Next()
	case ClassAuthenticated:
		if principal == nil {
			return g.unauthenticated(c, rule)
		}
		return c.Next()
	case ClassAdmin:
		if principal == nil {
			return g.unauthenticated(c, rule)
		}
		if !principal.IsAdmin() {
			return g.forbidden(c, rule)
		}
		return c.Next()
	}
	return g.forbidden(c, rule)
}

// authenticate accepts the first candidate token that verifies, so a stale
// cookie does not shadow a valid bearer header.
func (g *Gate) authenticate(c *fiber.Ctx) *Principal {
	now := g.now()
	for _, token := range ExtractTokens(c, g.cookieName) {
		identity, err := g.tokens.Verify(token, now)
		if err == nil {
			return &Principal{Identity: identity}
		}
		reason := "invalid"
		if errors.Is(err, ErrTokenExpired) {
			reason = "expired"
		}
		g.logger.Debug("session token rejected",
			zap.String("path", c.Path()),
			zap.String("reason", reason))
	}
	return nil
}

func (g *Gate) unauthenticated(c *fiber.Ctx, rule RouteRule) error {
	if rule.Context == ContextPage {
		return c.Redirect(g.policy.LoginPath, fiber.StatusTemporaryRedirect)
	}
	return apperrors.NewUnauthorized("authentication required")
}

func (g *Gate) forbidden(c *fiber.Ctx, rule RouteRule) error {
	if rule.Context == ContextPage {
		return c.Redirect(g.policy.LandingPath, fiber.StatusTemporaryRedirect)
	}
	return apperrors.NewForbidden("Forbidden")
}
