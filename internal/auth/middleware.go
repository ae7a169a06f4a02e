package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	domain.Identity
}

// IsAdmin reports whether the caller may manage accounts.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}

// ExtractTokens returns the candidate session tokens in the order they are
// tried: the cookie first, then a bearer Authorization header. Empty values
// are skipped, so the result is empty when neither carries a token.
func ExtractTokens(c *fiber.Ctx, cookieName string) []string {
	var tokens []string
	if token := strings.TrimSpace(c.Cookies(cookieName)); token != "" {
		tokens = append(tokens, token)
	}
	if token := bearerToken(c.Get(fiber.HeaderAuthorization)); token != "" && (len(tokens) == 0 || tokens[0] != token) {
		tokens = append(tokens, token)
	}
	return tokens
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// PrincipalFromContext retrieves the authenticated caller stored by the gate.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal != nil
}

func setPrincipal(c *fiber.Ctx, principal *Principal) {
	c.Locals(principalKey, principal)
}
