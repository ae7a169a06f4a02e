package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieOptions describes the transport-level credential holder.
type CookieOptions struct {
	Name   string
	Secure bool
}

// SetSessionCookie stores a freshly issued token for the browser.
func SetSessionCookie(c *fiber.Ctx, opts CookieOptions, token string, expiresAt time.Time, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(ttl.Seconds()),
		Secure:   opts.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *fiber.Ctx, opts CookieOptions) {
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   opts.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
