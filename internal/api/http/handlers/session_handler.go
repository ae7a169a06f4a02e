package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/session"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// Current handles GET /api/session: the verified view the client caches for UI decisions.
func Current(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": session.FromPrincipal(principal)})
}

// Page returns a handler describing the page the gate let through.
func Page(name string) fiber.Handler {
	name = strings.TrimPrefix(name, "/")
	return func(c *fiber.Ctx) error {
		principal, _ := auth.PrincipalFromContext(c)
		return c.JSON(dto.PageResponse{Page: name, Session: session.FromPrincipal(principal)})
	}
}

// MethodNotAllowed answers any method a path does not support.
func MethodNotAllowed(c *fiber.Ctx) error {
	return apperrors.NewMethodNotAllowed()
}
