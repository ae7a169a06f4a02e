package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	auth   *service.AuthService
	cookie auth.CookieOptions
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie auth.CookieOptions) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.auth.Login(c.UserContext(), req.EmployeeID, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, h.cookie, session.Token, session.ExpiresAt, h.auth.TokenManager().TTL())
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   session.Token,
		"data": dto.LoginResponse{
			Token:      session.Token,
			ExpiresAt:  session.ExpiresAt,
			EmployeeID: session.EmployeeID,
			Access:     session.Role,
		},
	})
}

// Logout handles POST /api/logout. It succeeds with or without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext()); err != nil {
		return err
	}
	auth.ClearSessionCookie(c, h.cookie)
	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}
