package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
)

// AccountsHandler exposes admin account management under /api/users.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

// List handles GET /api/users.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	actor, _ := auth.PrincipalFromContext(c)
	accounts, err := h.accounts.List(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAccountListResponse(accounts)})
}

// Create handles POST /api/users.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	actor, _ := auth.PrincipalFromContext(c)
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.accounts.Create(c.UserContext(), actor, accountInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"data":    dto.NewAccountResponse(*created),
	})
}

// Update handles PUT /api/users.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	actor, _ := auth.PrincipalFromContext(c)
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.accounts.Update(c.UserContext(), actor, accountInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "User updated",
		"data":    dto.NewAccountResponse(*updated),
	})
}

// Delete handles DELETE /api/users. The identifier comes from the JSON body
// or, when the body is empty, from the employee_id query parameter.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	actor, _ := auth.PrincipalFromContext(c)
	var req dto.AccountRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid payload")
		}
	}
	if req.EmployeeID == "" {
		req.EmployeeID = c.Query("employee_id")
	}

	if err := h.accounts.Delete(c.UserContext(), actor, req.EmployeeID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted"})
}

func accountInput(req dto.AccountRequest) service.AccountInput {
	return service.AccountInput{
		EmployeeID: req.EmployeeID,
		Password:   req.Password,
		Access:     req.AccessType,
	}
}
