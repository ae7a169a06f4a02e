package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/http/handlers"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Gate      *auth.Gate
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Accounts  *handlers.AccountsHandler
	Employees *handlers.EmployeesHandler
	Jokes     *handlers.JokeHandler
}

// pages served behind the gate; access is decided by the policy table.
var pages = []string{"/login", "/about", "/joke", "/employeeTable", "/employeeCard", "/manageUser"}

// RegisterRoutes wires HTTP routes. Every route runs behind the gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Use(cfg.Gate.Handle)

	for _, page := range pages {
		app.Get(page, handlers.Page(page))
	}

	app.Post("/api/login", cfg.Auth.Login)
	app.All("/api/login", handlers.MethodNotAllowed)
	app.Post("/api/logout", cfg.Auth.Logout)
	app.All("/api/logout", handlers.MethodNotAllowed)

	authenticated := auth.RequireAuthenticated()
	app.Get("/api/session", authenticated, handlers.Current)
	app.Get("/api/employees", authenticated, cfg.Employees.List)
	app.Get("/api/joke", authenticated, cfg.Jokes.Random)

	users := app.Group("/api/users", auth.RequireRole(domain.RoleAdmin))
	users.Get("", cfg.Accounts.List)
	users.Post("", cfg.Accounts.Create)
	users.Put("", cfg.Accounts.Update)
	users.Delete("", cfg.Accounts.Delete)
	users.All("", handlers.MethodNotAllowed)
}
