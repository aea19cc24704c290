package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/http/handlers"
	"github.com/spec-kit/employee-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Employees *handlers.EmployeesHandler
	Reports   *handlers.ReportsHandler
	Visitors  *handlers.VisitorsHandler

	Session  *auth.SessionMiddleware
	Policy   auth.Policy
	Sessions auth.SessionStore
}

// RegisterRoutes wires HTTP routes. Every guarded route passes through the
// policy before its handler.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.Session.Handle)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/employees", fiber.StatusFound)
	})

	app.Get("/login", cfg.Auth.LoginPrompt)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/visit", cfg.Auth.RegisterVisitor)
	app.Post("/logout", cfg.Auth.Logout)

	view := auth.Require(cfg.Policy, auth.ActionViewEmployees, cfg.Sessions)
	manage := auth.Require(cfg.Policy, auth.ActionManageEmployees, cfg.Sessions)

	employees := app.Group("/employees")
	employees.Get("/", view, cfg.Employees.List)
	employees.Get("/add", manage, cfg.Employees.AddView)
	employees.Post("/", manage, cfg.Employees.Create)
	employees.Get("/:id<int>", view, cfg.Employees.Get)
	employees.Get("/:id<int>/edit", manage, cfg.Employees.EditView)
	employees.Post("/:id<int>/edit", manage, cfg.Employees.Update)
	employees.Post("/:id<int>/delete", manage, cfg.Employees.Delete)

	app.Get("/dashboard",
		auth.Require(cfg.Policy, auth.ActionViewDashboard, cfg.Sessions),
		cfg.Reports.Dashboard)
	app.Get("/visitors",
		auth.Require(cfg.Policy, auth.ActionViewVisitorLog, cfg.Sessions),
		cfg.Visitors.List)
}
