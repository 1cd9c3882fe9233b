package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mock-bank-api/internal/api/http/handlers"
	"github.com/spec-kit/mock-bank-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Users        *handlers.UsersHandler
	Transactions *handlers.TransactionsHandler
	Admin        *handlers.AdminHandler
}

// RegisterRoutes wires HTTP routes. Every state-touching route goes through one shared
// SerialDispatch instance.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	serial := SerialDispatch()

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", serial, cfg.Health.Ready)
	app.Get("/__metrics", serial, cfg.Admin.Metrics)
	app.Post("/__reset", serial, cfg.Admin.Reset)

	api := app.Group("/api", serial, auth.RequireAuthorization())
	api.Post("/users", cfg.Users.Create)
	api.Get("/users/:id", cfg.Users.Get)
	api.Put("/users/:id", cfg.Users.Update)
	api.Delete("/users/:id", cfg.Users.Delete)

	api.Post("/transactions", cfg.Transactions.Create)
	api.Get("/transactions/:userId", cfg.Transactions.ListByUser)
}
