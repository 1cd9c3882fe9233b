// Package ui serves the static fixture pages used by browser flows.
package ui

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/observability"
)

// New returns a fiber app serving cfg.PublicDir at the root.
func New(cfg config.UIConfig, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mock-bank-ui",
		DisableStartupMessage: true,
	})
	app.Use(observability.RequestLogger(logger, nil))
	app.Static("/", cfg.PublicDir, fiber.Static{Index: "index.html"})
	return app
}
