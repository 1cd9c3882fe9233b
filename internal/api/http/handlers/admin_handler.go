package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mock-bank-api/internal/observability"
	"github.com/spec-kit/mock-bank-api/internal/service"
)

// AdminHandler serves the test-support endpoints.
type AdminHandler struct {
	admin   *service.AdminService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{admin: admin, metrics: metrics}
}

// Reset handles POST /__reset. It needs no credentials.
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.admin.Reset(c.UserContext())
	return c.SendStatus(http.StatusNoContent)
}

// Metrics handles GET /__metrics.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"store":   h.admin.Counts(),
		"metrics": h.metrics.Snapshot(),
	})
}
