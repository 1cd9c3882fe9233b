package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mock-bank-api/internal/service"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	admin       *service.AdminService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, admin *service.AdminService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, admin: admin}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness along with the store size.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	counts := h.admin.Counts()
	return c.JSON(fiber.Map{
		"status":       "ready",
		"users":        counts.Users,
		"transactions": counts.Transactions,
	})
}
