package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request once the downstream handlers have produced a status.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(RoutePattern(c), c.Method(), status, duration)

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", duration),
		)
		return err
	}
}

// RoutePattern returns the pattern of the last route that matched c, such as
// "/api/users/:id", so that metric keys stay free of ids. Requests that matched only the root
// middleware fall back to the raw path.
func RoutePattern(c *fiber.Ctx) string {
	path := c.Route().Path
	if path == "" || path == "/" {
		return c.Path()
	}
	return path
}
