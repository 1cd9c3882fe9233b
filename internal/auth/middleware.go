package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/mock-bank-api/pkg/util"
)

// ErrUnauthorized is returned when a protected route is called without credentials.
var ErrUnauthorized = apperrors.NewUnauthorized("unauthorized")

// RequireAuthorization rejects requests that carry no Authorization header. The header value is
// not inspected.
func RequireAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return ErrUnauthorized
		}
		return c.Next()
	}
}
