package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/mock-bank-api/pkg/util"
)

var errInvalidPayload = apperrors.NewMalformedInput("invalid payload", nil)

// parseBody decodes a JSON request body into out. An empty body leaves out untouched, so
// every field reads as absent. The content type is not checked.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return errInvalidPayload
	}
	return nil
}
