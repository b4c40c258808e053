package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes the caller's X-Request-ID or mints one, and stores it in
// Locals under "reqid".
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(RequestIDHeader, id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
