package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const AdminPasswordHeader = "X-Admin-Password"

var ErrEmptyAdminPassword = errors.New("admin password must not be empty")

// AdminGate guards moderation routes with a single shared secret. There is no
// session: every request carries the secret.
type AdminGate struct {
	password string
}

func NewAdminGate(password string) (*AdminGate, error) {
	if password == "" {
		return nil, ErrEmptyAdminPassword
	}
	return &AdminGate{password: password}, nil
}

// Authorize fails closed on empty input.
func (g *AdminGate) Authorize(supplied string) bool {
	return supplied != "" && supplied == g.password
}

func (g *AdminGate) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Authorize(c.Get(AdminPasswordHeader)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Non autorisé"})
		}
		return c.Next()
	}
}
