package handler

import (
	"go-labstock/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// getUserID extracts the authenticated user's ID from the JWT context
// (set by the RequireAuth middleware)
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperror.InvalidToken("missing user identity")
	}
	return uuid.Parse(raw)
}

func getUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

// writeError maps business errors to their 4xx status; anything else is
// logged and surfaced as a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	status := apperror.StatusOf(err)
	if status >= 500 {
		logrus.WithError(err).Error("unexpected error")
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
