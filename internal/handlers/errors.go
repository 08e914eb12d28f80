package handlers

import (
	"errors"
	"log/slog"

	"github.com/Ataalp23/emlak-talep-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors to the wire contract: NotFound → 404 with
// the missing entity named, invalid input → 400, everything else → opaque 500.
func respondError(c *fiber.Ctx, err error) error {
	if services.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": err.Error()})
	}
	if services.IsValidation(err) || errors.Is(err, services.ErrInvalidStatus) || errors.Is(err, services.ErrBudgetRange) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	}

	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Internal server error"})
}
