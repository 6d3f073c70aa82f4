package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/tender-evaluator/internal/models"
)

var validate = validator.New()

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation errors reject the edit, state errors report an illegal
// transition, not-found errors a missing reference. Prior state is never
// touched by a rejected request.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsValidationError(err):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case models.IsStateError(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case models.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
