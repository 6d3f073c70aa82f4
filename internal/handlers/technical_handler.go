package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type TechnicalHandler struct {
	technical     services.TechnicalService
	criterionRepo repositories.CriterionRepository
}

func NewTechnicalHandler(
	technical services.TechnicalService,
	criterionRepo repositories.CriterionRepository,
) *TechnicalHandler {
	return &TechnicalHandler{
		technical:     technical,
		criterionRepo: criterionRepo,
	}
}

// HandleGetScore handles GET /events/:id/vendors/:vendorId/criteria
func (h *TechnicalHandler) HandleGetScore(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	criteria, err := h.criterionRepo.FindByVendor(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	raw, band, err := h.technical.Score(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"criteria": criteria,
		"score":    raw,
		"band":     band,
	})
}

// HandleSetManualScore handles
// PATCH /events/:id/vendors/:vendorId/criteria/:name/score
func (h *TechnicalHandler) HandleSetManualScore(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	criterionName := c.Params("name")

	var req models.SetManualScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.technical.SetManualScore(vendorID, criterionName, req.Score, req.Justification); err != nil {
		return respondError(c, err)
	}

	raw, band, err := h.technical.Score(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"criterion": criterionName,
		"score":     raw,
		"band":      band,
	})
}
