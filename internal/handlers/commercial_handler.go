package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type CommercialHandler struct {
	commercial services.CommercialService
	offerRepo  repositories.OfferRepository
}

func NewCommercialHandler(
	commercial services.CommercialService,
	offerRepo repositories.OfferRepository,
) *CommercialHandler {
	return &CommercialHandler{
		commercial: commercial,
		offerRepo:  offerRepo,
	}
}

// HandleGetOffer handles GET /events/:id/vendors/:vendorId/offer
func (h *CommercialHandler) HandleGetOffer(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	offer, err := h.offerRepo.FindByVendor(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	raw, normalized, err := h.commercial.Score(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"offer":            offer,
		"score":            raw,
		"normalized_score": normalized,
	})
}

// HandleSetManualScore handles
// PATCH /events/:id/vendors/:vendorId/offer/score
func (h *CommercialHandler) HandleSetManualScore(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

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

	if err := h.commercial.SetManualScore(vendorID, req.Score, req.Justification); err != nil {
		return respondError(c, err)
	}

	raw, normalized, err := h.commercial.Score(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"score":            raw,
		"normalized_score": normalized,
	})
}

// HandleGetOpportunities handles
// GET /events/:id/vendors/:vendorId/opportunities
func (h *CommercialHandler) HandleGetOpportunities(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID format",
		})
	}

	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	rows, err := h.commercial.Opportunities(eventID, vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"opportunities": rows,
	})
}
