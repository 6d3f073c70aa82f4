package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type AdministrationHandler struct {
	administration services.AdministrationService
	docRepo        repositories.DocumentRepository
}

func NewAdministrationHandler(
	administration services.AdministrationService,
	docRepo repositories.DocumentRepository,
) *AdministrationHandler {
	return &AdministrationHandler{
		administration: administration,
		docRepo:        docRepo,
	}
}

// HandleListDocuments handles GET /events/:id/vendors/:vendorId/documents
func (h *AdministrationHandler) HandleListDocuments(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	docs, err := h.docRepo.FindByVendor(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.administration.Evaluate(vendorID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"documents": docs,
		"result":    result,
	})
}

// HandleSetDocumentField handles
// PATCH /events/:id/vendors/:vendorId/documents/:name
func (h *AdministrationHandler) HandleSetDocumentField(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID format",
		})
	}

	docName := c.Params("name")

	var req models.SetDocumentFieldRequest

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

	result, err := h.administration.SetDocumentField(vendorID, docName, req.Field, req.Value)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"document": docName,
		"result":   result,
	})
}
