package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type EventHandler struct {
	eventRepo  repositories.SourcingEventRepository
	vendorRepo repositories.VendorRepository
	recordRepo repositories.EvaluationRecordRepository
	commercial services.CommercialService
	ranking    services.RankingService
}

func NewEventHandler(
	eventRepo repositories.SourcingEventRepository,
	vendorRepo repositories.VendorRepository,
	recordRepo repositories.EvaluationRecordRepository,
	commercial services.CommercialService,
	ranking services.RankingService,
) *EventHandler {
	return &EventHandler{
		eventRepo:  eventRepo,
		vendorRepo: vendorRepo,
		recordRepo: recordRepo,
		commercial: commercial,
		ranking:    ranking,
	}
}

// HandleCreateEvent handles POST /events
func (h *EventHandler) HandleCreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest

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

	event := &models.SourcingEvent{
		ID:        uuid.New(),
		Name:      req.Name,
		Code:      req.Code,
		Round:     0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.eventRepo.Create(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create sourcing event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// HandleGetProgress handles GET /events/:id
func (h *EventHandler) HandleGetProgress(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID format",
		})
	}

	event, err := h.eventRepo.FindByID(eventID)
	if err != nil {
		return respondError(c, err)
	}

	vendors, err := h.vendorRepo.FindByEvent(eventID)
	if err != nil {
		return respondError(c, err)
	}

	response := models.EventProgressResponse{
		ID:    event.ID,
		Name:  event.Name,
		Round: event.Round,
	}

	for _, vendor := range vendors {
		progress := models.VendorProgress{
			VendorID:       vendor.ID,
			VendorName:     vendor.Name,
			BaselineStatus: vendor.BaselineStatus,
		}

		records, err := h.recordRepo.FindByVendor(vendor.ID)
		if err != nil {
			return respondError(c, err)
		}

		for _, record := range records {
			stage := models.StageProgress{
				Stage:  record.Stage,
				Status: record.Status,
			}
			if record.SubmittedAt != nil {
				submitted := record.SubmittedAt.Format(time.RFC3339)
				stage.SubmittedAt = &submitted
			}
			progress.Stages = append(progress.Stages, stage)
		}

		response.Vendors = append(response.Vendors, progress)
	}

	return c.JSON(response)
}

// HandleAdvanceRound handles POST /events/:id/rounds/advance
func (h *EventHandler) HandleAdvanceRound(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID format",
		})
	}

	round, revised, err := h.commercial.AdvanceRound(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AdvanceRoundResponse{
		Round:  round,
		Offers: revised,
	})
}

// HandleGetRanking handles GET /events/:id/ranking
func (h *EventHandler) HandleGetRanking(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID format",
		})
	}

	ranked, err := h.ranking.Rank(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"vendors": ranked,
	})
}
