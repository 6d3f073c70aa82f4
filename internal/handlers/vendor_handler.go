package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type VendorHandler struct {
	eventRepo    repositories.SourcingEventRepository
	vendorRepo   repositories.VendorRepository
	proposalRepo repositories.ProposalFileRepository
	offerRepo    repositories.OfferRepository
	recordRepo   repositories.EvaluationRecordRepository
	worker       services.Worker
}

func NewVendorHandler(
	eventRepo repositories.SourcingEventRepository,
	vendorRepo repositories.VendorRepository,
	proposalRepo repositories.ProposalFileRepository,
	offerRepo repositories.OfferRepository,
	recordRepo repositories.EvaluationRecordRepository,
	worker services.Worker,
) *VendorHandler {
	return &VendorHandler{
		eventRepo:    eventRepo,
		vendorRepo:   vendorRepo,
		proposalRepo: proposalRepo,
		offerRepo:    offerRepo,
		recordRepo:   recordRepo,
		worker:       worker,
	}
}

// HandleRegisterVendor handles POST /events/:id/vendors. Registration opens
// the three stage records, creates the offer at the vendor's initial price
// and queues the AI baseline job.
func (h *VendorHandler) HandleRegisterVendor(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID format",
		})
	}

	var req models.RegisterVendorRequest

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

	event, err := h.eventRepo.FindByID(eventID)
	if err != nil {
		return respondError(c, err)
	}

	// Vendors joining after negotiation has started would skip frozen
	// rounds, so registration closes at round 1.
	if event.Round > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vendor registration is closed once negotiation rounds have started",
		})
	}

	var proposalFileID *uuid.UUID
	if req.ProposalFileID != "" {
		id, err := uuid.Parse(req.ProposalFileID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid proposal_file_id format",
			})
		}

		if _, err := h.proposalRepo.FindByID(id); err != nil {
			return respondError(c, err)
		}
		proposalFileID = &id
	}

	vendor := &models.Vendor{
		ID:              uuid.New(),
		SourcingEventID: eventID,
		Name:            req.Name,
		Code:            req.Code,
		ProposalFileID:  proposalFileID,
		BaselineStatus:  models.BaselineQueued,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.vendorRepo.Create(vendor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register vendor",
		})
	}

	offer := &models.VendorOffer{
		ID:              uuid.New(),
		SourcingEventID: eventID,
		VendorID:        vendor.ID,
		InitialOffer:    req.InitialOffer,
		FinalOffer:      req.InitialOffer,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.offerRepo.Create(offer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vendor offer",
		})
	}

	for _, stage := range models.Stages() {
		record := &models.EvaluationRecord{
			ID:              uuid.New(),
			SourcingEventID: eventID,
			VendorID:        vendor.ID,
			Stage:           stage,
			Status:          models.RecordOnProgress,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if err := h.recordRepo.Create(record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to open stage records",
			})
		}
	}

	// Enqueue AI baseline job
	h.worker.EnqueueJob(vendor.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.RegisterVendorResponse{
		ID:             vendor.ID.String(),
		BaselineStatus: string(models.BaselineQueued),
	})
}

// HandleSubmitStage handles POST /events/:id/vendors/:vendorId/stages/:stage/submit
func (h *VendorHandler) HandleSubmitStage(
	administration services.AdministrationService,
	technical services.TechnicalService,
	commercial services.CommercialService,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendorID, err := uuid.Parse(c.Params("vendorId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid vendor ID format",
			})
		}

		stage := models.Stage(c.Params("stage"))
		if !stage.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid stage. Use administration, technical or commercial.",
			})
		}

		switch stage {
		case models.StageAdministration:
			err = administration.Submit(vendorID)
		case models.StageTechnical:
			err = technical.Submit(vendorID)
		case models.StageCommercial:
			err = commercial.Submit(vendorID)
		}
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(fiber.Map{
			"vendor_id": vendorID.String(),
			"stage":     stage,
			"status":    models.RecordFinal,
		})
	}
}
