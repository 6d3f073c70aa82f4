package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

type UploadHandler struct {
	proposalRepo   repositories.ProposalFileRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	proposalRepo repositories.ProposalFileRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		proposalRepo:   proposalRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. Accepts a vendor proposal PDF under the
// "proposal" form field and returns the stored file ID for vendor
// registration.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files, exists := form.File["proposal"]
	if !exists || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'proposal' as a PDF file.",
		})
	}

	proposalFile := files[0]

	if proposalFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Proposal file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// Save file
	filename, filePath, err := h.storageService.SaveFile(proposalFile, "proposal")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save proposal file: %v", err),
		})
	}

	// Create file record
	file := models.ProposalFile{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: proposalFile.Filename,
		FileType:         "proposal",
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.proposalRepo.Create(&file); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save proposal file record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           file.ID.String(),
		Filename:     file.Filename,
		OriginalName: file.OriginalFileName,
		FileType:     file.FileType,
	})
}
