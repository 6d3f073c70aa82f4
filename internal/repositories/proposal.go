package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type ProposalFileRepository interface {
	Create(file *models.ProposalFile) error
	FindByID(id uuid.UUID) (*models.ProposalFile, error)
}

type proposalFileRepository struct {
	db *gorm.DB
}

func NewProposalFileRepository(db *gorm.DB) ProposalFileRepository {
	return &proposalFileRepository{db: db}
}

// Create implements ProposalFileRepository.
func (r *proposalFileRepository) Create(file *models.ProposalFile) error {
	if err := r.db.Create(file).Error; err != nil {
		return fmt.Errorf("failed to create proposal file: %w", err)
	}
	return nil
}

// FindByID implements ProposalFileRepository.
func (r *proposalFileRepository) FindByID(id uuid.UUID) (*models.ProposalFile, error) {
	var file models.ProposalFile
	if err := r.db.Where("id = ?", id).First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("proposal file %s not found", id)
		}
		return nil, fmt.Errorf("failed to find proposal file: %w", err)
	}
	return &file, nil
}
