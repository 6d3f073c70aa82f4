package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type CostComponentRepository interface {
	CreateBatch(components []models.CostComponent) error
	FindByEvent(eventID uuid.UUID) ([]models.CostComponent, error)
}

type costComponentRepository struct {
	db *gorm.DB
}

func NewCostComponentRepository(db *gorm.DB) CostComponentRepository {
	return &costComponentRepository{db: db}
}

// CreateBatch implements CostComponentRepository.
func (r *costComponentRepository) CreateBatch(components []models.CostComponent) error {
	if len(components) == 0 {
		return nil
	}
	if err := r.db.Create(&components).Error; err != nil {
		return fmt.Errorf("failed to create cost components: %w", err)
	}
	return nil
}

// FindByEvent implements CostComponentRepository.
func (r *costComponentRepository) FindByEvent(eventID uuid.UUID) ([]models.CostComponent, error) {
	var components []models.CostComponent
	err := r.db.
		Where("sourcing_event_id = ?", eventID).
		Order("name ASC").
		Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cost components: %w", err)
	}
	return components, nil
}
