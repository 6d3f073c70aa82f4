package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type SourcingEventRepository interface {
	Create(event *models.SourcingEvent) error
	FindByID(id uuid.UUID) (*models.SourcingEvent, error)
	UpdateRound(id uuid.UUID, round int) error
}

type sourcingEventRepository struct {
	db *gorm.DB
}

func NewSourcingEventRepository(db *gorm.DB) SourcingEventRepository {
	return &sourcingEventRepository{db: db}
}

// Create implements SourcingEventRepository.
func (r *sourcingEventRepository) Create(event *models.SourcingEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create sourcing event: %w", err)
	}
	return nil
}

// FindByID implements SourcingEventRepository.
func (r *sourcingEventRepository) FindByID(id uuid.UUID) (*models.SourcingEvent, error) {
	var event models.SourcingEvent
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("sourcing event %s not found", id)
		}
		return nil, fmt.Errorf("failed to find sourcing event: %w", err)
	}
	return &event, nil
}

// UpdateRound implements SourcingEventRepository.
func (r *sourcingEventRepository) UpdateRound(id uuid.UUID, round int) error {
	result := r.db.Model(&models.SourcingEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"round":      round,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update round: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewNotFoundError("sourcing event %s not found", id)
	}

	return nil
}
