package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type CriterionRepository interface {
	CreateBatch(criteria []models.Criterion) error
	FindByVendor(vendorID uuid.UUID) ([]models.Criterion, error)
	FindByName(vendorID uuid.UUID, name string) (*models.Criterion, error)
	Save(criterion *models.Criterion) error
}

type criterionRepository struct {
	db *gorm.DB
}

func NewCriterionRepository(db *gorm.DB) CriterionRepository {
	return &criterionRepository{db: db}
}

// CreateBatch implements CriterionRepository.
func (r *criterionRepository) CreateBatch(criteria []models.Criterion) error {
	if len(criteria) == 0 {
		return nil
	}
	if err := r.db.Create(&criteria).Error; err != nil {
		return fmt.Errorf("failed to create criteria: %w", err)
	}
	return nil
}

// FindByVendor implements CriterionRepository.
func (r *criterionRepository) FindByVendor(vendorID uuid.UUID) ([]models.Criterion, error) {
	var criteria []models.Criterion
	err := r.db.
		Where("vendor_id = ?", vendorID).
		Order("name ASC").
		Find(&criteria).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find criteria: %w", err)
	}
	return criteria, nil
}

// FindByName implements CriterionRepository.
func (r *criterionRepository) FindByName(vendorID uuid.UUID, name string) (*models.Criterion, error) {
	var criterion models.Criterion
	err := r.db.
		Where("vendor_id = ? AND name = ?", vendorID, name).
		First(&criterion).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("criterion %q for vendor %s not found", name, vendorID)
		}
		return nil, fmt.Errorf("failed to find criterion: %w", err)
	}
	return &criterion, nil
}

// Save implements CriterionRepository.
func (r *criterionRepository) Save(criterion *models.Criterion) error {
	if err := r.db.Save(criterion).Error; err != nil {
		return fmt.Errorf("failed to save criterion: %w", err)
	}
	return nil
}
