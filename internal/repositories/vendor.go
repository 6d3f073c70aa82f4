package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type VendorRepository interface {
	Create(vendor *models.Vendor) error
	FindByID(id uuid.UUID) (*models.Vendor, error)
	FindByEvent(eventID uuid.UUID) ([]models.Vendor, error)
	UpdateBaselineStatus(id uuid.UUID, status models.BaselineStatus) error
	UpdateBaselineError(id uuid.UUID, errorMsg string) error
	FindPendingBaselines(limit int) ([]models.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// Create implements VendorRepository.
func (r *vendorRepository) Create(vendor *models.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// FindByID implements VendorRepository.
func (r *vendorRepository) FindByID(id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.Where("id = ?", id).First(&vendor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("vendor %s not found", id)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &vendor, nil
}

// FindByEvent implements VendorRepository.
func (r *vendorRepository) FindByEvent(eventID uuid.UUID) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.
		Where("sourcing_event_id = ?", eventID).
		Order("created_at ASC").
		Find(&vendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vendors: %w", err)
	}
	return vendors, nil
}

// UpdateBaselineStatus implements VendorRepository.
func (r *vendorRepository) UpdateBaselineStatus(id uuid.UUID, status models.BaselineStatus) error {
	result := r.db.Model(&models.Vendor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"baseline_status": status,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update baseline status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewNotFoundError("vendor %s not found", id)
	}

	return nil
}

// UpdateBaselineError implements VendorRepository.
func (r *vendorRepository) UpdateBaselineError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Vendor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"baseline_status": models.BaselineFailed,
			"baseline_error":  errorMsg,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update baseline error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewNotFoundError("vendor %s not found", id)
	}

	return nil
}

// FindPendingBaselines implements VendorRepository.
func (r *vendorRepository) FindPendingBaselines(limit int) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.
		Where("baseline_status = ?", models.BaselineQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&vendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending baselines: %w", err)
	}
	return vendors, nil
}
