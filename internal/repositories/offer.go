package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type OfferRepository interface {
	Create(offer *models.VendorOffer) error
	FindByVendor(vendorID uuid.UUID) (*models.VendorOffer, error)
	FindByEvent(eventID uuid.UUID) ([]models.VendorOffer, error)
	Save(offer *models.VendorOffer) error
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

// Create implements OfferRepository.
func (r *offerRepository) Create(offer *models.VendorOffer) error {
	if err := r.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// FindByVendor implements OfferRepository.
func (r *offerRepository) FindByVendor(vendorID uuid.UUID) (*models.VendorOffer, error) {
	var offer models.VendorOffer
	if err := r.db.Where("vendor_id = ?", vendorID).First(&offer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("offer for vendor %s not found", vendorID)
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return &offer, nil
}

// FindByEvent implements OfferRepository.
func (r *offerRepository) FindByEvent(eventID uuid.UUID) ([]models.VendorOffer, error) {
	var offers []models.VendorOffer
	err := r.db.
		Where("sourcing_event_id = ?", eventID).
		Order("created_at ASC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}
	return offers, nil
}

// Save implements OfferRepository.
func (r *offerRepository) Save(offer *models.VendorOffer) error {
	if err := r.db.Save(offer).Error; err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	return nil
}
