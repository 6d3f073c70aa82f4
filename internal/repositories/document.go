package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type DocumentRepository interface {
	CreateBatch(documents []models.Document) error
	FindByVendor(vendorID uuid.UUID) ([]models.Document, error)
	FindByName(vendorID uuid.UUID, name string) (*models.Document, error)
	Save(document *models.Document) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// CreateBatch implements DocumentRepository.
func (r *documentRepository) CreateBatch(documents []models.Document) error {
	if len(documents) == 0 {
		return nil
	}
	if err := r.db.Create(&documents).Error; err != nil {
		return fmt.Errorf("failed to create documents: %w", err)
	}
	return nil
}

// FindByVendor implements DocumentRepository.
func (r *documentRepository) FindByVendor(vendorID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.
		Where("vendor_id = ?", vendorID).
		Order("name ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	return docs, nil
}

// FindByName implements DocumentRepository.
func (r *documentRepository) FindByName(vendorID uuid.UUID, name string) (*models.Document, error) {
	var doc models.Document
	err := r.db.
		Where("vendor_id = ? AND name = ?", vendorID, name).
		First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("document %q for vendor %s not found", name, vendorID)
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return &doc, nil
}

// Save implements DocumentRepository.
func (r *documentRepository) Save(document *models.Document) error {
	if err := r.db.Save(document).Error; err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
