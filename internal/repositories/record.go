package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/tender-evaluator/internal/models"
)

type EvaluationRecordRepository interface {
	Create(record *models.EvaluationRecord) error
	FindByVendorStage(vendorID uuid.UUID, stage models.Stage) (*models.EvaluationRecord, error)
	FindByVendor(vendorID uuid.UUID) ([]models.EvaluationRecord, error)
	Finalize(id uuid.UUID, submittedAt time.Time) error
}

type evaluationRecordRepository struct {
	db *gorm.DB
}

func NewEvaluationRecordRepository(db *gorm.DB) EvaluationRecordRepository {
	return &evaluationRecordRepository{db: db}
}

// Create implements EvaluationRecordRepository.
func (r *evaluationRecordRepository) Create(record *models.EvaluationRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create evaluation record: %w", err)
	}
	return nil
}

// FindByVendorStage implements EvaluationRecordRepository.
func (r *evaluationRecordRepository) FindByVendorStage(vendorID uuid.UUID, stage models.Stage) (*models.EvaluationRecord, error) {
	var record models.EvaluationRecord
	err := r.db.
		Where("vendor_id = ? AND stage = ?", vendorID, stage).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("%s record for vendor %s not found", stage, vendorID)
		}
		return nil, fmt.Errorf("failed to find evaluation record: %w", err)
	}
	return &record, nil
}

// FindByVendor implements EvaluationRecordRepository.
func (r *evaluationRecordRepository) FindByVendor(vendorID uuid.UUID) ([]models.EvaluationRecord, error) {
	var records []models.EvaluationRecord
	err := r.db.
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find evaluation records: %w", err)
	}
	return records, nil
}

// Finalize implements EvaluationRecordRepository. The status column only
// moves forward; finalizing an already final record affects zero rows and
// surfaces as a state error at the service layer.
func (r *evaluationRecordRepository) Finalize(id uuid.UUID, submittedAt time.Time) error {
	result := r.db.Model(&models.EvaluationRecord{}).
		Where("id = ? AND status = ?", id, models.RecordOnProgress).
		Updates(map[string]interface{}{
			"status":       models.RecordFinal,
			"submitted_at": submittedAt,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to finalize record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return models.NewStateError("record %s is already final", id)
	}

	return nil
}
