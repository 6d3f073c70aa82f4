package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/scoring"
)

// TechnicalService scores a vendor against its weighted criteria and guards
// the override-requires-justification rule at submit time.
type TechnicalService interface {
	Score(vendorID uuid.UUID) (raw float64, band scoring.RatingBand, err error)
	SetManualScore(vendorID uuid.UUID, criterionName string, score float64, justification string) error
	Submit(vendorID uuid.UUID) error
}

type technicalService struct {
	criterionRepo repositories.CriterionRepository
	recordRepo    repositories.EvaluationRecordRepository
}

func NewTechnicalService(
	criterionRepo repositories.CriterionRepository,
	recordRepo repositories.EvaluationRecordRepository,
) TechnicalService {
	return &technicalService{
		criterionRepo: criterionRepo,
		recordRepo:    recordRepo,
	}
}

// Score implements TechnicalService. Returns the raw 0-100 weighted score
// and its display band. Weights that do not sum to 100 are a data integrity
// error reported as-is.
func (s *technicalService) Score(vendorID uuid.UUID) (float64, scoring.RatingBand, error) {
	criteria, err := s.criterionRepo.FindByVendor(vendorID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to load criteria: %w", err)
	}

	raw, err := scoring.WeightedScore(criteria)
	if err != nil {
		return 0, "", err
	}

	return raw, scoring.Band(raw), nil
}

// SetManualScore implements TechnicalService. Scores outside [0,100] are
// rejected. A justification may arrive with the score or later, but an
// override that diverges from the AI baseline blocks Submit until one is
// written.
func (s *technicalService) SetManualScore(vendorID uuid.UUID, criterionName string, score float64, justification string) error {
	if score < 0 || score > 100 {
		return models.NewValidationError("manual score %.2f is outside [0,100]", score)
	}

	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageTechnical)
	if err != nil {
		return err
	}

	if record.IsFinal() {
		return models.NewStateError("technical stage for vendor %s is final, scores can no longer be edited", vendorID)
	}

	criterion, err := s.criterionRepo.FindByName(vendorID, criterionName)
	if err != nil {
		return err
	}

	criterion.ManualScore = &score
	criterion.Justification = justification
	criterion.UpdatedAt = time.Now()

	return s.criterionRepo.Save(criterion)
}

// Submit implements TechnicalService. Rejected while any overridden
// criterion lacks a justification or while the weight invariant is broken;
// the record stays on progress in both cases.
func (s *technicalService) Submit(vendorID uuid.UUID) error {
	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageTechnical)
	if err != nil {
		return err
	}

	if record.IsFinal() {
		return models.NewStateError("technical stage for vendor %s is already final", vendorID)
	}

	criteria, err := s.criterionRepo.FindByVendor(vendorID)
	if err != nil {
		return fmt.Errorf("failed to load criteria: %w", err)
	}

	if err := scoring.ValidateWeights(criteria); err != nil {
		return err
	}

	for i := range criteria {
		if criteria[i].NeedsJustification() {
			return models.NewValidationError(
				"criterion %q has a manual score differing from the AI baseline and requires a justification",
				criteria[i].Name,
			)
		}
	}

	return s.recordRepo.Finalize(record.ID, time.Now())
}
