package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
)

// AdministrationService is the document-compliance gate. A vendor passes
// only when every required document is complete and valid; the result frozen
// at submit time feeds vendor eligibility in the ranking aggregator.
type AdministrationService interface {
	Evaluate(vendorID uuid.UUID) (models.AdministrationResult, error)
	SetDocumentField(vendorID uuid.UUID, docName string, field string, value string) (models.AdministrationResult, error)
	Submit(vendorID uuid.UUID) error
}

type administrationService struct {
	docRepo    repositories.DocumentRepository
	recordRepo repositories.EvaluationRecordRepository
}

func NewAdministrationService(
	docRepo repositories.DocumentRepository,
	recordRepo repositories.EvaluationRecordRepository,
) AdministrationService {
	return &administrationService{
		docRepo:    docRepo,
		recordRepo: recordRepo,
	}
}

// Evaluate implements AdministrationService. Pass iff every document has
// status complete and validity valid. A vendor with no documents on file has
// nothing proving compliance, so it does not pass.
func (s *administrationService) Evaluate(vendorID uuid.UUID) (models.AdministrationResult, error) {
	docs, err := s.docRepo.FindByVendor(vendorID)
	if err != nil {
		return "", fmt.Errorf("failed to load documents: %w", err)
	}

	if len(docs) == 0 {
		return models.AdministrationNotPass, nil
	}

	for i := range docs {
		if !docs[i].Compliant() {
			return models.AdministrationNotPass, nil
		}
	}

	return models.AdministrationPass, nil
}

// SetDocumentField implements AdministrationService. Mutation is rejected
// once the vendor's administration record is final; the attempt is reported
// to the caller and prior state stays untouched.
func (s *administrationService) SetDocumentField(vendorID uuid.UUID, docName string, field string, value string) (models.AdministrationResult, error) {
	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageAdministration)
	if err != nil {
		return "", err
	}

	if record.IsFinal() {
		return "", models.NewStateError("administration stage for vendor %s is final, documents can no longer be edited", vendorID)
	}

	doc, err := s.docRepo.FindByName(vendorID, docName)
	if err != nil {
		return "", err
	}

	switch field {
	case "status":
		status := models.DocumentStatus(value)
		if !status.IsValid() {
			return "", models.NewValidationError("invalid document status %q", value)
		}
		doc.Status = status
	case "validity":
		validity := models.DocumentValidity(value)
		if !validity.IsValid() {
			return "", models.NewValidationError("invalid document validity %q", value)
		}
		doc.Validity = validity
	default:
		return "", models.NewValidationError("unknown document field %q", field)
	}

	doc.UpdatedAt = time.Now()
	if err := s.docRepo.Save(doc); err != nil {
		return "", err
	}

	return s.Evaluate(vendorID)
}

// Submit implements AdministrationService. The transition to final is
// one-way and freezes the current pass/not-pass result.
func (s *administrationService) Submit(vendorID uuid.UUID) error {
	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageAdministration)
	if err != nil {
		return err
	}

	if record.IsFinal() {
		return models.NewStateError("administration stage for vendor %s is already final", vendorID)
	}

	return s.recordRepo.Finalize(record.ID, time.Now())
}
