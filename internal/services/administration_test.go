package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/tender-evaluator/internal/models"
)

func seedRecord(t *testing.T, repo *fakeRecordRepo, vendorID uuid.UUID, stage models.Stage) *models.EvaluationRecord {
	t.Helper()
	record := &models.EvaluationRecord{
		SourcingEventID: uuid.New(),
		VendorID:        vendorID,
		Stage:           stage,
		Status:          models.RecordOnProgress,
	}
	require.NoError(t, repo.Create(record))
	return record
}

func seedDocuments(t *testing.T, repo *fakeDocRepo, vendorID uuid.UUID, docs []models.Document) {
	t.Helper()
	for i := range docs {
		docs[i].VendorID = vendorID
	}
	require.NoError(t, repo.CreateBatch(docs))
}

func TestAdministrationEvaluatePass(t *testing.T) {
	docRepo := newFakeDocRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewAdministrationService(docRepo, recordRepo)

	vendorID := uuid.New()
	seedDocuments(t, docRepo, vendorID, []models.Document{
		{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityValid},
		{Name: "Tax Certificate", Status: models.DocumentComplete, Validity: models.ValidityValid},
	})

	result, err := svc.Evaluate(vendorID)
	require.NoError(t, err)
	assert.Equal(t, models.AdministrationPass, result)
}

func TestAdministrationEvaluateNotPass(t *testing.T) {
	tests := []struct {
		name string
		docs []models.Document
	}{
		{
			name: "missing document",
			docs: []models.Document{
				{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityValid},
				{Name: "Tax Certificate", Status: models.DocumentMissing, Validity: models.ValidityValid},
			},
		},
		{
			name: "incomplete document",
			docs: []models.Document{
				{Name: "Business License", Status: models.DocumentIncomplete, Validity: models.ValidityValid},
			},
		},
		{
			name: "expired validity",
			docs: []models.Document{
				{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityExpired},
			},
		},
		{
			name: "validity still pending",
			docs: []models.Document{
				{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityPending},
			},
		},
		{
			name: "no documents on file",
			docs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docRepo := newFakeDocRepo()
			recordRepo := newFakeRecordRepo()
			svc := NewAdministrationService(docRepo, recordRepo)

			vendorID := uuid.New()
			seedDocuments(t, docRepo, vendorID, tt.docs)

			result, err := svc.Evaluate(vendorID)
			require.NoError(t, err)
			assert.Equal(t, models.AdministrationNotPass, result)
		})
	}
}

func TestAdministrationSetDocumentField(t *testing.T) {
	docRepo := newFakeDocRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewAdministrationService(docRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageAdministration)
	seedDocuments(t, docRepo, vendorID, []models.Document{
		{Name: "Business License", Status: models.DocumentMissing, Validity: models.ValidityPending},
	})

	result, err := svc.SetDocumentField(vendorID, "Business License", "status", "complete")
	require.NoError(t, err)
	assert.Equal(t, models.AdministrationNotPass, result)

	result, err = svc.SetDocumentField(vendorID, "Business License", "validity", "valid")
	require.NoError(t, err)
	assert.Equal(t, models.AdministrationPass, result)
}

func TestAdministrationSetDocumentFieldRejectsBadInput(t *testing.T) {
	docRepo := newFakeDocRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewAdministrationService(docRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageAdministration)
	seedDocuments(t, docRepo, vendorID, []models.Document{
		{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityValid},
	})

	_, err := svc.SetDocumentField(vendorID, "Business License", "status", "shredded")
	assert.True(t, models.IsValidationError(err))

	_, err = svc.SetDocumentField(vendorID, "Business License", "validity", "maybe")
	assert.True(t, models.IsValidationError(err))

	_, err = svc.SetDocumentField(vendorID, "Business License", "color", "blue")
	assert.True(t, models.IsValidationError(err))

	_, err = svc.SetDocumentField(vendorID, "Insurance Policy", "status", "complete")
	assert.True(t, models.IsNotFoundError(err))
}

func TestAdministrationMutationAfterFinal(t *testing.T) {
	docRepo := newFakeDocRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewAdministrationService(docRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageAdministration)
	seedDocuments(t, docRepo, vendorID, []models.Document{
		{Name: "Business License", Status: models.DocumentComplete, Validity: models.ValidityValid},
	})

	require.NoError(t, svc.Submit(vendorID))

	_, err := svc.SetDocumentField(vendorID, "Business License", "status", "missing")
	assert.True(t, models.IsStateError(err))

	// The frozen result is unchanged.
	result, err := svc.Evaluate(vendorID)
	require.NoError(t, err)
	assert.Equal(t, models.AdministrationPass, result)

	doc, err := docRepo.FindByName(vendorID, "Business License")
	require.NoError(t, err)
	assert.Equal(t, models.DocumentComplete, doc.Status)
}

func TestAdministrationDoubleSubmit(t *testing.T) {
	docRepo := newFakeDocRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewAdministrationService(docRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageAdministration)

	require.NoError(t, svc.Submit(vendorID))
	assert.True(t, models.IsStateError(svc.Submit(vendorID)))
}

func TestAdministrationSubmitWithoutRecord(t *testing.T) {
	svc := NewAdministrationService(newFakeDocRepo(), newFakeRecordRepo())
	assert.True(t, models.IsNotFoundError(svc.Submit(uuid.New())))
}
