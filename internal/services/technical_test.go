package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/scoring"
)

func seedCriteria(t *testing.T, repo *fakeCriterionRepo, vendorID uuid.UUID, criteria []models.Criterion) {
	t.Helper()
	for i := range criteria {
		criteria[i].VendorID = vendorID
	}
	require.NoError(t, repo.CreateBatch(criteria))
}

func TestTechnicalScore(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 60, AIScore: 90},
		{Name: "Production Capacity", Weight: 40, AIScore: 70},
	})

	raw, band, err := svc.Score(vendorID)
	require.NoError(t, err)
	assert.Equal(t, 82.0, raw)
	assert.Equal(t, scoring.BandExcellent, band)
}

func TestTechnicalScoreBrokenWeights(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 60, AIScore: 90},
		{Name: "Production Capacity", Weight: 30, AIScore: 70},
	})

	_, _, err := svc.Score(vendorID)
	assert.True(t, models.IsValidationError(err))
}

func TestTechnicalSetManualScore(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 100, AIScore: 90},
	})

	require.NoError(t, svc.SetManualScore(vendorID, "Delivery Track Record", 75, "site visit found aging equipment"))

	criterion, err := criterionRepo.FindByName(vendorID, "Delivery Track Record")
	require.NoError(t, err)
	require.NotNil(t, criterion.ManualScore)
	assert.Equal(t, 75.0, *criterion.ManualScore)
	assert.Equal(t, "site visit found aging equipment", criterion.Justification)

	raw, _, err := svc.Score(vendorID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, raw)
}

func TestTechnicalSetManualScoreOutOfRange(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)

	assert.True(t, models.IsValidationError(svc.SetManualScore(vendorID, "Delivery Track Record", -1, "")))
	assert.True(t, models.IsValidationError(svc.SetManualScore(vendorID, "Delivery Track Record", 100.5, "")))
}

func TestTechnicalSubmitRequiresJustification(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 100, AIScore: 90},
	})

	require.NoError(t, svc.SetManualScore(vendorID, "Delivery Track Record", 75, ""))

	err := svc.Submit(vendorID)
	assert.True(t, models.IsValidationError(err))

	// The record must stay editable.
	record, err := recordRepo.FindByVendorStage(vendorID, models.StageTechnical)
	require.NoError(t, err)
	assert.Equal(t, models.RecordOnProgress, record.Status)

	require.NoError(t, svc.SetManualScore(vendorID, "Delivery Track Record", 75, "reference checks did not hold up"))
	require.NoError(t, svc.Submit(vendorID))

	record, err = recordRepo.FindByVendorStage(vendorID, models.StageTechnical)
	require.NoError(t, err)
	assert.Equal(t, models.RecordFinal, record.Status)
	assert.NotNil(t, record.SubmittedAt)
}

func TestTechnicalSubmitOverrideEqualToBaseline(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 100, AIScore: 90},
	})

	// Confirming the AI baseline needs no written reason.
	require.NoError(t, svc.SetManualScore(vendorID, "Delivery Track Record", 90, ""))
	require.NoError(t, svc.Submit(vendorID))
}

func TestTechnicalSubmitBrokenWeights(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 80, AIScore: 90},
	})

	assert.True(t, models.IsValidationError(svc.Submit(vendorID)))
}

func TestTechnicalEditAfterFinal(t *testing.T) {
	criterionRepo := newFakeCriterionRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewTechnicalService(criterionRepo, recordRepo)

	vendorID := uuid.New()
	seedRecord(t, recordRepo, vendorID, models.StageTechnical)
	seedCriteria(t, criterionRepo, vendorID, []models.Criterion{
		{Name: "Delivery Track Record", Weight: 100, AIScore: 90},
	})

	require.NoError(t, svc.Submit(vendorID))

	assert.True(t, models.IsStateError(svc.SetManualScore(vendorID, "Delivery Track Record", 50, "late")))
	assert.True(t, models.IsStateError(svc.Submit(vendorID)))

	raw, _, err := svc.Score(vendorID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, raw)
}
