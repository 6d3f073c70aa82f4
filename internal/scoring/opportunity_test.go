package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/tender-evaluator/internal/models"
)

func TestOpportunities(t *testing.T) {
	vendorA := uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendor-a"))
	vendorB := uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendor-b"))

	components := []models.CostComponent{
		{VendorID: vendorA, Name: "Materials", EstimatedPrice: 450_000, VendorPrice: 500_000},
		{VendorID: vendorB, Name: "Materials", EstimatedPrice: 450_000, VendorPrice: 400_000},
		{VendorID: vendorA, Name: "Labor", EstimatedPrice: 250_000, VendorPrice: 250_000},
		{VendorID: vendorB, Name: "Labor", EstimatedPrice: 250_000, VendorPrice: 300_000},
		{VendorID: vendorA, Name: "Logistics", EstimatedPrice: 100_000, VendorPrice: 250_000},
		{VendorID: vendorB, Name: "Logistics", EstimatedPrice: 100_000, VendorPrice: 200_000},
	}

	rows := Opportunities(vendorA.String(), components)
	require.Len(t, rows, 3)

	// Logistics (50k/250k) and Materials (100k/500k) tie at 20%, so name
	// order decides. Labor has no gap and sorts last.
	assert.Equal(t, "Logistics", rows[0].Component)
	assert.Equal(t, 50_000.0, rows[0].Opportunity)
	assert.Equal(t, 200_000.0, rows[0].LowestPossiblePrice)
	assert.Equal(t, 20.0, rows[0].SavingsPct)

	assert.Equal(t, "Materials", rows[1].Component)
	assert.Equal(t, 100_000.0, rows[1].Opportunity)
	assert.Equal(t, 400_000.0, rows[1].LowestPossiblePrice)

	assert.Equal(t, "Labor", rows[2].Component)
	assert.Equal(t, 0.0, rows[2].Opportunity)
	assert.Equal(t, 0.0, rows[2].SavingsPct)

	// Cumulative savings over the vendor's 1,000,000 total: 5%, then 15%.
	assert.Equal(t, 5.0, rows[0].CumulativeSavingsPct)
	assert.Equal(t, 15.0, rows[1].CumulativeSavingsPct)
	assert.Equal(t, 15.0, rows[2].CumulativeSavingsPct)
}

func TestOpportunitiesNoComponents(t *testing.T) {
	vendorA := uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendor-a"))
	assert.Empty(t, Opportunities(vendorA.String(), nil))
}
