package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/tender-evaluator/internal/models"
)

func criterion(name string, weight, aiScore float64, manual *float64) models.Criterion {
	return models.Criterion{
		Name:        name,
		Weight:      weight,
		AIScore:     aiScore,
		ManualScore: manual,
	}
}

func ptr(v float64) *float64 { return &v }

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name     string
		criteria []models.Criterion
		want     float64
	}{
		{
			name: "two criteria 60/40",
			criteria: []models.Criterion{
				criterion("Technical Capability", 60, 90, nil),
				criterion("Relevant Experience", 40, 70, nil),
			},
			want: 82.0,
		},
		{
			name: "manual override replaces ai score",
			criteria: []models.Criterion{
				criterion("Technical Capability", 60, 90, ptr(50)),
				criterion("Relevant Experience", 40, 70, nil),
			},
			want: 58.0,
		},
		{
			name: "all zero scores",
			criteria: []models.Criterion{
				criterion("A", 50, 0, nil),
				criterion("B", 50, 0, nil),
			},
			want: 0,
		},
		{
			name: "all max scores",
			criteria: []models.Criterion{
				criterion("A", 30, 100, nil),
				criterion("B", 70, 100, nil),
			},
			want: 100,
		},
		{
			name: "rounds to one decimal",
			criteria: []models.Criterion{
				criterion("A", 30, 77, nil),
				criterion("B", 70, 81, nil),
			},
			want: 79.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightedScore(tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestWeightedScoreRejectsBrokenWeights(t *testing.T) {
	tests := []struct {
		name     string
		criteria []models.Criterion
	}{
		{
			name: "weights under 100",
			criteria: []models.Criterion{
				criterion("A", 60, 90, nil),
				criterion("B", 30, 70, nil),
			},
		},
		{
			name: "weights over 100",
			criteria: []models.Criterion{
				criterion("A", 60, 90, nil),
				criterion("B", 50, 70, nil),
			},
		},
		{
			name: "negative weight",
			criteria: []models.Criterion{
				criterion("A", 120, 90, nil),
				criterion("B", -20, 70, nil),
			},
		},
		{
			name:     "no criteria",
			criteria: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightedScore(tt.criteria)
			require.Error(t, err)
			assert.True(t, models.IsValidationError(err))
		})
	}
}

func TestNormalizeTechnical(t *testing.T) {
	assert.Equal(t, 80.0, NormalizeTechnical(100))
	assert.Equal(t, 65.6, NormalizeTechnical(82))
	assert.Equal(t, 0.0, NormalizeTechnical(0))
}

func TestBand(t *testing.T) {
	tests := []struct {
		raw  float64
		want RatingBand
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79.9, BandAcceptable},
		{60, BandAcceptable},
		{59.9, BandBelowStandard},
		{0, BandBelowStandard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.raw), "raw %.1f", tt.raw)
	}
}
