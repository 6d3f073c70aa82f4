package scoring

import (
	"math"

	"alfredoptarigan/tender-evaluator/internal/models"
)

// WeightSumTolerance is the allowed drift when checking that a vendor's
// criterion weights sum to 100.
const WeightSumTolerance = 0.001

// TechnicalWeight is the technical stage's share of the 100-point total.
const TechnicalWeight = 80.0

type RatingBand string

const (
	BandExcellent     RatingBand = "Excellent"
	BandAcceptable    RatingBand = "Acceptable"
	BandBelowStandard RatingBand = "Below Standard"
)

// WeightedScore computes the raw 0-100 technical score for one vendor's
// criteria: sum of effective score times weight, divided by 100, rounded to
// one decimal. The effective score is the manual override when present, the
// AI baseline otherwise. Weights must sum to 100; a violation is a data
// integrity error reported to the caller, never silently corrected.
func WeightedScore(criteria []models.Criterion) (float64, error) {
	if err := ValidateWeights(criteria); err != nil {
		return 0, err
	}

	var total float64
	for i := range criteria {
		total += criteria[i].EffectiveScore() * criteria[i].Weight
	}

	return RoundScore(total / 100), nil
}

// ValidateWeights checks that the criterion weights sum to 100 and none are
// negative.
func ValidateWeights(criteria []models.Criterion) error {
	var sum float64
	for i := range criteria {
		if criteria[i].Weight < 0 {
			return models.NewValidationError("criterion %q has negative weight %.2f", criteria[i].Name, criteria[i].Weight)
		}
		sum += criteria[i].Weight
	}

	if math.Abs(sum-100) > WeightSumTolerance {
		return models.NewValidationError("criterion weights sum to %.2f, must sum to 100", sum)
	}

	return nil
}

// NormalizeTechnical rescales a raw 0-100 technical score to its 0-80
// contribution to the total.
func NormalizeTechnical(raw float64) float64 {
	return RoundScore(raw * TechnicalWeight / 100)
}

// Band maps a raw 0-100 technical score to its display rating. The bands are
// presentational only and play no part in ranking.
func Band(raw float64) RatingBand {
	switch {
	case raw >= 80:
		return BandExcellent
	case raw >= 60:
		return BandAcceptable
	default:
		return BandBelowStandard
	}
}

// RoundScore rounds to one decimal, the resolution used for all reported
// scores.
func RoundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
