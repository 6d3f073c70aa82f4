package scoring

import (
	"sort"

	"alfredoptarigan/tender-evaluator/internal/models"
)

// RankingInput carries the three frozen stage results for one vendor into
// the aggregator. TechnicalRaw and CommercialRaw are the 0-100 stage scores
// before normalization.
type RankingInput struct {
	Vendor               models.Vendor
	AdministrationResult models.AdministrationResult
	TechnicalRaw         float64
	CommercialRaw        float64
	FinalOffer           float64
}

// Rank combines the administration gate and the two normalized scores into
// the final standing. Only eligible vendors (administration pass) receive
// rank numbers, ordered by total score descending with the lower final
// commercial offer winning ties. Ineligible vendors are kept in the output
// with rank 0 and are always "Not Selected". The function is pure: identical
// inputs yield identical output.
func Rank(inputs []RankingInput) []models.RankedVendor {
	out := make([]models.RankedVendor, 0, len(inputs))

	for _, in := range inputs {
		technical := NormalizeTechnical(in.TechnicalRaw)
		commercial := NormalizeCommercial(in.CommercialRaw)

		out = append(out, models.RankedVendor{
			VendorID:             in.Vendor.ID,
			VendorName:           in.Vendor.Name,
			AdministrationResult: in.AdministrationResult,
			TechnicalScore:       technical,
			CommercialScore:      commercial,
			TotalScore:           RoundScore(technical + commercial),
			FinalOffer:           in.FinalOffer,
			Eligible:             in.AdministrationResult == models.AdministrationPass,
			Status:               models.LabelNotSelected,
		})
	}

	// Eligible first, then total score descending; ties go to the lower
	// final commercial offer, then vendor ID for a stable total order.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Eligible != b.Eligible {
			return a.Eligible
		}
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.FinalOffer != b.FinalOffer {
			return a.FinalOffer < b.FinalOffer
		}
		return a.VendorID.String() < b.VendorID.String()
	})

	rank := 0
	for i := range out {
		if !out[i].Eligible {
			continue
		}
		rank++
		out[i].Rank = rank
		switch rank {
		case 1:
			out[i].Status = models.LabelWinner
		case 2:
			out[i].Status = models.LabelRunnerUp
		}
	}

	return out
}
