package scoring

import (
	"sort"

	"alfredoptarigan/tender-evaluator/internal/models"
)

// Opportunities builds the advisory negotiation-opportunity table for one
// vendor. For every cost component, the opportunity is the gap between the
// vendor's price and the lowest price quoted for that component across all
// vendors in the event. Rows are ordered descending by the share of the
// component price that gap represents, and a running cumulative-savings
// percentage over the vendor's total quote guides where to push first.
// The table feeds negotiators only; it never enters scoring.
func Opportunities(vendorID string, all []models.CostComponent) []models.OpportunityRow {
	lowest := make(map[string]float64)
	for i := range all {
		price := all[i].VendorPrice
		if cur, ok := lowest[all[i].Name]; !ok || price < cur {
			lowest[all[i].Name] = price
		}
	}

	var rows []models.OpportunityRow
	var vendorTotal float64
	for i := range all {
		c := all[i]
		if c.VendorID.String() != vendorID {
			continue
		}
		vendorTotal += c.VendorPrice

		opportunity := c.VendorPrice - lowest[c.Name]
		row := models.OpportunityRow{
			Component:           c.Name,
			EstimatedPrice:      c.EstimatedPrice,
			LowestPossiblePrice: lowest[c.Name],
			VendorPrice:         c.VendorPrice,
			Opportunity:         opportunity,
		}
		if c.VendorPrice > 0 {
			row.SavingsPct = RoundScore(opportunity / c.VendorPrice * 100)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		var ri, rj float64
		if rows[i].VendorPrice > 0 {
			ri = rows[i].Opportunity / rows[i].VendorPrice
		}
		if rows[j].VendorPrice > 0 {
			rj = rows[j].Opportunity / rows[j].VendorPrice
		}
		if ri != rj {
			return ri > rj
		}
		return rows[i].Component < rows[j].Component
	})

	var cumulative float64
	for i := range rows {
		cumulative += rows[i].Opportunity
		if vendorTotal > 0 {
			rows[i].CumulativeSavingsPct = RoundScore(cumulative / vendorTotal * 100)
		}
	}

	return rows
}
