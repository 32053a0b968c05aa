/*
rental.go - Rental income normalizer

Two qualification policies:

  Schedule E net: (rents - expenses + depreciation) per year, averaged
  across years (there is no most-recent-only mode for rentals), divided
  by 12, with the standard >20% year-over-year decline test.

  75% of gross: 0.75 x (annual rents / 12) per property, summed per
  borrower. When a subject-property market rent is supplied, borrower #1
  additionally receives 0.75 x market rent - subject PITIA. This policy
  carries no decline flag.

Choosing both policies at once is a data-entry conflict the rule engine
reports; this file only ever applies one.
*/
package income

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

// RentalPolicy selects how rental income qualifies.
type RentalPolicy string

const (
	RentalScheduleE    RentalPolicy = "schedule_e"
	RentalGrossPercent RentalPolicy = "gross_75"
)

// RentalTotals normalizes rental records under the given policy.
// subjectMarketRent and subjectPITIA only apply to the 75%-of-gross
// policy, and only to borrower #1.
func RentalTotals(records []RentalRecord, policy RentalPolicy, subjectMarketRent, subjectPITIA float64) []SourceSummary {
	if policy == RentalScheduleE {
		return rentalScheduleE(records)
	}
	return rentalGross(records, subjectMarketRent, subjectPITIA)
}

func rentalScheduleE(records []RentalRecord) []SourceSummary {
	series := yearlySeries{}
	for _, rec := range records {
		net := finance.ClipNZ(rec.Rents).
			Sub(finance.ClipNZ(rec.Expenses)).
			Add(finance.ClipNZ(rec.Depreciation))
		series.add(rec.BorrowerID, rec.Year, net)
	}
	return series.summarize(false)
}

func rentalGross(records []RentalRecord, subjectMarketRent, subjectPITIA float64) []SourceSummary {
	byBorrower := map[int]decimal.Decimal{}
	for _, rec := range records {
		grossMonthly := finance.ClipNZ(rec.Rents).Div(finance.Twelve)
		byBorrower[rec.BorrowerID] = byBorrower[rec.BorrowerID].
			Add(threeQuarter.Mul(grossMonthly))
	}

	marketRent := finance.ClipNZ(subjectMarketRent)
	if marketRent.IsPositive() {
		if _, ok := byBorrower[1]; ok {
			subject := threeQuarter.Mul(marketRent).Sub(finance.ClipNZ(subjectPITIA))
			byBorrower[1] = byBorrower[1].Add(subject)
		}
	}

	out := make([]SourceSummary, 0, len(byBorrower))
	for borrower, monthly := range byBorrower {
		out = append(out, SourceSummary{BorrowerID: borrower, Monthly: monthly})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowerID < out[j].BorrowerID })
	return out
}
