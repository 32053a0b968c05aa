/*
selfemployed.go - Schedule C, K-1, and C-corporation normalizers

PURPOSE:
  The three self-employment sources share one shape: per-record adjusted
  annual income is accumulated per borrower per tax year, the yearly
  series is averaged (or the most recent year is taken, per the caller's
  toggle), divided by 12, and the two most recent years are compared for
  the >20% decline flag.

PER-SOURCE FORMULAS:
  Schedule C: net profit + nonrecurring + depletion + depreciation
              - non-deductible meals + use of home + amort/casualty
              + business miles x mileage depreciation rate
  K-1:        (ordinary + rental/other + guaranteed payments
              + nonrecurring + depreciation + depletion + amort/casualty
              - notes payable <1yr - non-deductible T&E) x ownership%/100
  C-corp:     taxable income - total tax + nonrecurring + other inc/loss
              + depreciation + depletion + amort/casualty
              - notes payable <1yr - non-deductible T&E - dividends paid

OWNERSHIP FILTER:
  C-corp entities below 100% ownership are dropped BEFORE yearly
  aggregation, not flagged and partially counted. Reversing that order
  would change which years count toward the average.

DECLINE:
  Always the two most recent chronological data points. Fewer than two
  years of history never flags.
*/
package income

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

// =============================================================================
// YEARLY SERIES - shared aggregation for the averaged sources
// =============================================================================

// yearlySeries accumulates adjusted annual totals per borrower per year.
type yearlySeries map[int]map[int]decimal.Decimal

func (s yearlySeries) add(borrower, year int, amount decimal.Decimal) {
	years := s[borrower]
	if years == nil {
		years = map[int]decimal.Decimal{}
		s[borrower] = years
	}
	years[year] = years[year].Add(amount)
}

// summarize reduces each borrower's yearly series to a monthly figure and
// a decline flag. recentOnly takes the latest year instead of the mean.
func (s yearlySeries) summarize(recentOnly bool) []SourceSummary {
	out := make([]SourceSummary, 0, len(s))
	for borrower, years := range s {
		sorted := make([]int, 0, len(years))
		for y := range years {
			sorted = append(sorted, y)
		}
		sort.Ints(sorted)

		declining := false
		if len(sorted) >= 2 {
			latest := years[sorted[len(sorted)-1]]
			prior := years[sorted[len(sorted)-2]]
			declining = latest.LessThan(zeroPoint8.Mul(prior))
		}

		var annual decimal.Decimal
		if recentOnly {
			annual = years[sorted[len(sorted)-1]]
		} else {
			sum := decimal.Zero
			for _, y := range sorted {
				sum = sum.Add(years[y])
			}
			annual = sum.Div(decimal.NewFromInt(int64(len(sorted))))
		}

		out = append(out, SourceSummary{
			BorrowerID: borrower,
			Monthly:    annual.Div(finance.Twelve),
			Declining:  declining,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowerID < out[j].BorrowerID })
	return out
}

// =============================================================================
// SCHEDULE C - sole proprietorship
// =============================================================================

// ScheduleCTotals normalizes sole-proprietorship records into one row per
// borrower. recentOnly uses the latest tax year instead of the average.
func ScheduleCTotals(records []ScheduleCRecord, recentOnly bool) []SourceSummary {
	series := yearlySeries{}
	for _, rec := range records {
		mileageDep := finance.ClipNZ(rec.BusinessMiles).Mul(finance.ClipNZ(rec.MileageDepRate))
		adjusted := finance.ClipNZ(rec.NetProfit).
			Add(finance.ClipNZ(rec.Nonrecurring)).
			Add(finance.ClipNZ(rec.Depletion)).
			Add(finance.ClipNZ(rec.Depreciation)).
			Sub(finance.ClipNZ(rec.NonDeductibleMeals)).
			Add(finance.ClipNZ(rec.UseOfHome)).
			Add(finance.ClipNZ(rec.AmortCasualty)).
			Add(mileageDep)
		series.add(rec.BorrowerID, rec.Year, adjusted)
	}
	return series.summarize(recentOnly)
}

// =============================================================================
// K-1 - partnership / S-corp
// =============================================================================

// K1Totals normalizes partnership and S-corp K-1 records. Each record's
// adjusted annual figure is scaled by the borrower's ownership percentage
// before yearly aggregation.
func K1Totals(records []K1Record, recentOnly bool) []SourceSummary {
	series := yearlySeries{}
	for _, rec := range records {
		adjusted := finance.ClipNZ(rec.Ordinary).
			Add(finance.ClipNZ(rec.NetRentalOther)).
			Add(finance.ClipNZ(rec.GuaranteedPayments)).
			Add(finance.ClipNZ(rec.Nonrecurring)).
			Add(finance.ClipNZ(rec.Depreciation)).
			Add(finance.ClipNZ(rec.Depletion)).
			Add(finance.ClipNZ(rec.AmortCasualty)).
			Sub(finance.ClipNZ(rec.NotesUnder1Yr)).
			Sub(finance.ClipNZ(rec.NonDeductibleTE))
		ownership := finance.ClipNZ(rec.OwnershipPct).Div(finance.Hundred)
		series.add(rec.BorrowerID, rec.Year, adjusted.Mul(ownership))
	}
	return series.summarize(recentOnly)
}

// =============================================================================
// C-CORP - Form 1120
// =============================================================================

// CCorpTotals normalizes C-corporation records. Entities with ownership
// below 100% contribute nothing: they are filtered out before the yearly
// series is built, so excluded years never dilute the average.
func CCorpTotals(records []CCorpRecord, recentOnly bool) []SourceSummary {
	series := yearlySeries{}
	for _, rec := range records {
		if finance.ClipNZ(rec.OwnershipPct).LessThan(finance.Hundred) {
			continue
		}
		adjusted := finance.ClipNZ(rec.TaxableIncome).
			Sub(finance.ClipNZ(rec.TotalTax)).
			Add(finance.ClipNZ(rec.Nonrecurring)).
			Add(finance.ClipNZ(rec.OtherIncomeLoss)).
			Add(finance.ClipNZ(rec.Depreciation)).
			Add(finance.ClipNZ(rec.Depletion)).
			Add(finance.ClipNZ(rec.AmortCasualty)).
			Sub(finance.ClipNZ(rec.NotesUnder1Yr)).
			Sub(finance.ClipNZ(rec.NonDeductibleTE)).
			Sub(finance.ClipNZ(rec.DividendsPaid))
		series.add(rec.BorrowerID, rec.Year, adjusted)
	}
	return series.summarize(recentOnly)
}

// AnyBelowFullOwnership reports whether any C-corp record in the raw
// input carries less than 100% ownership. The rule engine surfaces this
// as a defect signal if such an entity ever reaches qualifying income.
func AnyBelowFullOwnership(records []CCorpRecord) bool {
	for _, rec := range records {
		if finance.ClipNZ(rec.OwnershipPct).LessThan(finance.Hundred) {
			return true
		}
	}
	return false
}
