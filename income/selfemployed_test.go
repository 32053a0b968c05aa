/*
selfemployed_test.go - Schedule C, K-1, and C-corp normalizer tests

Covers the per-source adjustment formulas, multi-year averaging vs the
most-recent-only toggle, the >20% decline test, K-1 ownership scaling,
and the C-corp full-ownership filter.
*/
package income_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/prequal-engine/income"
)

func TestScheduleCTotals_AdjustmentFormula(t *testing.T) {
	// GIVEN: One tax year with every adjustment populated
	// WHEN: Normalizing
	// THEN: 100000 + 5000 + 1000 + 8000 - 2000 + 3000 + 1500 + 10000*0.30
	//       = 119,500 / 12 = 9,958.33

	rows := income.ScheduleCTotals([]income.ScheduleCRecord{
		{
			BorrowerID: 1, Year: 2024,
			NetProfit: 100000, Nonrecurring: 5000, Depletion: 1000,
			Depreciation: 8000, NonDeductibleMeals: 2000, UseOfHome: 3000,
			AmortCasualty: 1500, BusinessMiles: 10000, MileageDepRate: 0.30,
		},
	}, false)

	assert.Len(t, rows, 1)
	assertDecimal(t, 9958.33, rows[0].Monthly, "adjusted monthly")
	assert.False(t, rows[0].Declining, "single year never declines")
}

func TestScheduleCTotals_AverageVsRecentOnly(t *testing.T) {
	records := []income.ScheduleCRecord{
		{BorrowerID: 1, Year: 2023, NetProfit: 100000},
		{BorrowerID: 1, Year: 2024, NetProfit: 70000},
	}

	avg := income.ScheduleCTotals(records, false)
	assertDecimal(t, 7083.33, avg[0].Monthly, "two-year average")

	recent := income.ScheduleCTotals(records, true)
	assertDecimal(t, 5833.33, recent[0].Monthly, "latest year only")
}

func TestScheduleCTotals_DeclineFlag(t *testing.T) {
	// 70,000 < 0.8 x 100,000 flags; 60,000 after 50,000 does not.
	declining := income.ScheduleCTotals([]income.ScheduleCRecord{
		{BorrowerID: 1, Year: 2023, NetProfit: 100000},
		{BorrowerID: 1, Year: 2024, NetProfit: 70000},
	}, false)
	assert.True(t, declining[0].Declining)

	growing := income.ScheduleCTotals([]income.ScheduleCRecord{
		{BorrowerID: 1, Year: 2023, NetProfit: 50000},
		{BorrowerID: 1, Year: 2024, NetProfit: 60000},
	}, false)
	assert.False(t, growing[0].Declining)
}

func TestScheduleCTotals_DeclineUsesTwoMostRecentYears(t *testing.T) {
	// GIVEN: Three years where only the oldest-to-middle step dropped
	// THEN: The flag reads the two most recent years only

	rows := income.ScheduleCTotals([]income.ScheduleCRecord{
		{BorrowerID: 1, Year: 2022, NetProfit: 150000},
		{BorrowerID: 1, Year: 2023, NetProfit: 90000},
		{BorrowerID: 1, Year: 2024, NetProfit: 88000},
	}, false)
	assert.False(t, rows[0].Declining)
}

func TestK1Totals_OwnershipScaling(t *testing.T) {
	// GIVEN: $60,000 adjusted at 50% ownership
	// THEN: $30,000/year -> $2,500/month

	rows := income.K1Totals([]income.K1Record{
		{
			BorrowerID: 1, Year: 2024,
			OwnershipPct: 50, Ordinary: 50000, GuaranteedPayments: 10000,
		},
	}, false)

	assertDecimal(t, 2500, rows[0].Monthly, "ownership-scaled monthly")
}

func TestK1Totals_DeductionsSubtract(t *testing.T) {
	// 50000 - 4000 (notes) - 2000 (T&E) at 100% = 44,000/yr
	rows := income.K1Totals([]income.K1Record{
		{
			BorrowerID: 1, Year: 2024,
			OwnershipPct: 100, Ordinary: 50000,
			NotesUnder1Yr: 4000, NonDeductibleTE: 2000,
		},
	}, false)
	assertDecimal(t, 3666.67, rows[0].Monthly, "after subtractions")
}

func TestCCorpTotals_BelowFullOwnershipExcluded(t *testing.T) {
	// GIVEN: A 60%-owned corporation
	// WHEN: Normalizing
	// THEN: The entity contributes nothing at all

	rows := income.CCorpTotals([]income.CCorpRecord{
		{BorrowerID: 1, Year: 2024, OwnershipPct: 60, TaxableIncome: 500000},
	}, false)

	assert.Empty(t, rows)
	assert.True(t, income.AnyBelowFullOwnership([]income.CCorpRecord{
		{OwnershipPct: 60},
	}))
}

func TestCCorpTotals_FullOwnershipFormula(t *testing.T) {
	// 200000 - 40000 + 10000 - 20000 = 150,000/yr -> 12,500/mo
	rows := income.CCorpTotals([]income.CCorpRecord{
		{
			BorrowerID: 1, Year: 2024, OwnershipPct: 100,
			TaxableIncome: 200000, TotalTax: 40000,
			Depreciation: 10000, DividendsPaid: 20000,
		},
	}, false)

	assertDecimal(t, 12500, rows[0].Monthly, "full ownership monthly")
	assert.False(t, income.AnyBelowFullOwnership(nil))
}

func TestCCorpTotals_FilterRunsBeforeAveraging(t *testing.T) {
	// GIVEN: One qualifying year and one 60%-owned year
	// THEN: The average is over the qualifying year alone, and a single
	//       surviving year cannot trip the decline test

	rows := income.CCorpTotals([]income.CCorpRecord{
		{BorrowerID: 1, Year: 2023, OwnershipPct: 60, TaxableIncome: 300000},
		{BorrowerID: 1, Year: 2024, OwnershipPct: 100, TaxableIncome: 120000},
	}, false)

	assert.Len(t, rows, 1)
	assertDecimal(t, 10000, rows[0].Monthly, "only the 100% year counts")
	assert.False(t, rows[0].Declining)
}
