/*
wage_test.go - W-2 normalizer tests

Covers base-pay computation for both pay types, the two variable-pay
averaging windows, the 1.2x decline tests, and the short-history flags.
*/
package income_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/prequal-engine/income"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func assertDecimal(t *testing.T, want float64, got decimal.Decimal, msg string) {
	t.Helper()
	gotF, _ := got.Float64()
	assert.InDelta(t, want, gotF, 0.01, msg)
}

func TestWageTotals_SalariedBase(t *testing.T) {
	// GIVEN: A salaried borrower at $96,000/year, no variable pay
	// WHEN: Normalizing
	// THEN: Base and qualifying are both $8,000/month

	rows := income.WageTotals([]income.WageRecord{
		{BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 96000},
	})

	assert.Len(t, rows, 1)
	assertDecimal(t, 8000, rows[0].BaseMonthly, "base")
	assertDecimal(t, 8000, rows[0].QualifyingMonthly, "qualifying")
	assert.False(t, rows[0].DecliningVariable)
	assert.False(t, rows[0].DecliningBase)
}

func TestWageTotals_HourlyBase(t *testing.T) {
	// GIVEN: $30/hr at 40 hrs/week
	// THEN: 30 x 40 x 52 / 12 = $5,200/month

	rows := income.WageTotals([]income.WageRecord{
		{BorrowerID: 1, PayType: income.PayHourly, HourlyRate: 30, HoursPerWeek: 40},
	})

	assertDecimal(t, 5200, rows[0].BaseMonthly, "hourly base")
}

func TestWageTotals_Variable24MonthWindow(t *testing.T) {
	// GIVEN: $6,000 variable YTD + $6,000 prior year on a 24-month window
	// WHEN: Variable pay is included
	// THEN: Variable monthly = 12,000 / 24 = $500 regardless of reported months

	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			OvertimeYTD: 6000, MonthsYTD: 6,
			OvertimeLY: 6000, MonthsLY: 12,
			VariableAvgMonths: 24, IncludeVariable: true,
		},
	})

	assertDecimal(t, 500, rows[0].VariableMonthly, "variable")
	assertDecimal(t, 5500, rows[0].QualifyingMonthly, "qualifying")
}

func TestWageTotals_VariableLiteralMonths(t *testing.T) {
	// GIVEN: The same totals on an 18-month window with 18 reported months
	// THEN: Variable monthly = 12,000 / 18 = $666.67

	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			BonusYTD: 6000, MonthsYTD: 6,
			BonusLY: 6000, MonthsLY: 12,
			VariableAvgMonths: 18, IncludeVariable: true,
		},
	})

	assertDecimal(t, 666.67, rows[0].VariableMonthly, "variable")
}

func TestWageTotals_ExcludedVariableStillFlagged(t *testing.T) {
	// GIVEN: Declining variable pay the caller chose not to include
	// WHEN: Normalizing
	// THEN: Qualifying excludes it but the decline flag is still computed

	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			CommissionYTD: 3000, MonthsYTD: 6,
			CommissionLY: 8000, MonthsLY: 12,
			VariableAvgMonths: 24, IncludeVariable: false,
		},
	})

	// annualized current = 3000/6*12 = 6000; prior 8000 > 1.2*6000
	assert.True(t, rows[0].DecliningVariable)
	assertDecimal(t, 5000, rows[0].QualifyingMonthly, "base only")
}

func TestWageTotals_VariableDeclineBoundary(t *testing.T) {
	// prior 7000 <= 1.2 x annualized 6000 does not flag
	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			OvertimeYTD: 3000, MonthsYTD: 6,
			OvertimeLY: 7000, MonthsLY: 12,
			VariableAvgMonths: 24,
		},
	})
	assert.False(t, rows[0].DecliningVariable)
}

func TestWageTotals_BaseDecline(t *testing.T) {
	// GIVEN: Prior-year base $80,000 against a current $60,000 salary
	// THEN: 80,000 > 1.2 x 60,000 flags the base decline

	rows := income.WageTotals([]income.WageRecord{
		{BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000, BaseLY: 80000},
	})
	assert.True(t, rows[0].DecliningBase)
}

func TestWageTotals_ShortHistoryFlags(t *testing.T) {
	// GIVEN: 9 months of combined history with variable pay included
	// THEN: Both the insufficient-history and included-short flags set

	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			OvertimeYTD: 2000, MonthsYTD: 5, MonthsLY: 4,
			VariableAvgMonths: 9, IncludeVariable: true,
		},
	})

	assert.True(t, rows[0].InsufficientVariableHistory)
	assert.True(t, rows[0].VariableIncludedShortHistory)
}

func TestWageTotals_ShortHistoryNotIncluded(t *testing.T) {
	// Short history without inclusion documents but does not gate.
	rows := income.WageTotals([]income.WageRecord{
		{
			BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000,
			OvertimeYTD: 2000, MonthsYTD: 5, MonthsLY: 4,
			VariableAvgMonths: 9, IncludeVariable: false,
		},
	})

	assert.True(t, rows[0].InsufficientVariableHistory)
	assert.False(t, rows[0].VariableIncludedShortHistory)
}

func TestWageTotals_MultipleJobsSameBorrower(t *testing.T) {
	// GIVEN: Two jobs for borrower 1 and one for borrower 2
	// THEN: Per-borrower sums, output sorted by borrower ID

	rows := income.WageTotals([]income.WageRecord{
		{BorrowerID: 2, PayType: income.PaySalary, AnnualSalary: 48000},
		{BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 60000},
		{BorrowerID: 1, PayType: income.PayHourly, HourlyRate: 20, HoursPerWeek: 10},
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].BorrowerID)
	assert.Equal(t, 2, rows[1].BorrowerID)
	// 5000 + 20*10*52/12
	assertDecimal(t, 5866.67, rows[0].QualifyingMonthly, "two jobs")
	assertDecimal(t, 4000, rows[1].QualifyingMonthly, "borrower 2")
}

func TestWageTotals_NegativeInputsClip(t *testing.T) {
	rows := income.WageTotals([]income.WageRecord{
		{BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: -60000, OvertimeYTD: -500},
	})
	assert.True(t, rows[0].QualifyingMonthly.IsZero())
}
