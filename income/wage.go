/*
wage.go - W-2 wage income normalizer

PURPOSE:
  Separates stable base pay from variable earnings (overtime, bonus,
  commission) and reduces both to a monthly qualifying figure per
  borrower. Variable pay only counts when the caller attests it should
  (IncludeVariable), but its trend flags are computed either way.

DECLINE TESTS:
  - Variable: prior-year variable total > 1.2x the annualized current-year
    variable rate.
  - Base: prior-year base pay > 1.2x current annualized base pay.

HISTORY:
  Combined current + prior reported months < 12 sets the
  insufficient-variable-history flag, which the rule engine surfaces as
  W2_VAR_LT_12 when variable pay is actually included.
*/
package income

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

var (
	fiftyTwo     = decimal.NewFromInt(52)
	onePointTwo  = decimal.NewFromFloat(1.2)
	twentyFour   = decimal.NewFromInt(24)
	zeroPoint8   = decimal.NewFromFloat(0.8)
	threeQuarter = decimal.NewFromFloat(0.75)
)

// WageTotals normalizes W-2 records into one WageSummary per borrower,
// sorted by borrower ID. An empty input yields an empty table.
func WageTotals(records []WageRecord) []WageSummary {
	byBorrower := map[int]*WageSummary{}

	for _, rec := range records {
		base := wageBaseMonthly(rec)

		varCurrent := finance.ClipNZ(rec.OvertimeYTD).
			Add(finance.ClipNZ(rec.BonusYTD)).
			Add(finance.ClipNZ(rec.CommissionYTD))
		varPrior := finance.ClipNZ(rec.OvertimeLY).
			Add(finance.ClipNZ(rec.BonusLY)).
			Add(finance.ClipNZ(rec.CommissionLY))
		varTotal := varCurrent.Add(varPrior)

		monthsCurrent := finance.ClipNZ(rec.MonthsYTD)
		monthsPrior := finance.ClipNZ(rec.MonthsLY)
		historyMonths := monthsCurrent.Add(monthsPrior)

		// Divisor: a 24-month window always divides by 24; anything else
		// divides by the literal reported months.
		variableMonthly := decimal.Zero
		if rec.VariableAvgMonths == 24 {
			variableMonthly = varTotal.Div(twentyFour)
		} else if historyMonths.IsPositive() {
			variableMonthly = varTotal.Div(historyMonths)
		}

		// Annualized current-year variable run rate for the decline test.
		annualizedVar := decimal.Zero
		if monthsCurrent.IsPositive() {
			annualizedVar = varCurrent.Div(monthsCurrent).Mul(finance.Twelve)
		}

		decliningVar := varPrior.GreaterThan(onePointTwo.Mul(annualizedVar))
		decliningBase := finance.ClipNZ(rec.BaseLY).
			GreaterThan(onePointTwo.Mul(base.Mul(finance.Twelve)))

		qualifying := base
		if rec.IncludeVariable {
			qualifying = qualifying.Add(variableMonthly)
		}

		row := byBorrower[rec.BorrowerID]
		if row == nil {
			row = &WageSummary{BorrowerID: rec.BorrowerID}
			byBorrower[rec.BorrowerID] = row
		}
		row.BaseMonthly = row.BaseMonthly.Add(base)
		row.VariableMonthly = row.VariableMonthly.Add(variableMonthly)
		row.QualifyingMonthly = row.QualifyingMonthly.Add(qualifying)
		row.DecliningVariable = row.DecliningVariable || decliningVar
		row.DecliningBase = row.DecliningBase || decliningBase
		insufficient := historyMonths.LessThan(finance.Twelve)
		row.InsufficientVariableHistory = row.InsufficientVariableHistory || insufficient
		row.VariableIncludedShortHistory = row.VariableIncludedShortHistory ||
			(rec.IncludeVariable && insufficient)
	}

	return sortedWageSummaries(byBorrower)
}

// wageBaseMonthly computes stable base pay for one record: annual salary
// over 12 for salaried, rate x hours x 52 / 12 for hourly, zero otherwise.
func wageBaseMonthly(rec WageRecord) decimal.Decimal {
	switch rec.PayType {
	case PaySalary:
		return finance.ClipNZ(rec.AnnualSalary).Div(finance.Twelve)
	case PayHourly:
		return finance.ClipNZ(rec.HourlyRate).
			Mul(finance.ClipNZ(rec.HoursPerWeek)).
			Mul(fiftyTwo).
			Div(finance.Twelve)
	default:
		return decimal.Zero
	}
}

func sortedWageSummaries(byBorrower map[int]*WageSummary) []WageSummary {
	out := make([]WageSummary, 0, len(byBorrower))
	for _, row := range byBorrower {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowerID < out[j].BorrowerID })
	return out
}
