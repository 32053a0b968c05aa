/*
other.go - Miscellaneous income normalizer and support-income helpers

Other income covers alimony, child support, SSA, disability, and similar
monthly sources. Non-taxable sources may be grossed up by a percentage to
reflect qualifying income. No decline tracking applies.

Support-type sources (alimony / child support) additionally require a
>=3-year continuance attestation; UsesSupportIncome feeds that rule.
*/
package income

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

// OtherTotals normalizes miscellaneous income: gross monthly scaled by
// (1 + gross-up% / 100), summed per borrower.
func OtherTotals(records []OtherRecord) []OtherSummary {
	byBorrower := map[int]decimal.Decimal{}
	for _, rec := range records {
		grossUp := decimal.NewFromInt(1).
			Add(finance.ClipNZ(rec.GrossUpPct).Div(finance.Hundred))
		monthly := finance.ClipNZ(rec.GrossMonthly).Mul(grossUp)
		byBorrower[rec.BorrowerID] = byBorrower[rec.BorrowerID].Add(monthly)
	}

	out := make([]OtherSummary, 0, len(byBorrower))
	for borrower, monthly := range byBorrower {
		out = append(out, OtherSummary{BorrowerID: borrower, Monthly: monthly})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowerID < out[j].BorrowerID })
	return out
}

// DefaultGrossUpPct suggests a gross-up percentage for an income type.
// Non-taxable sources (child support, SSA, disability) conventionally
// gross up 25%; everything else defaults to no gross-up.
func DefaultGrossUpPct(incomeType string) float64 {
	t := strings.ToLower(incomeType)
	switch {
	case strings.Contains(t, "child support"),
		strings.Contains(t, "ssa"),
		strings.Contains(t, "social security"),
		strings.Contains(t, "disability"):
		return 25.0
	default:
		return 0.0
	}
}

// IsSupportIncome reports whether an income type is alimony/support-like
// and therefore subject to the continuance requirement.
func IsSupportIncome(incomeType string) bool {
	t := strings.ToLower(incomeType)
	return strings.Contains(t, "support") || strings.Contains(t, "alimony")
}

// UsesSupportIncome reports whether any record in the table is a
// support-type source with a positive amount.
func UsesSupportIncome(records []OtherRecord) bool {
	for _, rec := range records {
		if IsSupportIncome(rec.Type) && finance.ClipNZ(rec.GrossMonthly).IsPositive() {
			return true
		}
	}
	return false
}
