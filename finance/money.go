/*
Package finance provides the closed-form loan mathematics and numeric
primitives shared by every other engine package.

PURPOSE:
  This package contains the leaf-level math of the qualification engine:
  amortization (payment <-> principal), the two debt-to-income ratios,
  loan-to-value, and the input-coercion helpers that make the engine
  tolerant of spreadsheet-style partial data.

KEY CONCEPTS IN THIS FILE (money.go):
  - NZ:    "numeric or zero" coercion applied at every input boundary
  - Clip:  clamps raw negatives to zero before aggregation
  - Cents: currency rounding for display and export

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal for all money aggregation. The only
     float64 math in the repository is the annuity exponentiation in
     amortization.go, which has no exact decimal form.
  2. Tolerance: missing or malformed numeric input never raises; it
     coerces to zero (NZ) the way a spreadsheet NZ() cell would.
  3. Purity: no state, no I/O, no configuration.

SEE ALSO:
  - amortization.go: payment/principal closed forms
  - ratios.go: DTI and LTV
*/
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Shared decimal constants. Exported because every engine package
// converts between annual/monthly and percent/fraction views.
var (
	Twelve  = decimal.NewFromInt(12)
	Hundred = decimal.NewFromInt(100)
)

// NZ converts a raw numeric input to a decimal amount, coercing NaN and
// infinities to zero. Uploaded worksheets surface blank cells as NaN, and
// the engine's contract is that missing data contributes nothing rather
// than poisoning later math.
func NZ(x float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x)
}

// NZDefault is NZ with a caller-chosen fallback instead of zero.
func NZDefault(x, fallback float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.NewFromFloat(fallback)
	}
	return decimal.NewFromFloat(x)
}

// Clip clamps a negative amount to zero. Normalizers clip every raw
// component before aggregation so a single bad entry cannot produce
// negative qualifying income.
func Clip(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ClipNZ composes NZ and Clip: the standard coercion for raw income fields.
func ClipNZ(x float64) decimal.Decimal {
	return Clip(NZ(x))
}

// Cents rounds to two decimal places for currency display and export.
// Engine-internal math stays unrounded; rounding happens once at the edge.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
