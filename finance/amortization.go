/*
amortization.go - Fully-amortizing annuity closed forms

PURPOSE:
  The two primitives every payment and affordability computation rests on:

    MonthlyPayment(P, rate, term)        payment for a principal
    PrincipalFromPayment(pmt, rate, term) exact algebraic inverse

ROUND-TRIP PROPERTY:
  PrincipalFromPayment(MonthlyPayment(P, r, t), r, t) ~= P within floating
  tolerance; the tests hold this at P=400000, r=6.5, t=30 within $1.50.

NUMERIC EDGES:
  - term <= 0 years: both functions return 0
  - |periodic rate| < 1e-9: degrade to straight-line principal/months
    (payment*months for the inverse) to avoid division instability

The (1+r)^-n exponentiation is computed in float64 - there is no exact
decimal form - and the result is applied to the decimal operand, so money
stays decimal end to end.
*/
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// nearZeroRate is the threshold below which the periodic rate is treated
// as exactly zero.
const nearZeroRate = 1e-9

// MonthlyPayment returns the fully-amortizing monthly payment for a loan.
// annualRatePct is the nominal yearly rate (6.5 means 6.5%), termYears the
// amortization period.
func MonthlyPayment(principal decimal.Decimal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	n := termYears * 12
	if n <= 0 {
		return decimal.Zero
	}
	r := periodicRate(annualRatePct)
	if math.Abs(r) < nearZeroRate {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}
	// payment = P * r / (1 - (1+r)^-n)
	factor := r / (1 - math.Pow(1+r, float64(-n)))
	return principal.Mul(decimal.NewFromFloat(factor))
}

// PrincipalFromPayment reverses amortization: the principal whose monthly
// payment equals the given amount at the given rate and term.
func PrincipalFromPayment(payment decimal.Decimal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	n := termYears * 12
	if n <= 0 {
		return decimal.Zero
	}
	r := periodicRate(annualRatePct)
	if math.Abs(r) < nearZeroRate {
		return payment.Mul(decimal.NewFromInt(int64(n)))
	}
	// principal = pmt * (1 - (1+r)^-n) / r
	factor := (1 - math.Pow(1+r, float64(-n))) / r
	return payment.Mul(decimal.NewFromFloat(factor))
}

// periodicRate converts a nominal annual percentage to a monthly fraction.
func periodicRate(annualRatePct decimal.Decimal) float64 {
	f, _ := annualRatePct.Div(Hundred).Div(Twelve).Float64()
	return f
}
