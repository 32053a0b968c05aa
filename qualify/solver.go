/*
Package qualify solves the affordability problem: how large a loan fits
the borrower's income under the program's DTI targets.

PURPOSE:
  MaxAffordablePI turns income and targets into a principal & interest
  ceiling. MaxQualifyingLoan then finds the largest BASE loan whose
  program-adjusted loan amortizes within that ceiling.

WHY A SOLVER:
  Program fees scale with the loan they are financed into, and the
  affordability ceiling is expressed against the adjusted loan. That is a
  fixed-point problem: adjusting the base loan changes the fee, which
  changes the adjusted loan. A bounded binary search over [0, ceiling]
  converges on the largest base loan whose adjusted loan stays under the
  ceiling.

CONVERGENCE:
  A fixed 20 iterations trades exactness for bounded latency. The error
  is bounded by ceiling / 2^20, well under a cent at realistic loan
  sizes, so currency-rounded output is exact.
*/
package qualify

import (
	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
	"github.com/warp/prequal-engine/program"
)

// solverIterations bounds the binary search; error <= ceiling / 2^20.
const solverIterations = 20

var two = decimal.NewFromInt(2)

// AffordablePI is the payment ceiling implied by the DTI targets.
type AffordablePI struct {
	FrontEndMax  decimal.Decimal
	BackEndMax   decimal.Decimal
	Conservative decimal.Decimal
}

// MaxAffordablePI computes the maximum supportable principal & interest:
// front-end = income x FE% minus non-P&I housing costs, back-end =
// income x BE% minus other liabilities, conservative = the lesser of the
// two. Both legs floor at zero.
func MaxAffordablePI(totalIncome, otherLiabilities, taxesInsHOAMI decimal.Decimal, targets program.DTITargets) AffordablePI {
	feMax := finance.Clip(totalIncome.Mul(targets.FrontEndPct.Div(finance.Hundred)).Sub(taxesInsHOAMI))
	beMax := finance.Clip(totalIncome.Mul(targets.BackEndPct.Div(finance.Hundred)).Sub(otherLiabilities))
	conservative := feMax
	if beMax.LessThan(conservative) {
		conservative = beMax
	}
	return AffordablePI{FrontEndMax: feMax, BackEndMax: beMax, Conservative: conservative}
}

// LoanInput is one affordability solve.
type LoanInput struct {
	TotalIncome      decimal.Decimal
	OtherLiabilities decimal.Decimal
	TaxesInsHOAMI    decimal.Decimal
	Targets          program.DTITargets

	RatePct     decimal.Decimal
	TermYears   int
	DownPayment decimal.Decimal

	Program        program.Program
	Tables         program.FeeTables
	FinanceUpfront bool
	FirstUseVA     bool
	FICO           program.FICOBucket
}

// LoanResult is the resolved maximum: the P&I ceiling, the base loan, the
// program-adjusted loan it implies, and the purchase price (base + down).
type LoanResult struct {
	MaxPI         decimal.Decimal
	BaseLoan      decimal.Decimal
	AdjustedLoan  decimal.Decimal
	PurchasePrice decimal.Decimal
}

// MaxQualifyingLoan solves for the maximum base loan consistent with
// program fee feedback. When the targets leave no room for P&I the
// result is all zeros except the purchase price, which equals the down
// payment (cash purchase of whatever the down covers).
func MaxQualifyingLoan(in LoanInput) LoanResult {
	affordable := MaxAffordablePI(in.TotalIncome, in.OtherLiabilities, in.TaxesInsHOAMI, in.Targets)
	if !affordable.Conservative.IsPositive() {
		return LoanResult{PurchasePrice: in.DownPayment}
	}

	// Unconstrained ceiling: the principal the conservative payment
	// amortizes with no fees. The adjusted loan may never exceed it.
	ceiling := finance.PrincipalFromPayment(affordable.Conservative, in.RatePct, in.TermYears)

	low, high := decimal.Zero, ceiling
	for i := 0; i < solverIterations; i++ {
		mid := low.Add(high).Div(two)
		fees := in.feesFor(mid)
		if fees.AdjustedLoan.GreaterThan(ceiling) {
			high = mid
		} else {
			low = mid
		}
	}

	base := low
	fees := in.feesFor(base)
	return LoanResult{
		MaxPI:         affordable.Conservative,
		BaseLoan:      base,
		AdjustedLoan:  fees.AdjustedLoan,
		PurchasePrice: base.Add(in.DownPayment),
	}
}

// feesFor prices a candidate base loan at the purchase price it implies.
func (in LoanInput) feesFor(baseLoan decimal.Decimal) program.FeeResult {
	return program.ApplyFees(program.FeeInput{
		Program:        in.Program,
		PurchasePrice:  baseLoan.Add(in.DownPayment),
		BaseLoan:       baseLoan,
		DownPayment:    in.DownPayment,
		RatePct:        in.RatePct,
		TermYears:      in.TermYears,
		Tables:         in.Tables,
		FinanceUpfront: in.FinanceUpfront,
		FirstUseVA:     in.FirstUseVA,
		FICO:           in.FICO,
	})
}
