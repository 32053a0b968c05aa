/*
piti.go - Proposed housing payment composition

PITIComponents composes ApplyFees with the amortization payment on the
adjusted loan, plus taxes (purchase price x tax rate / 12), insurance
(annual / 12), and association dues, returning every component and the
grand total. The scenario record is caller-owned raw data; all numeric
fields pass through the standard coercion at this boundary.
*/
package program

import (
	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

// HousingScenario is the caller-supplied purchase scenario. The engine
// only reads it.
type HousingScenario struct {
	Program Program

	PurchasePrice   float64
	DownPayment     float64
	RatePct         float64
	TermYears       int
	TaxRatePct      float64
	InsuranceAnnual float64
	HOAMonthly      float64

	FinanceUpfront bool
	FirstUseVA     bool
	FICOScore      float64

	// Marked by the caller; feeds the reserves advisory rule.
	InvestmentProperty bool
}

// BaseLoan returns purchase price minus down payment, floored at zero.
func (s HousingScenario) BaseLoan() decimal.Decimal {
	return finance.Clip(finance.NZ(s.PurchasePrice).Sub(finance.NZ(s.DownPayment)))
}

// PITIBreakdown is the full proposed-payment decomposition.
type PITIBreakdown struct {
	PrincipalInterest decimal.Decimal
	Taxes             decimal.Decimal
	Insurance         decimal.Decimal
	HOA               decimal.Decimal
	MortgageInsurance decimal.Decimal
	Total             decimal.Decimal

	AdjustedLoan decimal.Decimal
	LTV          decimal.Decimal
	UpfrontFee   decimal.Decimal
}

// PITIComponents prices the scenario under the given fee tables.
func PITIComponents(s HousingScenario, tables FeeTables) PITIBreakdown {
	purchase := finance.ClipNZ(s.PurchasePrice)
	baseLoan := s.BaseLoan()

	fees := ApplyFees(FeeInput{
		Program:        s.Program,
		PurchasePrice:  purchase,
		BaseLoan:       baseLoan,
		DownPayment:    purchase.Sub(baseLoan),
		RatePct:        finance.NZ(s.RatePct),
		TermYears:      s.TermYears,
		Tables:         tables,
		FinanceUpfront: s.FinanceUpfront,
		FirstUseVA:     s.FirstUseVA,
		FICO:           BucketForScore(s.FICOScore),
	})

	pi := finance.MonthlyPayment(fees.AdjustedLoan, finance.NZ(s.RatePct), s.TermYears)
	taxes := purchase.Mul(finance.ClipNZ(s.TaxRatePct)).Div(finance.Hundred).Div(finance.Twelve)
	insurance := finance.ClipNZ(s.InsuranceAnnual).Div(finance.Twelve)
	hoa := finance.ClipNZ(s.HOAMonthly)

	return PITIBreakdown{
		PrincipalInterest: pi,
		Taxes:             taxes,
		Insurance:         insurance,
		HOA:               hoa,
		MortgageInsurance: fees.MonthlyMI,
		Total:             pi.Add(taxes).Add(insurance).Add(hoa).Add(fees.MonthlyMI),
		AdjustedLoan:      fees.AdjustedLoan,
		LTV:               fees.LTV,
		UpfrontFee:        fees.UpfrontFee,
	}
}
