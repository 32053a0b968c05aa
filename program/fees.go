/*
fees.go - Program fee engine

PURPOSE:
  ApplyFees computes, for one (program, loan) pair: the upfront fee, the
  adjusted loan when that fee is financed, the recurring monthly MI, and
  the reported LTV.

THE LTV ASYMMETRY (deliberate, do not unify):
  Conventional has no upfront fee, so its LTV is always computed against
  the base loan. FHA/VA/USDA recompute LTV against the ADJUSTED loan, but
  only when the upfront fee is financed into it. The conditional is per
  program rule, not a shared code path.
*/
package program

import (
	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/finance"
)

// FeeInput is one fee computation. Tables are caller-owned and read-only.
type FeeInput struct {
	Program       Program
	PurchasePrice decimal.Decimal
	BaseLoan      decimal.Decimal
	DownPayment   decimal.Decimal
	RatePct       decimal.Decimal
	TermYears     int

	Tables FeeTables

	FinanceUpfront bool
	FirstUseVA     bool
	FICO           FICOBucket
}

// FeeResult is the program fee engine's output.
type FeeResult struct {
	AdjustedLoan decimal.Decimal
	MonthlyMI    decimal.Decimal
	UpfrontFee   decimal.Decimal
	LTV          decimal.Decimal
}

// ApplyFees runs the program-specific fee computation. Unknown programs
// pass through: no MI, no upfront fee, adjusted loan = base loan.
func ApplyFees(in FeeInput) FeeResult {
	ltv := finance.LTV(in.PurchasePrice, in.BaseLoan)
	downPct := decimal.Zero
	if in.PurchasePrice.IsPositive() {
		downPct = finance.Hundred.Mul(in.DownPayment).Div(in.PurchasePrice)
	}

	switch in.Program {
	case Conventional:
		annual := conventionalMIFactor(ltv, in.FICO, in.Tables.ConvMI)
		monthly := in.BaseLoan.Mul(annual.Div(finance.Hundred)).Div(finance.Twelve)
		return FeeResult{AdjustedLoan: in.BaseLoan, MonthlyMI: monthly, LTV: ltv}

	case FHA:
		ufPct := in.Tables.FHA.UFMIPPct
		if ufPct.IsZero() {
			ufPct = decimal.NewFromFloat(defaultUFMIPPct)
		}
		upfront := in.BaseLoan.Mul(ufPct.Div(finance.Hundred))
		adjusted, reportedLTV := financeUpfront(in, upfront, ltv)
		annual := fhaMIPFactor(ltv, in.TermYears, in.Tables.FHA.Annual)
		monthly := adjusted.Mul(annual.Div(finance.Hundred)).Div(finance.Twelve)
		return FeeResult{AdjustedLoan: adjusted, MonthlyMI: monthly, UpfrontFee: upfront, LTV: reportedLTV}

	case VA:
		feePct := vaFundingFeePct(in.FirstUseVA, downPct, in.Tables.VA)
		upfront := in.BaseLoan.Mul(feePct.Div(finance.Hundred))
		adjusted, reportedLTV := financeUpfront(in, upfront, ltv)
		return FeeResult{AdjustedLoan: adjusted, UpfrontFee: upfront, LTV: reportedLTV}

	case USDA:
		guarPct := in.Tables.USDA.GuaranteePct
		if guarPct.IsZero() {
			guarPct = decimal.NewFromFloat(defaultUSDAGuarPct)
		}
		annualPct := in.Tables.USDA.AnnualPct
		if annualPct.IsZero() {
			annualPct = decimal.NewFromFloat(defaultUSDAAnnual)
		}
		upfront := in.BaseLoan.Mul(guarPct.Div(finance.Hundred))
		adjusted, reportedLTV := financeUpfront(in, upfront, ltv)
		monthly := adjusted.Mul(annualPct.Div(finance.Hundred)).Div(finance.Twelve)
		return FeeResult{AdjustedLoan: adjusted, MonthlyMI: monthly, UpfrontFee: upfront, LTV: reportedLTV}

	default:
		return FeeResult{AdjustedLoan: in.BaseLoan, LTV: ltv}
	}
}

// financeUpfront resolves the adjusted loan and the LTV to report. The
// adjusted loan absorbs the upfront fee only when it is financed, and the
// reported LTV follows the same conditional.
func financeUpfront(in FeeInput, upfront, baseLTV decimal.Decimal) (adjusted, ltv decimal.Decimal) {
	if !in.FinanceUpfront {
		return in.BaseLoan, baseLTV
	}
	adjusted = in.BaseLoan.Add(upfront)
	return adjusted, finance.LTV(in.PurchasePrice, adjusted)
}

// =============================================================================
// TABLE LOOKUPS - every miss resolves to a documented default
// =============================================================================

func conventionalMIFactor(ltv decimal.Decimal, fico FICOBucket, table ConvMITable) decimal.Decimal {
	band := BandBelow85
	switch {
	case ltv.GreaterThanOrEqual(decimal.NewFromInt(97)):
		band = Band97Plus
	case ltv.GreaterThanOrEqual(decimal.NewFromInt(95)):
		band = Band95To97
	case ltv.GreaterThanOrEqual(decimal.NewFromInt(90)):
		band = Band90To95
	case ltv.GreaterThanOrEqual(decimal.NewFromInt(85)):
		band = Band85To90
	}

	if bands, ok := table[fico]; ok {
		if factor, ok := bands[band]; ok {
			return factor
		}
	}
	return defaultConvBands[band]
}

func fhaMIPFactor(ltv decimal.Decimal, termYears int, table map[string]decimal.Decimal) decimal.Decimal {
	key := ">95"
	if ltv.LessThanOrEqual(decimal.NewFromInt(95)) {
		key = "<=95"
	}
	if termYears <= 15 {
		key += "_<=15"
	} else {
		key += "_>15"
	}
	if factor, ok := table[key]; ok {
		return factor
	}
	return decimal.NewFromFloat(defaultFHAAnnualPct)
}

func vaFundingFeePct(firstUse bool, downPct decimal.Decimal, table VATable) decimal.Decimal {
	prefix := "subseq"
	if firstUse {
		prefix = "first"
	}
	suffix := "_0_5"
	switch {
	case downPct.GreaterThanOrEqual(decimal.NewFromInt(10)):
		suffix = "_10+"
	case downPct.GreaterThanOrEqual(decimal.NewFromInt(5)):
		suffix = "_5_10"
	}
	key := prefix + suffix
	if feePct, ok := table[key]; ok {
		return feePct
	}
	return defaultVA[key]
}
