/*
evaluate.go - Rule definitions, in fixed evaluation order

Rules are independent of each other, so the order below exists purely to
keep the output deterministic. Documentation-grade cautions are warn,
advisory prompts are info, and the three attestation gaps plus the
no-income case are critical (blocking).

C1120_OWN_LT_100 deserves a note: the C-corp normalizer excludes sub-100%
entities entirely, so this rule can only fire if upstream filtering
failed. It exists as a defect signal, not a normal-path finding.
*/
package rules

import "github.com/shopspring/decimal"

var (
	hundred        = decimal.NewFromInt(100)
	twelve         = decimal.NewFromInt(12)
	sanityCostBand = decimal.NewFromFloat(0.05)
)

// Evaluate runs every rule over the fact bundle and returns the findings
// in documented order.
func Evaluate(f Facts) []Finding {
	var out []Finding
	add := func(code string, sev Severity, msg string, ctx map[string]decimal.Decimal) {
		out = append(out, Finding{Code: code, Severity: sev, Message: msg, Context: ctx})
	}

	if f.WageVariableIncludedShortHistory {
		add("W2_VAR_LT_12", SeverityWarn,
			"Variable W-2 income included with <12 months combined history.", nil)
	}
	if f.WageDecliningVariable {
		add("W2_VAR_DECLINE", SeverityWarn,
			"Potentially declining W-2 variable income.", nil)
	}
	if f.WageDecliningBase {
		add("W2_BASE_DECLINE", SeverityWarn,
			"Potentially declining W-2 base income.", nil)
	}
	if f.ScheduleCDeclining {
		add("SCHC_DECLINE", SeverityWarn,
			"Schedule C year-over-year decline >20%.", nil)
	}
	if f.K1Declining {
		add("K1_DECLINE", SeverityWarn,
			"K-1 income declining year-over-year.", nil)
	}
	if f.CCorpDeclining {
		add("C1120_DECLINE", SeverityWarn,
			"1120 income declining year-over-year.", nil)
	}
	if f.RentalDeclining {
		add("RENTAL_DECLINE", SeverityWarn,
			"Rental income declining year-over-year.", nil)
	}

	if f.UsesK1 && !f.K1DistributionsVerified && !f.K1LiquidityAnalyzed {
		add("K1_DIST_LIQ", SeverityCritical,
			"K-1 income used but neither distribution history nor business liquidity is verified.", nil)
	}
	if f.UsesCCorp && f.CCorpAnyBelowFullOwnership {
		add("C1120_OWN_LT_100", SeverityCritical,
			"1120 income requires 100% ownership to count.", nil)
	}
	if f.UsesSupportIncome && !f.SupportContinuanceOK {
		add("CONTINUANCE_REQ", SeverityCritical,
			"Support income requires >=3 years documented continuance.", nil)
	}
	if f.RentalMethodConflict {
		add("RENTAL_METHOD_CONFLICT", SeverityWarn,
			"Choose either Schedule E or 75% of gross rent, not both.", nil)
	}

	if !f.TotalIncome.IsPositive() {
		add("NO_INCOME", SeverityCritical,
			"No qualifying income entered; DTI is not meaningful.", nil)
	}

	fePct := f.FrontEndRatio.Mul(hundred)
	bePct := f.BackEndRatio.Mul(hundred)
	if fePct.GreaterThan(f.Targets.FrontEndPct) {
		add("HOUSING_RATIO_OVER_LIMIT", SeverityWarn,
			"Housing ratio exceeds the program target.",
			map[string]decimal.Decimal{"actual_pct": fePct, "limit_pct": f.Targets.FrontEndPct})
	}
	if bePct.GreaterThan(f.Targets.BackEndPct) {
		add("TOTAL_DTI_OVER_LIMIT", SeverityWarn,
			"Total DTI exceeds the program target.",
			map[string]decimal.Decimal{"actual_pct": bePct, "limit_pct": f.Targets.BackEndPct})
	}

	if bePct.GreaterThan(f.Targets.BackEndPct) || f.InvestmentProperty {
		add("CONSIDER_RESERVES", SeverityInfo,
			"Consider documenting reserves for this file.", nil)
	}

	if f.PurchasePrice.IsPositive() {
		nonPIAnnual := f.NonPIMonthlyCosts.Mul(twelve)
		band := f.PurchasePrice.Mul(sanityCostBand)
		if nonPIAnnual.GreaterThan(band) {
			add("SANITY_HOA_TAX_MI", SeverityInfo,
				"Taxes, insurance, HOA, and MI look high relative to the purchase price; verify data entry.",
				map[string]decimal.Decimal{"non_pi_annual": nonPIAnnual, "threshold": band})
		}
	}

	return out
}
