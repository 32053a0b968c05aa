/*
evaluate_test.go - Rule engine tests

Covers each rule's trigger, the severity split, the fixed output order,
the numeric context attached to the ratio findings, and the blocking
predicate.
*/
package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/prequal-engine/program"
	"github.com/warp/prequal-engine/rules"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func baseFacts() rules.Facts {
	return rules.Facts{
		TotalIncome:   d(10000),
		FrontEndRatio: d(0.25),
		BackEndRatio:  d(0.35),
		Targets:       program.DTITargets{FrontEndPct: d(31), BackEndPct: d(45)},
		PurchasePrice: d(400000),
	}
}

func codes(findings []rules.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Code
	}
	return out
}

func findByCode(t *testing.T, findings []rules.Finding, code string) rules.Finding {
	t.Helper()
	for _, f := range findings {
		if f.Code == code {
			return f
		}
	}
	t.Fatalf("finding %s not produced", code)
	return rules.Finding{}
}

func TestEvaluate_CleanFileProducesNothing(t *testing.T) {
	findings := rules.Evaluate(baseFacts())
	assert.Empty(t, findings)
	assert.False(t, rules.HasBlocking(findings))
}

func TestEvaluate_K1AttestationGate(t *testing.T) {
	// GIVEN: K-1 income with neither attestation
	// THEN: One critical finding; either attestation alone clears it

	f := baseFacts()
	f.UsesK1 = true
	findings := rules.Evaluate(f)

	finding := findByCode(t, findings, "K1_DIST_LIQ")
	assert.Equal(t, rules.SeverityCritical, finding.Severity)
	assert.True(t, rules.HasBlocking(findings))

	f.K1DistributionsVerified = true
	assert.NotContains(t, codes(rules.Evaluate(f)), "K1_DIST_LIQ")

	f.K1DistributionsVerified = false
	f.K1LiquidityAnalyzed = true
	assert.NotContains(t, codes(rules.Evaluate(f)), "K1_DIST_LIQ")
}

func TestEvaluate_CCorpOwnershipDefectSignal(t *testing.T) {
	f := baseFacts()
	f.UsesCCorp = true
	f.CCorpAnyBelowFullOwnership = true

	finding := findByCode(t, rules.Evaluate(f), "C1120_OWN_LT_100")
	assert.Equal(t, rules.SeverityCritical, finding.Severity)
}

func TestEvaluate_SupportContinuance(t *testing.T) {
	f := baseFacts()
	f.UsesSupportIncome = true
	assert.Contains(t, codes(rules.Evaluate(f)), "CONTINUANCE_REQ")

	f.SupportContinuanceOK = true
	assert.NotContains(t, codes(rules.Evaluate(f)), "CONTINUANCE_REQ")
}

func TestEvaluate_NoIncome(t *testing.T) {
	f := baseFacts()
	f.TotalIncome = decimal.Zero

	findings := rules.Evaluate(f)
	assert.Equal(t, rules.SeverityCritical, findByCode(t, findings, "NO_INCOME").Severity)
	assert.True(t, rules.HasBlocking(findings))
}

func TestEvaluate_RatioFindingsCarryContext(t *testing.T) {
	// GIVEN: FE 0.33 over a 31% target and BE 0.48 over 45%
	// THEN: Both warn findings attach the actual and limit percentages

	f := baseFacts()
	f.FrontEndRatio = d(0.33)
	f.BackEndRatio = d(0.48)
	findings := rules.Evaluate(f)

	housing := findByCode(t, findings, "HOUSING_RATIO_OVER_LIMIT")
	assert.Equal(t, rules.SeverityWarn, housing.Severity)
	actualF, _ := housing.Context["actual_pct"].Float64()
	assert.InDelta(t, 33, actualF, 0.001)
	assert.True(t, housing.Context["limit_pct"].Equal(d(31)))

	total := findByCode(t, findings, "TOTAL_DTI_OVER_LIMIT")
	actualF, _ = total.Context["actual_pct"].Float64()
	assert.InDelta(t, 48, actualF, 0.001)

	// An over-limit back end also prompts the reserves advisory.
	reserves := findByCode(t, findings, "CONSIDER_RESERVES")
	assert.Equal(t, rules.SeverityInfo, reserves.Severity)
}

func TestEvaluate_RatioAtLimitDoesNotFire(t *testing.T) {
	f := baseFacts()
	f.FrontEndRatio = d(0.31)
	f.BackEndRatio = d(0.45)
	assert.Empty(t, rules.Evaluate(f))
}

func TestEvaluate_ReservesForInvestmentProperty(t *testing.T) {
	f := baseFacts()
	f.InvestmentProperty = true
	assert.Contains(t, codes(rules.Evaluate(f)), "CONSIDER_RESERVES")
}

func TestEvaluate_CostSanityCheck(t *testing.T) {
	// GIVEN: $1,800/month non-P&I costs on a $400,000 purchase
	// THEN: 21,600 annual > 5% of price (20,000) prompts the info finding

	f := baseFacts()
	f.NonPIMonthlyCosts = d(1800)
	finding := findByCode(t, rules.Evaluate(f), "SANITY_HOA_TAX_MI")
	assert.Equal(t, rules.SeverityInfo, finding.Severity)
	assert.True(t, finding.Context["non_pi_annual"].Equal(d(21600)))
	assert.True(t, finding.Context["threshold"].Equal(d(20000)))

	// Zero purchase price suppresses the check entirely.
	f.PurchasePrice = decimal.Zero
	assert.NotContains(t, codes(rules.Evaluate(f)), "SANITY_HOA_TAX_MI")
}

func TestEvaluate_DeclineWarningsAndOrder(t *testing.T) {
	// GIVEN: Every decline flag plus the rental method conflict
	// WHEN: Evaluating
	// THEN: Findings come out in the documented order

	f := baseFacts()
	f.WageVariableIncludedShortHistory = true
	f.WageDecliningVariable = true
	f.WageDecliningBase = true
	f.ScheduleCDeclining = true
	f.K1Declining = true
	f.CCorpDeclining = true
	f.RentalDeclining = true
	f.RentalMethodConflict = true

	assert.Equal(t, []string{
		"W2_VAR_LT_12",
		"W2_VAR_DECLINE",
		"W2_BASE_DECLINE",
		"SCHC_DECLINE",
		"K1_DECLINE",
		"C1120_DECLINE",
		"RENTAL_DECLINE",
		"RENTAL_METHOD_CONFLICT",
	}, codes(rules.Evaluate(f)))

	assert.False(t, rules.HasBlocking(rules.Evaluate(f)),
		"decline warnings alone never block")
}
