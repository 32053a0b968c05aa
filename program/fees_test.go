/*
fees_test.go - Program fee engine tests

Covers each program's fee path, the financed-upfront adjusted loan and
its LTV treatment, the conventional LTV staying on the base loan, and
default fallbacks when tables are empty.
*/
package program_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/prequal-engine/program"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func assertDecimal(t *testing.T, want float64, got decimal.Decimal, msg string) {
	t.Helper()
	gotF, _ := got.Float64()
	assert.InDelta(t, want, gotF, 0.01, msg)
}

func feeInput(p program.Program, purchase, down float64) program.FeeInput {
	return program.FeeInput{
		Program:       p,
		PurchasePrice: d(purchase),
		BaseLoan:      d(purchase - down),
		DownPayment:   d(down),
		RatePct:       d(6.5),
		TermYears:     30,
		Tables:        program.DefaultFeeTables(),
		FICO:          program.Fico760Plus,
	}
}

func TestApplyFees_Conventional_MIBandAndBaseLTV(t *testing.T) {
	// GIVEN: 90% LTV conventional
	// WHEN: Applying fees
	// THEN: The 90-95 band (0.40%) prices monthly MI on the base loan,
	//       no upfront fee, LTV stays against the base loan

	result := program.ApplyFees(feeInput(program.Conventional, 500000, 50000))

	assertDecimal(t, 90, result.LTV, "LTV")
	assertDecimal(t, 150, result.MonthlyMI, "450000 x 0.40% / 12")
	assert.True(t, result.UpfrontFee.IsZero())
	assert.True(t, result.AdjustedLoan.Equal(d(450000)))
}

func TestApplyFees_Conventional_NoMIBelow85(t *testing.T) {
	result := program.ApplyFees(feeInput(program.Conventional, 500000, 100000))
	assertDecimal(t, 80, result.LTV, "LTV")
	assert.True(t, result.MonthlyMI.IsZero())
}

func TestApplyFees_FHA_FinancedUpfront(t *testing.T) {
	// GIVEN: FHA at 97.5% base LTV with the UFMIP financed
	// WHEN: Applying fees
	// THEN: Adjusted = base x 1.0175, reported LTV against the adjusted
	//       loan, annual MIP keyed off the BASE LTV and priced on adjusted

	in := feeInput(program.FHA, 400000, 10000)
	in.FinanceUpfront = true
	result := program.ApplyFees(in)

	assertDecimal(t, 6825, result.UpfrontFee, "390000 x 1.75%")
	assertDecimal(t, 396825, result.AdjustedLoan, "base + financed UFMIP")
	assertDecimal(t, 99.21, result.LTV, "LTV against adjusted loan")
	// >95 LTV, >15yr term: 0.55% on the adjusted loan
	assertDecimal(t, 181.88, result.MonthlyMI, "396825 x 0.55% / 12")
}

func TestApplyFees_FHA_UpfrontPaidInCash(t *testing.T) {
	// The fee is still owed, but the loan and LTV do not absorb it.
	in := feeInput(program.FHA, 400000, 10000)
	result := program.ApplyFees(in)

	assertDecimal(t, 6825, result.UpfrontFee, "fee unchanged")
	assertDecimal(t, 390000, result.AdjustedLoan, "base loan")
	assertDecimal(t, 97.5, result.LTV, "base LTV")
}

func TestApplyFees_VA_FundingFeeBands(t *testing.T) {
	// First use at 5% down lands in the first_5_10 band (1.50%).
	in := feeInput(program.VA, 500000, 25000)
	in.FirstUseVA = true
	in.FinanceUpfront = true
	result := program.ApplyFees(in)

	assertDecimal(t, 7125, result.UpfrontFee, "475000 x 1.50%")
	assertDecimal(t, 482125, result.AdjustedLoan, "financed")
	assert.True(t, result.MonthlyMI.IsZero(), "VA has no monthly MI")

	// Subsequent use with nothing down pays 3.30%.
	in2 := feeInput(program.VA, 500000, 0)
	result2 := program.ApplyFees(in2)
	assertDecimal(t, 16500, result2.UpfrontFee, "500000 x 3.30%")
}

func TestApplyFees_USDA(t *testing.T) {
	in := feeInput(program.USDA, 300000, 0)
	in.FinanceUpfront = true
	result := program.ApplyFees(in)

	assertDecimal(t, 3000, result.UpfrontFee, "1% guarantee")
	assertDecimal(t, 303000, result.AdjustedLoan, "financed")
	assertDecimal(t, 88.38, result.MonthlyMI, "303000 x 0.35% / 12")
}

func TestApplyFees_Jumbo_PassThrough(t *testing.T) {
	result := program.ApplyFees(feeInput(program.Jumbo, 900000, 200000))

	assert.True(t, result.AdjustedLoan.Equal(d(700000)))
	assert.True(t, result.UpfrontFee.IsZero())
	assert.True(t, result.MonthlyMI.IsZero())
}

func TestApplyFees_EmptyTablesUseDefaults(t *testing.T) {
	// GIVEN: Zero-valued FeeTables
	// THEN: Every lookup resolves to the documented default factors

	in := feeInput(program.FHA, 400000, 10000)
	in.Tables = program.FeeTables{}
	in.FinanceUpfront = true
	result := program.ApplyFees(in)

	assertDecimal(t, 6825, result.UpfrontFee, "default 1.75% UFMIP")
	assertDecimal(t, 181.88, result.MonthlyMI, "default 0.55% annual")

	conv := feeInput(program.Conventional, 500000, 50000)
	conv.Tables = program.FeeTables{}
	assertDecimal(t, 150, program.ApplyFees(conv).MonthlyMI, "default band factor")
}

func TestBucketForScore(t *testing.T) {
	assert.Equal(t, program.Fico760Plus, program.BucketForScore(0))
	assert.Equal(t, program.Fico760Plus, program.BucketForScore(801))
	assert.Equal(t, program.Fico760Plus, program.BucketForScore(760))
	assert.Equal(t, program.Fico720To759, program.BucketForScore(735))
	assert.Equal(t, program.FicoBelow720, program.BucketForScore(719))
}
