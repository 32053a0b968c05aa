/*
facts.go - The fact bundle the rule engine evaluates

Facts are plain values assembled by the caller from the income combiner,
the PITI breakdown, the DTI calculator, and UI-confirmed attestation
checkboxes. The rule engine holds no live references to those components.
*/
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/program"
)

// Facts is the flat input bundle for one evaluation.
type Facts struct {
	// From the income combiner.
	TotalIncome decimal.Decimal

	WageVariableIncludedShortHistory bool
	WageDecliningVariable            bool
	WageDecliningBase                bool
	ScheduleCDeclining               bool
	K1Declining                      bool
	CCorpDeclining                   bool
	RentalDeclining                  bool

	// Source presence and UI attestations.
	UsesK1                  bool
	K1DistributionsVerified bool
	K1LiquidityAnalyzed     bool

	UsesCCorp                  bool
	CCorpAnyBelowFullOwnership bool

	UsesSupportIncome    bool
	SupportContinuanceOK bool

	RentalMethodConflict bool
	InvestmentProperty   bool

	// From the DTI calculator (fractions, 0.31 = 31%) and the program
	// presets (percent).
	FrontEndRatio decimal.Decimal
	BackEndRatio  decimal.Decimal
	Targets       program.DTITargets

	// From the housing scenario, for the data-entry sanity check.
	PurchasePrice     decimal.Decimal
	NonPIMonthlyCosts decimal.Decimal
}
