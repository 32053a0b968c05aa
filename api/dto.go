/*
dto.go - Data transfer objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The income record
  variants marshal under their Go field names on purpose: those names
  mirror the worksheet columns loan officers already know (BorrowerID,
  AnnualSalary, OwnershipPct, ...), so the presentation layer can map
  grid cells straight onto records.

NAMING CONVENTION:
  - LoanFile:   the full request bundle the presentation layer owns
  - *DTO:       response types returned to clients
  - *Request:   request body types from clients

VALIDATION:
  The engine is spreadsheet-tolerant: malformed numerics coerce to zero
  inside the normalizers, so handlers only validate structure, not
  values.

SEE ALSO:
  - handlers.go: uses these types
  - scenarios.go: canned LoanFile fixtures
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/export"
	"github.com/warp/prequal-engine/income"
	"github.com/warp/prequal-engine/program"
	"github.com/warp/prequal-engine/rules"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Debt is one monthly liability outside the proposed housing payment.
type Debt struct {
	Name           string  `json:"name"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// Attestations are the UI-confirmed checkboxes the rule engine reads.
type Attestations struct {
	K1DistributionsVerified bool `json:"k1_distributions_verified"`
	K1LiquidityAnalyzed     bool `json:"k1_liquidity_analyzed"`
	SupportContinuanceOK    bool `json:"support_continuance_ok"`
}

// LoanFile is the complete caller-owned input bundle: income tables,
// housing scenario, liabilities, and attestations. The engine reads it
// and derives everything else fresh on each evaluation.
type LoanFile struct {
	NumBorrowers int `json:"num_borrowers"`

	Wage      []income.WageRecord      `json:"w2,omitempty"`
	ScheduleC []income.ScheduleCRecord `json:"schedule_c,omitempty"`
	K1        []income.K1Record        `json:"k1,omitempty"`
	CCorp     []income.CCorpRecord     `json:"c1120,omitempty"`
	Rental    []income.RentalRecord    `json:"rental,omitempty"`
	Other     []income.OtherRecord     `json:"other,omitempty"`

	RecentSelfEmployedOnly bool                `json:"recent_selfemp_only,omitempty"`
	RentalPolicy           income.RentalPolicy `json:"rental_policy,omitempty"`
	RentalMethodConflict   bool                `json:"rental_method_conflict,omitempty"`
	SubjectMarketRent      float64             `json:"subject_market_rent,omitempty"`
	SubjectPITIA           float64             `json:"subject_pitia,omitempty"`

	Scenario program.HousingScenario `json:"scenario"`
	Debts    []Debt                  `json:"debts,omitempty"`

	Attestations Attestations `json:"attestations"`

	// Export inputs; both sourced from outside the engine.
	ChecklistChecked map[string]bool `json:"checklist_checked,omitempty"`
	OverrideReason   string          `json:"override_reason,omitempty"`
}

// records flattens the file's income tables into the tagged-variant view
// the checklist builder consumes.
func (f LoanFile) records() []income.Record {
	var out []income.Record
	for _, r := range f.Wage {
		out = append(out, r)
	}
	for _, r := range f.ScheduleC {
		out = append(out, r)
	}
	for _, r := range f.K1 {
		out = append(out, r)
	}
	for _, r := range f.CCorp {
		out = append(out, r)
	}
	for _, r := range f.Rental {
		out = append(out, r)
	}
	for _, r := range f.Other {
		out = append(out, r)
	}
	return out
}

// combineInput maps the file onto the income combiner's input.
func (f LoanFile) combineInput() income.CombineInput {
	return income.CombineInput{
		NumBorrowers:           f.NumBorrowers,
		Wage:                   f.Wage,
		ScheduleC:              f.ScheduleC,
		K1:                     f.K1,
		CCorp:                  f.CCorp,
		Rental:                 f.Rental,
		Other:                  f.Other,
		RecentSelfEmployedOnly: f.RecentSelfEmployedOnly,
		RentalPolicy:           f.RentalPolicy,
		SubjectMarketRent:      f.SubjectMarketRent,
		SubjectPITIA:           f.SubjectPITIA,
	}
}

// otherLiabilities sums the debt rows.
func (f LoanFile) otherLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, d := range f.Debts {
		if d.MonthlyPayment > 0 {
			total = total.Add(decimal.NewFromFloat(d.MonthlyPayment))
		}
	}
	return total
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// DTIDTO carries the two ratios as fractions (0.31 = 31%).
type DTIDTO struct {
	FrontEnd decimal.Decimal `json:"front_end"`
	BackEnd  decimal.Decimal `json:"back_end"`
}

// EvaluationDTO is the full evaluation response: the income table, the
// proposed payment, the ratios, and the ordered findings.
type EvaluationDTO struct {
	Incomes     []income.BorrowerIncome `json:"incomes"`
	Summary     income.FileSummary      `json:"summary"`
	PITI        program.PITIBreakdown   `json:"piti"`
	DTI         DTIDTO                  `json:"dti"`
	Findings    []rules.Finding         `json:"findings"`
	HasBlocking bool                    `json:"has_blocking"`
	Checklist   []export.ChecklistItem  `json:"checklist"`
}

// QualifyDTO is the affordability solver's response.
type QualifyDTO struct {
	MaxPI         decimal.Decimal `json:"max_pi"`
	BaseLoan      decimal.Decimal `json:"base_loan"`
	AdjustedLoan  decimal.Decimal `json:"adjusted_loan"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// ScenarioDTO describes one canned demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AuditRequest records one field change from the presentation layer.
type AuditRequest struct {
	User     string `json:"user"`
	Field    string `json:"field"`
	OldValue string `json:"old"`
	NewValue string `json:"new"`
}

// errorDTO is the uniform error envelope.
type errorDTO struct {
	Error string `json:"error"`
}
