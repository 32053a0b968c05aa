/*
Package income normalizes raw per-source income records into monthly
qualifying figures per borrower and merges them into one income table.

PURPOSE:
  This package is the first half of the qualification pipeline: it takes
  the plain records the presentation layer collected (one table per income
  source) and produces a BorrowerIncome row per borrower with per-source
  monthly amounts, a grand total, and the year-over-year decline flags
  underwriting cares about.

KEY CONCEPTS IN THIS FILE (types.go):
  - SourceKind: tag identifying which income source a record belongs to
  - Record: the shared interface every source variant implements
  - WageRecord/ScheduleCRecord/K1Record/CCorpRecord/RentalRecord/OtherRecord:
    immutable input variants, created from user entry and never mutated
  - BorrowerIncome: one derived row per borrower, recomputed every pass

DESIGN PRINCIPLES:
  1. Immutability: records are inputs; normalizers only read them.
  2. Tolerance: every numeric field passes through finance.ClipNZ at the
     boundary - blank, NaN, or negative raw entries contribute zero.
  3. Determinism: outputs are sorted by borrower ID so repeated
     evaluations produce identical tables.

SEE ALSO:
  - wage.go, selfemployed.go, rental.go, other.go: per-source normalizers
  - combine.go: the left-join combiner over the borrower roster
*/
package income

import "github.com/shopspring/decimal"

// =============================================================================
// SOURCE KINDS
// =============================================================================

// SourceKind tags an income record with the source it came from.
type SourceKind string

const (
	SourceWage      SourceKind = "w2"
	SourceScheduleC SourceKind = "schc"
	SourceK1        SourceKind = "k1"
	SourceCCorp     SourceKind = "c1120"
	SourceRental    SourceKind = "rental"
	SourceOther     SourceKind = "other"
)

// Record is the shared surface of every income-source variant. The
// normalizer layer dispatches on Kind rather than loosely-typed field
// lookups; the export checklist builder only needs Kind.
type Record interface {
	Kind() SourceKind
	Borrower() int
}

// =============================================================================
// INPUT VARIANTS - one per source kind
// =============================================================================

// PayType distinguishes salaried from hourly base pay on a wage record.
type PayType string

const (
	PaySalary PayType = "salary"
	PayHourly PayType = "hourly"
)

// WageRecord is one W-2 employment entry: stable base pay plus variable
// earnings (overtime, bonus, commission) for the current and prior year.
type WageRecord struct {
	BorrowerID int
	Employer   string
	PayType    PayType

	AnnualSalary float64
	HourlyRate   float64
	HoursPerWeek float64

	OvertimeYTD   float64
	BonusYTD      float64
	CommissionYTD float64
	MonthsYTD     float64

	OvertimeLY   float64
	BonusLY      float64
	CommissionLY float64
	MonthsLY     float64

	// Prior-year base pay, used for the base-pay decline test.
	BaseLY float64

	// Averaging window for variable pay. 24 always divides by 24; any
	// other value divides by the literal reported months.
	VariableAvgMonths int

	// Caller attestation that variable pay may count toward qualifying
	// income. Without it the variable figure is computed but excluded.
	IncludeVariable bool
}

func (r WageRecord) Kind() SourceKind { return SourceWage }
func (r WageRecord) Borrower() int    { return r.BorrowerID }

// ScheduleCRecord is one sole-proprietorship tax year (Schedule C).
type ScheduleCRecord struct {
	BorrowerID   int
	BusinessName string
	Year         int

	NetProfit          float64
	Nonrecurring       float64
	Depletion          float64
	Depreciation       float64
	NonDeductibleMeals float64
	UseOfHome          float64
	AmortCasualty      float64
	BusinessMiles      float64
	MileageDepRate     float64
}

func (r ScheduleCRecord) Kind() SourceKind { return SourceScheduleC }
func (r ScheduleCRecord) Borrower() int    { return r.BorrowerID }

// K1Record is one partnership or S-corp tax year (Schedule K-1).
type K1Record struct {
	BorrowerID int
	EntityName string
	Year       int
	EntityType string // "1065" or "1120S"

	OwnershipPct       float64
	Ordinary           float64
	NetRentalOther     float64
	GuaranteedPayments float64
	Nonrecurring       float64
	Depreciation       float64
	Depletion          float64
	AmortCasualty      float64
	NotesUnder1Yr      float64
	NonDeductibleTE    float64
}

func (r K1Record) Kind() SourceKind { return SourceK1 }
func (r K1Record) Borrower() int    { return r.BorrowerID }

// CCorpRecord is one C-corporation tax year (Form 1120). Entities below
// 100% borrower ownership are excluded from the computation entirely.
type CCorpRecord struct {
	BorrowerID int
	CorpName   string
	Year       int

	OwnershipPct    float64
	TaxableIncome   float64
	TotalTax        float64
	Nonrecurring    float64
	OtherIncomeLoss float64
	Depreciation    float64
	Depletion       float64
	AmortCasualty   float64
	NotesUnder1Yr   float64
	NonDeductibleTE float64
	DividendsPaid   float64
}

func (r CCorpRecord) Kind() SourceKind { return SourceCCorp }
func (r CCorpRecord) Borrower() int    { return r.BorrowerID }

// RentalRecord is one rental property tax year (Schedule E figures).
type RentalRecord struct {
	BorrowerID int
	Property   string
	Year       int

	Rents        float64
	Expenses     float64
	Depreciation float64
}

func (r RentalRecord) Kind() SourceKind { return SourceRental }
func (r RentalRecord) Borrower() int    { return r.BorrowerID }

// OtherRecord is a miscellaneous monthly income source such as alimony,
// child support, or SSA. Non-taxable sources may be grossed up.
type OtherRecord struct {
	BorrowerID   int
	Type         string
	GrossMonthly float64
	GrossUpPct   float64
}

func (r OtherRecord) Kind() SourceKind { return SourceOther }
func (r OtherRecord) Borrower() int    { return r.BorrowerID }

// =============================================================================
// NORMALIZER OUTPUTS
// =============================================================================

// WageSummary is the wage normalizer's row for one borrower.
type WageSummary struct {
	BorrowerID        int
	BaseMonthly       decimal.Decimal
	VariableMonthly   decimal.Decimal
	QualifyingMonthly decimal.Decimal

	DecliningVariable           bool
	DecliningBase               bool
	InsufficientVariableHistory bool

	// Variable pay was actually included on a record with <12 months of
	// combined history; this is what the W2_VAR_LT_12 rule fires on.
	VariableIncludedShortHistory bool
}

// SourceSummary is the common output row for the yearly-averaged sources
// (Schedule C, K-1, C-corp, rental).
type SourceSummary struct {
	BorrowerID int
	Monthly    decimal.Decimal
	Declining  bool
}

// OtherSummary is the other-income normalizer's row for one borrower.
// Other income carries no decline tracking.
type OtherSummary struct {
	BorrowerID int
	Monthly    decimal.Decimal
}

// =============================================================================
// COMBINED TABLE
// =============================================================================

// BorrowerIncome is one row of the combined income table: a monthly
// figure per source, the total, and every flag the rule engine consumes.
// Derived, recomputed on every evaluation, never persisted by the engine.
type BorrowerIncome struct {
	BorrowerID int

	WageMonthly      decimal.Decimal
	ScheduleCMonthly decimal.Decimal
	K1Monthly        decimal.Decimal
	CCorpMonthly     decimal.Decimal
	RentalMonthly    decimal.Decimal
	OtherMonthly     decimal.Decimal

	TotalMonthly decimal.Decimal

	WageDecliningVariable        bool
	WageDecliningBase            bool
	WageInsufficientVariable     bool
	WageVariableIncludedShort    bool
	ScheduleCDeclining           bool
	K1Declining                  bool
	CCorpDeclining               bool
	RentalDeclining              bool

	// OR of the six decline flags above (insufficient history is a
	// documentation flag, not a decline).
	AnyDeclining bool
}

// FileSummary aggregates the combined table across borrowers; this is the
// shape the fact-bundle assembly reads.
type FileSummary struct {
	TotalMonthlyIncome decimal.Decimal

	AnyWageDecliningVariable     bool
	AnyWageDecliningBase         bool
	AnyWageInsufficientVariable  bool
	AnyWageVariableIncludedShort bool
	AnyScheduleCDeclining        bool
	AnyK1Declining               bool
	AnyCCorpDeclining            bool
	AnyRentalDeclining           bool
	AnyDeclining                 bool
}
