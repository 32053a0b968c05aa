/*
combine.go - Income combiner

PURPOSE:
  Merges every normalizer's per-borrower output into one income table.
  Starts from the full borrower roster (IDs 1..N) and left-joins each
  source, filling missing borrowers with zero amounts and false flags, so
  any subset of sources may be absent.

OUTPUT:
  One BorrowerIncome row per roster member with per-source monthlies, a
  TotalMonthly sum over the six source columns, and AnyDeclining as the
  OR of all decline flags. Aggregate() folds the table into the
  FileSummary shape the rule-engine fact bundle reads.
*/
package income

import "github.com/shopspring/decimal"

// CombineInput carries the raw tables plus the toggles that alter
// normalization. The engine only reads it.
type CombineInput struct {
	NumBorrowers int

	Wage      []WageRecord
	ScheduleC []ScheduleCRecord
	K1        []K1Record
	CCorp     []CCorpRecord
	Rental    []RentalRecord
	Other     []OtherRecord

	// Use the most recent tax year instead of the multi-year average for
	// the self-employed sources (Schedule C, K-1, C-corp).
	RecentSelfEmployedOnly bool

	RentalPolicy      RentalPolicy
	SubjectMarketRent float64
	SubjectPITIA      float64
}

// Combine runs every normalizer and left-joins the results over the
// roster. Borrower IDs run 1..NumBorrowers; a non-positive roster size
// yields an empty table.
func Combine(in CombineInput) []BorrowerIncome {
	wage := indexWage(WageTotals(in.Wage))
	schc := indexSource(ScheduleCTotals(in.ScheduleC, in.RecentSelfEmployedOnly))
	k1 := indexSource(K1Totals(in.K1, in.RecentSelfEmployedOnly))
	ccorp := indexSource(CCorpTotals(in.CCorp, in.RecentSelfEmployedOnly))
	rental := indexSource(RentalTotals(in.Rental, in.RentalPolicy, in.SubjectMarketRent, in.SubjectPITIA))
	other := indexOther(OtherTotals(in.Other))

	rows := make([]BorrowerIncome, 0, max(in.NumBorrowers, 0))
	for id := 1; id <= in.NumBorrowers; id++ {
		row := BorrowerIncome{BorrowerID: id}

		if w, ok := wage[id]; ok {
			row.WageMonthly = w.QualifyingMonthly
			row.WageDecliningVariable = w.DecliningVariable
			row.WageDecliningBase = w.DecliningBase
			row.WageInsufficientVariable = w.InsufficientVariableHistory
			row.WageVariableIncludedShort = w.VariableIncludedShortHistory
		}
		if s, ok := schc[id]; ok {
			row.ScheduleCMonthly = s.Monthly
			row.ScheduleCDeclining = s.Declining
		}
		if s, ok := k1[id]; ok {
			row.K1Monthly = s.Monthly
			row.K1Declining = s.Declining
		}
		if s, ok := ccorp[id]; ok {
			row.CCorpMonthly = s.Monthly
			row.CCorpDeclining = s.Declining
		}
		if s, ok := rental[id]; ok {
			row.RentalMonthly = s.Monthly
			row.RentalDeclining = s.Declining
		}
		if o, ok := other[id]; ok {
			row.OtherMonthly = o.Monthly
		}

		row.TotalMonthly = row.WageMonthly.
			Add(row.ScheduleCMonthly).
			Add(row.K1Monthly).
			Add(row.CCorpMonthly).
			Add(row.RentalMonthly).
			Add(row.OtherMonthly)
		row.AnyDeclining = row.WageDecliningVariable ||
			row.WageDecliningBase ||
			row.ScheduleCDeclining ||
			row.K1Declining ||
			row.CCorpDeclining ||
			row.RentalDeclining

		rows = append(rows, row)
	}
	return rows
}

// Aggregate folds the combined table across borrowers into the flat
// summary the fact bundle consumes.
func Aggregate(rows []BorrowerIncome) FileSummary {
	sum := FileSummary{TotalMonthlyIncome: decimal.Zero}
	for _, row := range rows {
		sum.TotalMonthlyIncome = sum.TotalMonthlyIncome.Add(row.TotalMonthly)
		sum.AnyWageDecliningVariable = sum.AnyWageDecliningVariable || row.WageDecliningVariable
		sum.AnyWageDecliningBase = sum.AnyWageDecliningBase || row.WageDecliningBase
		sum.AnyWageInsufficientVariable = sum.AnyWageInsufficientVariable || row.WageInsufficientVariable
		sum.AnyWageVariableIncludedShort = sum.AnyWageVariableIncludedShort || row.WageVariableIncludedShort
		sum.AnyScheduleCDeclining = sum.AnyScheduleCDeclining || row.ScheduleCDeclining
		sum.AnyK1Declining = sum.AnyK1Declining || row.K1Declining
		sum.AnyCCorpDeclining = sum.AnyCCorpDeclining || row.CCorpDeclining
		sum.AnyRentalDeclining = sum.AnyRentalDeclining || row.RentalDeclining
		sum.AnyDeclining = sum.AnyDeclining || row.AnyDeclining
	}
	return sum
}

func indexWage(rows []WageSummary) map[int]WageSummary {
	out := make(map[int]WageSummary, len(rows))
	for _, r := range rows {
		out[r.BorrowerID] = r
	}
	return out
}

func indexSource(rows []SourceSummary) map[int]SourceSummary {
	out := make(map[int]SourceSummary, len(rows))
	for _, r := range rows {
		out[r.BorrowerID] = r
	}
	return out
}

func indexOther(rows []OtherSummary) map[int]OtherSummary {
	out := make(map[int]OtherSummary, len(rows))
	for _, r := range rows {
		out[r.BorrowerID] = r
	}
	return out
}
