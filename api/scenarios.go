/*
scenarios.go - Demo loan files for testing and demonstrations

PURPOSE:

	Provides pre-built loan files that exercise specific engine features
	end to end. Each scenario is a complete LoanFile: income tables,
	housing scenario, debts, and attestations. Loading one returns the
	file together with its evaluation, so a demo client can render the
	whole screen from a single call.

AVAILABLE SCENARIOS:

	salaried-fha:        Two salaried borrowers, FHA with financed UFMIP
	self-employed-conv:  Schedule C + K-1, missing K-1 attestations (blocking)
	investor-va:         W-2 plus rental portfolio on a VA purchase
	support-usda:        Wage plus grossed-up child support on USDA

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "salaried-fha"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Add the LoanFile constructor to scenarioFiles

SEE ALSO:
  - handlers.go: evaluation pipeline
  - dto.go: LoanFile shape
*/
package api

import (
	"net/http"

	"github.com/warp/prequal-engine/income"
	"github.com/warp/prequal-engine/program"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "salaried-fha",
		Name:        "Salaried Couple, FHA",
		Description: "Two W-2 borrowers, FHA purchase with financed upfront premium",
	},
	{
		ID:          "self-employed-conv",
		Name:        "Self-Employed, Conventional",
		Description: "Schedule C + K-1 income with unverified distributions (blocking findings)",
	},
	{
		ID:          "investor-va",
		Name:        "Investor, VA",
		Description: "W-2 base plus rental portfolio on a first-use VA purchase",
	},
	{
		ID:          "support-usda",
		Name:        "Support Income, USDA",
		Description: "Hourly wages plus grossed-up child support on a USDA purchase",
	},
}

var scenarioFiles = map[string]func() LoanFile{
	"salaried-fha":       salariedFHAFile,
	"self-employed-conv": selfEmployedConvFile,
	"investor-va":        investorVAFile,
	"support-usda":       supportUSDAFile,
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario returns a canned loan file and its evaluation.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	build, ok := scenarioFiles[req.ScenarioID]
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown scenario: "+req.ScenarioID)
		return
	}

	file := build()
	h.log.WithField("scenario", req.ScenarioID).Info("loaded demo scenario")
	h.writeJSON(w, http.StatusOK, map[string]any{
		"file":       file,
		"evaluation": h.evaluateFile(file),
	})
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

func salariedFHAFile() LoanFile {
	return LoanFile{
		NumBorrowers: 2,
		Wage: []income.WageRecord{
			{
				BorrowerID:        1,
				Employer:          "Harbor Logistics",
				PayType:           income.PaySalary,
				AnnualSalary:      96000,
				BonusYTD:          4000,
				BonusLY:           3500,
				MonthsYTD:         8,
				MonthsLY:          12,
				VariableAvgMonths: 24,
				IncludeVariable:   true,
			},
			{
				BorrowerID:   2,
				Employer:     "Lakeside Dental",
				PayType:      income.PaySalary,
				AnnualSalary: 72000,
			},
		},
		Scenario: program.HousingScenario{
			Program:         program.FHA,
			PurchasePrice:   420000,
			DownPayment:     15000,
			RatePct:         6.5,
			TermYears:       30,
			TaxRatePct:      1.1,
			InsuranceAnnual: 1800,
			HOAMonthly:      50,
			FinanceUpfront:  true,
			FICOScore:       735,
		},
		Debts: []Debt{
			{Name: "Auto loan", MonthlyPayment: 450},
			{Name: "Student loans", MonthlyPayment: 220},
		},
		Attestations: Attestations{},
	}
}

func selfEmployedConvFile() LoanFile {
	return LoanFile{
		NumBorrowers: 1,
		ScheduleC: []income.ScheduleCRecord{
			{
				BorrowerID: 1, BusinessName: "Meridian Consulting", Year: 2024,
				NetProfit: 118000, Depreciation: 9000, BusinessMiles: 4200, MileageDepRate: 0.30,
			},
			{
				BorrowerID: 1, BusinessName: "Meridian Consulting", Year: 2023,
				NetProfit: 104000, Depreciation: 8500, BusinessMiles: 3900, MileageDepRate: 0.2925,
			},
		},
		K1: []income.K1Record{
			{
				BorrowerID: 1, EntityName: "Meridian Partners LLC", Year: 2024, EntityType: "1065",
				OwnershipPct: 50, Ordinary: 40000, GuaranteedPayments: 18000,
			},
			{
				BorrowerID: 1, EntityName: "Meridian Partners LLC", Year: 2023, EntityType: "1065",
				OwnershipPct: 50, Ordinary: 36000, GuaranteedPayments: 15000,
			},
		},
		Scenario: program.HousingScenario{
			Program:         program.Conventional,
			PurchasePrice:   650000,
			DownPayment:     130000,
			RatePct:         6.875,
			TermYears:       30,
			TaxRatePct:      1.25,
			InsuranceAnnual: 2400,
			FICOScore:       765,
		},
		Debts: []Debt{
			{Name: "Auto lease", MonthlyPayment: 600},
		},
		// Distributions and liquidity left unverified on purpose; the
		// evaluation surfaces blocking findings and the export refuses
		// without an override reason.
		Attestations: Attestations{},
	}
}

func investorVAFile() LoanFile {
	return LoanFile{
		NumBorrowers: 1,
		Wage: []income.WageRecord{
			{BorrowerID: 1, PayType: income.PaySalary, AnnualSalary: 110000},
		},
		Rental: []income.RentalRecord{
			{BorrowerID: 1, Property: "412 Birch St", Year: 2024, Rents: 30000, Expenses: 12500, Depreciation: 3500},
			{BorrowerID: 1, Property: "412 Birch St", Year: 2023, Rents: 28800, Expenses: 12200, Depreciation: 2900},
		},
		RentalPolicy: income.RentalScheduleE,
		Scenario: program.HousingScenario{
			Program:            program.VA,
			PurchasePrice:      500000,
			DownPayment:        0,
			RatePct:            6.25,
			TermYears:          30,
			TaxRatePct:         1.0,
			InsuranceAnnual:    2000,
			FinanceUpfront:     true,
			FirstUseVA:         true,
			FICOScore:          742,
			InvestmentProperty: true,
		},
		Debts: []Debt{
			{Name: "Rental property mortgage", MonthlyPayment: 1350},
		},
	}
}

func supportUSDAFile() LoanFile {
	return LoanFile{
		NumBorrowers: 1,
		Wage: []income.WageRecord{
			{
				BorrowerID:   1,
				PayType:      income.PayHourly,
				HourlyRate:   29.50,
				HoursPerWeek: 40,
				OvertimeYTD:  3600,
				OvertimeLY:   5200,
				MonthsYTD:    9,
				MonthsLY:     12,

				VariableAvgMonths: 21,
				IncludeVariable:   true,
			},
		},
		Other: []income.OtherRecord{
			{BorrowerID: 1, Type: "child support", GrossMonthly: 800, GrossUpPct: 25},
		},
		Scenario: program.HousingScenario{
			Program:         program.USDA,
			PurchasePrice:   280000,
			DownPayment:     0,
			RatePct:         6.0,
			TermYears:       30,
			TaxRatePct:      0.9,
			InsuranceAnnual: 1400,
			FinanceUpfront:  true,
			FICOScore:       705,
		},
		Attestations: Attestations{SupportContinuanceOK: true},
	}
}
