/*
Package factory provides JSON to Go fee-table conversion.

PURPOSE:
  Converts JSON fee-table and program-preset documents into the
  program.FeeTables and DTI-target values the engine consumes. This
  enables pricing configuration without code changes - an investor or
  branch can keep its MI/MIP/funding-fee numbers in JSON, and the
  factory builds the proper Go structs.

WHY JSON?
  - Non-developers can adjust fee tables
  - Easy integration with an admin UI
  - Version control for pricing documents
  - Database storage of named configurations

JSON SCHEMA:
  {
    "programs": {
      "FHA": {"fe_pct": 31, "be_pct": 50}
    },
    "conv_mi_bands": {
      "760+": {">=97": 0.90, "95-97": 0.62, "90-95": 0.40, "85-90": 0.25, "<85": 0}
    },
    "fha": {
      "ufmip_pct": 1.75,
      "annual": {"<=95_<=15": 0.15, "<=95_>15": 0.50, ">95_<=15": 0.40, ">95_>15": 0.55}
    },
    "va": {"first_0_5": 2.15, "first_5_10": 1.5, "first_10+": 1.25,
           "subseq_0_5": 3.3, "subseq_5_10": 1.5, "subseq_10+": 1.25},
    "usda": {"guarantee_pct": 1.0, "annual_pct": 0.35}
  }

Every section is optional; anything omitted keeps the stock defaults, so
a document can override a single band without restating the rest.
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/prequal-engine/program"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ConfigJSON is the JSON representation of a pricing configuration.
type ConfigJSON struct {
	Programs map[string]TargetsJSON        `json:"programs,omitempty"`
	ConvMI   map[string]map[string]float64 `json:"conv_mi_bands,omitempty"`
	FHA      *FHAJSON                      `json:"fha,omitempty"`
	VA       map[string]float64            `json:"va,omitempty"`
	USDA     *USDAJSON                     `json:"usda,omitempty"`
}

// TargetsJSON holds one program's DTI targets in percent.
type TargetsJSON struct {
	FrontEndPct float64 `json:"fe_pct"`
	BackEndPct  float64 `json:"be_pct"`
}

// FHAJSON holds the FHA upfront and annual MIP configuration.
type FHAJSON struct {
	UFMIPPct float64            `json:"ufmip_pct"`
	Annual   map[string]float64 `json:"annual"`
}

// USDAJSON holds the USDA guarantee and annual fee percentages.
type USDAJSON struct {
	GuaranteePct float64 `json:"guarantee_pct"`
	AnnualPct    float64 `json:"annual_pct"`
}

// =============================================================================
// CONFIG - parsed result
// =============================================================================

// Config is a complete pricing configuration: fee tables plus per-program
// DTI targets. Caller-owned; the engine only reads it.
type Config struct {
	Tables  program.FeeTables
	Targets map[program.Program]program.DTITargets
}

// Default returns the stock configuration (agency-style defaults).
func Default() Config {
	return Config{
		Tables:  program.DefaultFeeTables(),
		Targets: program.DefaultTargets(),
	}
}

// TargetsFor resolves a program's DTI targets, falling back to the stock
// preset for programs the document did not name.
func (c Config) TargetsFor(p program.Program) program.DTITargets {
	if t, ok := c.Targets[p]; ok {
		return t
	}
	return program.DefaultTargets()[p]
}

// =============================================================================
// PARSING
// =============================================================================

// Parse builds a Config from a JSON document, overlaying the document's
// sections onto the stock defaults.
func Parse(doc []byte) (Config, error) {
	var raw ConfigJSON
	if err := json.Unmarshal(doc, &raw); err != nil {
		return Config{}, fmt.Errorf("parse pricing config: %w", err)
	}
	return fromJSON(raw), nil
}

func fromJSON(raw ConfigJSON) Config {
	cfg := Default()

	for name, t := range raw.Programs {
		cfg.Targets[program.Program(name)] = program.DTITargets{
			FrontEndPct: decimal.NewFromFloat(t.FrontEndPct),
			BackEndPct:  decimal.NewFromFloat(t.BackEndPct),
		}
	}

	for bucket, bands := range raw.ConvMI {
		dest := cfg.Tables.ConvMI[program.FICOBucket(bucket)]
		if dest == nil {
			dest = map[program.LTVBand]decimal.Decimal{}
			cfg.Tables.ConvMI[program.FICOBucket(bucket)] = dest
		}
		for band, factor := range bands {
			dest[program.LTVBand(band)] = decimal.NewFromFloat(factor)
		}
	}

	if raw.FHA != nil {
		if raw.FHA.UFMIPPct > 0 {
			cfg.Tables.FHA.UFMIPPct = decimal.NewFromFloat(raw.FHA.UFMIPPct)
		}
		for key, factor := range raw.FHA.Annual {
			cfg.Tables.FHA.Annual[key] = decimal.NewFromFloat(factor)
		}
	}

	for key, feePct := range raw.VA {
		cfg.Tables.VA[key] = decimal.NewFromFloat(feePct)
	}

	if raw.USDA != nil {
		if raw.USDA.GuaranteePct > 0 {
			cfg.Tables.USDA.GuaranteePct = decimal.NewFromFloat(raw.USDA.GuaranteePct)
		}
		if raw.USDA.AnnualPct > 0 {
			cfg.Tables.USDA.AnnualPct = decimal.NewFromFloat(raw.USDA.AnnualPct)
		}
	}

	return cfg
}
