/*
Package program implements program-specific fee mathematics: mortgage
insurance, upfront fee computation, the adjusted-loan logic when upfront
fees are financed, and the PITI composition on top of them.

PURPOSE:
  Each loan program (Conventional, FHA, VA, USDA) prices differently:
  Conventional carries LTV-banded private MI, FHA an upfront premium plus
  an annual factor keyed on LTV and term, VA a one-time funding fee, USDA
  a guarantee fee plus a recurring annual fee. Unknown programs (Jumbo)
  pass through untouched.

KEY CONCEPTS IN THIS FILE (tables.go):
  - FeeTables: caller-owned configuration mapping named bands/keys to
    percentages per program. The engine reads, never mutates.
  - DTITargets: per-program front/back-end ratio targets.
  - FICOBucket: credit-score buckets indexing the conventional MI bands.

DEFAULTS:
  Every lookup falls back to a documented default factor rather than
  failing the computation; a missing table is equivalent to the defaults
  below.

SEE ALSO:
  - fees.go: ApplyFees and the per-program lookups
  - piti.go: PITIComponents over the adjusted loan
  - factory: JSON documents for these tables
*/
package program

import "github.com/shopspring/decimal"

// =============================================================================
// PROGRAMS AND BUCKETS
// =============================================================================

// Program identifies a loan program.
type Program string

const (
	Conventional Program = "Conventional"
	FHA          Program = "FHA"
	VA           Program = "VA"
	USDA         Program = "USDA"
	Jumbo        Program = "Jumbo"
)

// FICOBucket is a credit-score band indexing conventional MI factors.
type FICOBucket string

const (
	Fico760Plus  FICOBucket = "760+"
	Fico720To759 FICOBucket = "720-759"
	FicoBelow720 FICOBucket = "<720"
)

// BucketForScore maps a numeric credit score to its bucket. Unparseable
// or absent scores (zero) default to the top bucket, matching the
// tool's optimistic-default convention for display math.
func BucketForScore(score float64) FICOBucket {
	switch {
	case score <= 0:
		return Fico760Plus
	case score >= 760:
		return Fico760Plus
	case score >= 720:
		return Fico720To759
	default:
		return FicoBelow720
	}
}

// LTVBand names a conventional MI band.
type LTVBand string

const (
	Band97Plus  LTVBand = ">=97"
	Band95To97  LTVBand = "95-97"
	Band90To95  LTVBand = "90-95"
	Band85To90  LTVBand = "85-90"
	BandBelow85 LTVBand = "<85"
)

// =============================================================================
// FEE TABLES - caller-owned configuration
// =============================================================================

// ConvMITable maps FICO bucket -> LTV band -> annual MI percentage.
type ConvMITable map[FICOBucket]map[LTVBand]decimal.Decimal

// FHATable holds the upfront MIP percentage and the annual factor table
// keyed by "<=95"/">95" LTV x "<=15"/">15" year term (e.g. ">95_>15").
type FHATable struct {
	UFMIPPct decimal.Decimal
	Annual   map[string]decimal.Decimal
}

// VATable maps funding-fee keys ("first_0_5", "subseq_10+", ...) to
// percentages.
type VATable map[string]decimal.Decimal

// USDATable holds the upfront guarantee and recurring annual percentages.
type USDATable struct {
	GuaranteePct decimal.Decimal
	AnnualPct    decimal.Decimal
}

// FeeTables bundles every program's configuration. Zero-valued tables are
// legal; lookups then resolve to the documented defaults.
type FeeTables struct {
	ConvMI ConvMITable
	FHA    FHATable
	VA     VATable
	USDA   USDATable
}

// DTITargets are a program's front-end / back-end ratio ceilings in
// percent (31 means 31%).
type DTITargets struct {
	FrontEndPct decimal.Decimal
	BackEndPct  decimal.Decimal
}

// =============================================================================
// DEFAULTS
// =============================================================================

func pct(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// defaultConvBands are the per-band fallback MI factors used when a band
// is missing from the configured table.
var defaultConvBands = map[LTVBand]decimal.Decimal{
	Band97Plus:  pct(0.90),
	Band95To97:  pct(0.62),
	Band90To95:  pct(0.40),
	Band85To90:  pct(0.25),
	BandBelow85: pct(0.00),
}

// defaultVA are the fallback funding-fee percentages per usage/down band.
var defaultVA = map[string]decimal.Decimal{
	"first_0_5":   pct(2.15),
	"first_5_10":  pct(1.50),
	"first_10+":   pct(1.25),
	"subseq_0_5":  pct(3.30),
	"subseq_5_10": pct(1.50),
	"subseq_10+":  pct(1.25),
}

const (
	defaultUFMIPPct     = 1.75
	defaultFHAAnnualPct = 0.55
	defaultUSDAGuarPct  = 1.00
	defaultUSDAAnnual   = 0.35
)

// DefaultFeeTables returns the stock fee configuration. Callers normally
// start here and overlay investor-specific numbers via the factory.
func DefaultFeeTables() FeeTables {
	sameBands := func() map[LTVBand]decimal.Decimal {
		out := make(map[LTVBand]decimal.Decimal, len(defaultConvBands))
		for band, factor := range defaultConvBands {
			out[band] = factor
		}
		return out
	}
	return FeeTables{
		ConvMI: ConvMITable{
			Fico760Plus:  sameBands(),
			Fico720To759: sameBands(),
			FicoBelow720: sameBands(),
		},
		FHA: FHATable{
			UFMIPPct: pct(defaultUFMIPPct),
			Annual: map[string]decimal.Decimal{
				"<=95_<=15": pct(0.15),
				"<=95_>15":  pct(0.50),
				">95_<=15":  pct(0.40),
				">95_>15":   pct(0.55),
			},
		},
		VA: func() VATable {
			out := make(VATable, len(defaultVA))
			for k, v := range defaultVA {
				out[k] = v
			}
			return out
		}(),
		USDA: USDATable{
			GuaranteePct: pct(defaultUSDAGuarPct),
			AnnualPct:    pct(defaultUSDAAnnual),
		},
	}
}

// DefaultTargets returns the stock per-program DTI targets.
func DefaultTargets() map[Program]DTITargets {
	return map[Program]DTITargets{
		Conventional: {FrontEndPct: pct(31), BackEndPct: pct(45)},
		FHA:          {FrontEndPct: pct(31), BackEndPct: pct(50)},
		VA:           {FrontEndPct: pct(35), BackEndPct: pct(50)},
		USDA:         {FrontEndPct: pct(29), BackEndPct: pct(41)},
		Jumbo:        {FrontEndPct: pct(35), BackEndPct: pct(43)},
	}
}
