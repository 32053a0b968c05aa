/*
Package rules turns the computed facts of a loan file into ordered,
severity-tagged findings.

PURPOSE:
  The rule engine is the declarative policy layer: it never computes
  income or payments itself, it only reads a flat fact bundle assembled
  by the caller and emits findings. One severity - critical - blocks the
  downstream export until resolved or overridden.

KEY CONCEPTS IN THIS FILE (findings.go):
  - Severity: info < warn < critical
  - Finding: stable code, severity, human message, optional numeric
    context (e.g. the actual ratio and the limit it breached)
  - HasBlocking: the predicate the export gate consumes

DESIGN PRINCIPLES:
  1. Findings are produced fresh each evaluation, never mutated.
  2. Rules are independent; no rule reads another's finding.
  3. Output order is fixed so test expectations are reproducible.

SEE ALSO:
  - facts.go: the fact bundle shape
  - evaluate.go: the rule definitions, in evaluation order
*/
package rules

import "github.com/shopspring/decimal"

// Severity grades a finding.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
)

// Finding is one rule result. Code is a stable identifier suitable for
// programmatic handling; Message is for display.
type Finding struct {
	Code     string                     `json:"code"`
	Severity Severity                   `json:"severity"`
	Message  string                     `json:"message"`
	Context  map[string]decimal.Decimal `json:"context,omitempty"`
}

// HasBlocking reports whether any finding is critical. The export
// collaborator must refuse a compliance export while this is true unless
// an override justification is supplied.
func HasBlocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
