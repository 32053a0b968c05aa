/*
gate.go - The export gate

Attempting to finalize output while a critical finding is unresolved and
no override reason is supplied fails with ErrOverrideRequired. This is
deliberately the only user-facing blocking error in the core: every
other inconsistency surfaces as a finding, because the domain wants
visible, auditable warnings rather than crashes.
*/
package export

import (
	"errors"

	"github.com/warp/prequal-engine/rules"
)

// ErrOverrideRequired is returned by Finalize when blocking findings are
// present and no override justification was supplied.
var ErrOverrideRequired = errors.New("override required: unresolved critical findings")

// Payload is what the export collaborator renders. The engine fills it;
// rendering (PDF/CSV) is the collaborator's concern.
type Payload struct {
	Findings       []rules.Finding `json:"findings"`
	OverrideReason string          `json:"override_reason,omitempty"`
	Checklist      []ChecklistItem `json:"checklist"`
}

// Finalize assembles the export payload. With blocking findings present
// the override reason is mandatory and is stored with the findings; with
// none it is carried through if supplied.
func Finalize(findings []rules.Finding, overrideReason string, checklist []ChecklistItem) (Payload, error) {
	if rules.HasBlocking(findings) && overrideReason == "" {
		return Payload{}, ErrOverrideRequired
	}
	return Payload{
		Findings:       findings,
		OverrideReason: overrideReason,
		Checklist:      checklist,
	}, nil
}
