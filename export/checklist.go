/*
Package export guards the boundary between the engine and the compliance
export collaborator.

PURPOSE:
  Rendering (PDF/CSV) lives outside the engine. What lives here is the
  one hard failure in the whole core - refusing to finalize while a
  blocking finding is unresolved and no override reason is supplied -
  plus the required-document checklist derived from the income sources
  on file.

KEY CONCEPTS IN THIS FILE (checklist.go):
  - ChecklistItem: a required-document label with a checked state the
    caller owns (the engine never decides what has been collected)
  - BuildChecklist: source kinds -> de-duplicated document labels,
    first-seen order preserved

SEE ALSO:
  - gate.go: Finalize and ErrOverrideRequired
*/
package export

import (
	"strings"

	"github.com/warp/prequal-engine/income"
)

// ChecklistItem is one required document and whether the caller has
// marked it collected.
type ChecklistItem struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// docsByKind maps an income source to the documents it requires.
var docsByKind = map[income.SourceKind][]string{
	income.SourceWage:      {"Last two pay stubs", "W-2s"},
	income.SourceScheduleC: {"1040s", "Business bank statements"},
	income.SourceK1:        {"1040s", "K-1s"},
	income.SourceCCorp:     {"1040s", "Business bank statements"},
	income.SourceRental:    {"1040s", "Leases"},
}

// BuildChecklist derives the required-document list from the income
// records on file. Labels are de-duplicated preserving first-seen order;
// all items start unchecked.
func BuildChecklist(records []income.Record) []ChecklistItem {
	var items []ChecklistItem
	seen := map[string]bool{}
	appendDoc := func(label string) {
		if !seen[label] {
			seen[label] = true
			items = append(items, ChecklistItem{Label: label})
		}
	}

	for _, rec := range records {
		if other, ok := rec.(income.OtherRecord); ok {
			appendDoc(docForOther(other))
			continue
		}
		for _, label := range docsByKind[rec.Kind()] {
			appendDoc(label)
		}
	}
	return items
}

// docForOther picks the document label for a miscellaneous source.
func docForOther(rec income.OtherRecord) string {
	if strings.Contains(strings.ToLower(rec.Type), "child") {
		return "Child support court orders"
	}
	return "Proof of other income"
}

// ApplyChecks marks items the caller has collected. Unknown labels in
// the map are ignored.
func ApplyChecks(items []ChecklistItem, checked map[string]bool) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	for i, item := range items {
		item.Checked = checked[item.Label]
		out[i] = item
	}
	return out
}
