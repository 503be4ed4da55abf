// Package layout renders a ReframeResult as the fixed six-section text
// layout and parses that layout back. Render and Parse are inverses on the
// rendered fields.
package layout

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

const (
	headerPairs    = "REFRAME PAIRS"
	prefixBefore   = "Before: "
	prefixAfter    = "After: "
	prefixTheme    = "THEME: "
	prefixChemical = "CHEMICAL ANGLE: "
	prefixAction   = "ACTION STEP: "
	prefixAffirm   = "AFFIRMATION: "
	prefixCloser   = "CLOSER: "
	afterIndent    = "   "
	mechanismSep   = ": "
)

// Render writes the six sections in order. The chemical line is omitted when
// the result has no chemical angle.
func Render(r *domain.ReframeResult) string {
	var b strings.Builder

	b.WriteString(headerPairs + "\n")
	for i, p := range r.Pairs {
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, prefixBefore, p.Before)
		fmt.Fprintf(&b, "%s%s%s\n", afterIndent, prefixAfter, p.After)
	}
	b.WriteString("\n")

	b.WriteString(prefixTheme + r.Theme.Label() + "\n")
	if r.Chemical != nil {
		b.WriteString(prefixChemical + r.Chemical.Mechanism.Label() + mechanismSep + r.Chemical.Rationale + "\n")
	}
	b.WriteString(prefixAction + r.Action + "\n")
	b.WriteString(prefixAffirm + r.Affirmation + "\n")
	b.WriteString(prefixCloser + r.Closer + "\n")

	return b.String()
}
