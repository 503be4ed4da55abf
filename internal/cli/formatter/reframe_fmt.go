package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

// FormatReframe renders a result as a styled card. Section order matches the
// plain layout so the two read the same.
func FormatReframe(r *domain.ReframeResult) string {
	var b strings.Builder

	b.WriteString(Header("Reframe pairs"))
	b.WriteString("\n")
	for i, p := range r.Pairs {
		num := fmt.Sprintf("%d.", i+1)
		b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(num), StyleRed.Render("Before:"), Wrap(p.Before, BoxWidth-11, "           ")))
		b.WriteString(fmt.Sprintf("   %s  %s\n", StyleGreen.Render("After:"), Wrap(p.After, BoxWidth-11, "           ")))
		if i < len(r.Pairs)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("THEME         "), ThemeBadge(r.Theme)))
	if r.Chemical != nil {
		b.WriteString(fmt.Sprintf("%s  %s: %s\n",
			Dim("CHEMICAL ANGLE"),
			MechanismBadge(r.Chemical.Mechanism),
			Wrap(r.Chemical.Rationale, BoxWidth-28, strings.Repeat(" ", 16))))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ACTION STEP   "), Wrap(r.Action, BoxWidth-16, strings.Repeat(" ", 16))))
	b.WriteString("\n")
	b.WriteString(StyleItalic.Render(r.Affirmation))
	b.WriteString("\n\n")
	b.WriteString(StyleHeader.Render(r.Closer))

	title := "Reframe"
	if r.Fallback {
		title = "Reframe (general)"
	}
	return RenderBox(title, b.String())
}

// FormatMatches renders the scoring breakdown behind a result.
func FormatMatches(matches []domain.EntryMatch) string {
	var b strings.Builder
	for i, m := range matches {
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			m.EntryID,
			Dim("("+m.Category+")"),
			StyleYellow.Render(fmt.Sprintf("%.1f", m.Score))))
		for _, r := range m.Reasons {
			sign := "+"
			if r.WeightDelta < 0 {
				sign = ""
			}
			b.WriteString(fmt.Sprintf("   %s %s %s\n",
				StyleGreen.Render(fmt.Sprintf("%s%.1f", sign, r.WeightDelta)),
				Dim(string(r.Code)),
				r.Message))
		}
	}
	return RenderBox("Matches", strings.TrimRight(b.String(), "\n"))
}
