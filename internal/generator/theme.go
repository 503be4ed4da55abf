package generator

import (
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/matcher"
)

// ClassifyTheme returns the first-declared theme of the top-ranked entry.
func ClassifyTheme(ranked []matcher.ScoredEntry) domain.Theme {
	if len(ranked) == 0 {
		return domain.ThemeControl
	}
	t := ranked[0].Entry.PrimaryTheme()
	if !t.Valid() {
		return domain.ThemeControl
	}
	return t
}
