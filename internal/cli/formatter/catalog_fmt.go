package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

// FormatCatalogList renders catalog entries as a table.
func FormatCatalogList(version string, entries []domain.PatternEntry) string {
	headers := []string{"ID", "CATEGORY", "THEMES", "BEFORE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		themes := make([]string, len(e.Themes))
		for i, t := range e.Themes {
			themes[i] = ThemeColor(t).Render(t.Label())
		}
		id := Bold(e.ID)
		if e.Fallback {
			id = Dim(e.ID)
		}
		rows = append(rows, []string{id, e.Category, strings.Join(themes, ", "), e.Before})
	}

	title := "Catalog"
	if version != "" {
		title = "Catalog v" + version
	}
	if len(rows) == 0 {
		return RenderBox(title, Dim("No entries."))
	}
	return RenderBox(title, RenderTable(headers, rows, 0, 24, 0, 40))
}

// FormatCatalogValid renders a successful validation summary.
func FormatCatalogValid(source, version string, entries, fallbacks, chemicals int) string {
	return fmt.Sprintf("%s %s\n  %s entries (%d fallback), %d chemical rules, version %s\n",
		StyleGreen.Render("✔"), Bold(source),
		Bold(fmt.Sprint(entries)), fallbacks, chemicals, Dim(version))
}

// FormatCatalogErrors renders one line per validation error.
func FormatCatalogErrors(source string, errs []error) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s: %d problem(s)\n", StyleRed.Render("✖"), Bold(source), len(errs)))
	for _, err := range errs {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("-"), err.Error()))
	}
	return b.String()
}
