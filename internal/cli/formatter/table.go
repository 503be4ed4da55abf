package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a styled header and a separator.
// Widths are measured in visible cells so styled cells align. A positive
// entry in maxWidths truncates that column.
func RenderTable(headers []string, rows [][]string, maxWidths ...int) string {
	cols := len(headers)
	if cols == 0 {
		return ""
	}

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		if i < len(maxWidths) && maxWidths[i] > 0 {
			return Truncate(row[i], maxWidths[i])
		}
		return row[i]
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range widths {
			widths[i] = max(widths[i], lipgloss.Width(cell(row, i)))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			c := cells[i]
			b.WriteString(style(c))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, Dim)

	for _, row := range rows {
		cells := make([]string, cols)
		for i := range cells {
			cells[i] = cell(row, i)
		}
		writeRow(cells, func(s string) string { return s })
	}
	return b.String()
}
