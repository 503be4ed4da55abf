package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleItalic = lipgloss.NewStyle().Foreground(ColorFg).Italic(true)
)

// ThemeColor returns the style used for a theme badge.
func ThemeColor(t domain.Theme) lipgloss.Style {
	switch t {
	case domain.ThemeControl:
		return StyleGreen
	case domain.ThemeGrayAreas:
		return StylePurple
	case domain.ThemeSmallPart:
		return StyleBlue
	case domain.ThemeTemporary:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ThemeBadge returns a colored theme indicator such as "● Gray areas".
func ThemeBadge(t domain.Theme) string {
	return ThemeColor(t).Render("● " + t.Label())
}

// MechanismBadge renders a mechanism label in its own color.
func MechanismBadge(m domain.Mechanism) string {
	switch m {
	case domain.MechanismDopamine:
		return StyleRed.Render(m.Label())
	case domain.MechanismOxytocin:
		return StylePurple.Render(m.Label())
	case domain.MechanismSerotonin:
		return StyleYellow.Render(m.Label())
	default:
		return StyleDim.Render(string(m))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
