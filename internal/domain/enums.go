package domain

import (
	"fmt"
	"strings"
)

// Theme is one of the four lenses a situation is classified under.
type Theme string

const (
	ThemeControl   Theme = "control"
	ThemeGrayAreas Theme = "gray_areas"
	ThemeSmallPart Theme = "small_part"
	ThemeTemporary Theme = "temporary"
)

// AllThemes lists the themes in canonical order.
var AllThemes = []Theme{ThemeControl, ThemeGrayAreas, ThemeSmallPart, ThemeTemporary}

// ValidThemes is the canonical set of accepted theme strings.
var ValidThemes = map[string]bool{
	"control": true, "gray_areas": true, "small_part": true, "temporary": true,
}

// Label returns the display label used in rendered output.
func (t Theme) Label() string {
	switch t {
	case ThemeControl:
		return "Control"
	case ThemeGrayAreas:
		return "Gray areas"
	case ThemeSmallPart:
		return "Small part"
	case ThemeTemporary:
		return "Temporary"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the four themes.
func (t Theme) Valid() bool {
	return ValidThemes[string(t)]
}

// ParseTheme accepts either the enum value ("gray_areas") or the display
// label ("Gray areas"), case-insensitively.
func ParseTheme(s string) (Theme, error) {
	key := normalizeEnum(s)
	for _, t := range AllThemes {
		if key == string(t) || key == normalizeEnum(t.Label()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Mechanism is a physiological framing offered as the optional chemical angle.
type Mechanism string

const (
	MechanismDopamine  Mechanism = "dopamine"
	MechanismOxytocin  Mechanism = "oxytocin"
	MechanismSerotonin Mechanism = "serotonin"
)

// AllMechanisms lists the mechanisms in canonical order.
var AllMechanisms = []Mechanism{MechanismDopamine, MechanismOxytocin, MechanismSerotonin}

// Label returns the display label used in rendered output.
func (m Mechanism) Label() string {
	switch m {
	case MechanismDopamine:
		return "Dopamine"
	case MechanismOxytocin:
		return "Oxytocin"
	case MechanismSerotonin:
		return "Serotonin"
	default:
		return string(m)
	}
}

// Valid reports whether m is one of the three mechanisms.
func (m Mechanism) Valid() bool {
	switch m {
	case MechanismDopamine, MechanismOxytocin, MechanismSerotonin:
		return true
	}
	return false
}

// ParseMechanism accepts the enum value or label, case-insensitively.
func ParseMechanism(s string) (Mechanism, error) {
	key := normalizeEnum(s)
	for _, m := range AllMechanisms {
		if key == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mechanism %q", s)
}

// CloserStyle selects the family of closing lines.
type CloserStyle string

const (
	CloserStoic      CloserStyle = "stoic"
	CloserSystemsWin CloserStyle = "systems_win"
)

// ParseCloserStyle parses a closer style name.
func ParseCloserStyle(s string) (CloserStyle, error) {
	switch normalizeEnum(s) {
	case string(CloserStoic):
		return CloserStoic, nil
	case string(CloserSystemsWin), "systems":
		return CloserSystemsWin, nil
	}
	return "", fmt.Errorf("unknown closer style %q", s)
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
