package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

// AssemblyError means a generator produced no value for a required section.
// The generators are total, so this is an internal contract violation rather
// than a user-input problem.
type AssemblyError struct {
	Field  string
	Reason string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembling reframe: %s %s", e.Field, e.Reason)
}

// Parts are the generator outputs before validation.
type Parts struct {
	Pairs       []domain.ReframePair
	Theme       domain.Theme
	Chemical    *domain.ChemicalAngle
	Action      string
	Affirmation string
	Closer      string
	Matches     []domain.EntryMatch
	Fallback    bool
}

// Assemble validates the parts and orders them into a ReframeResult:
// pairs, theme, chemical angle, action, affirmation, closer.
func Assemble(p Parts) (*domain.ReframeResult, error) {
	if len(p.Pairs) == 0 || len(p.Pairs) > 3 {
		return nil, &AssemblyError{Field: "pairs", Reason: fmt.Sprintf("count %d outside 1..3", len(p.Pairs))}
	}
	for i, pair := range p.Pairs {
		if strings.TrimSpace(pair.Before) == "" || strings.TrimSpace(pair.After) == "" {
			return nil, &AssemblyError{Field: fmt.Sprintf("pairs[%d]", i), Reason: "is incomplete"}
		}
	}
	if !p.Theme.Valid() {
		return nil, &AssemblyError{Field: "theme", Reason: fmt.Sprintf("%q is not a theme", p.Theme)}
	}
	if p.Chemical != nil && (!p.Chemical.Mechanism.Valid() || strings.TrimSpace(p.Chemical.Rationale) == "") {
		return nil, &AssemblyError{Field: "chemical", Reason: "is incomplete"}
	}
	if strings.TrimSpace(p.Action) == "" {
		return nil, &AssemblyError{Field: "action", Reason: "is missing"}
	}
	if !strings.HasPrefix(p.Affirmation, "I, ") || !strings.Contains(p.Affirmation, ", will ") {
		return nil, &AssemblyError{Field: "affirmation", Reason: "does not match the template"}
	}
	if strings.TrimSpace(p.Closer) == "" {
		return nil, &AssemblyError{Field: "closer", Reason: "is missing"}
	}

	return &domain.ReframeResult{
		Pairs:       append([]domain.ReframePair(nil), p.Pairs...),
		Theme:       p.Theme,
		Chemical:    p.Chemical,
		Action:      p.Action,
		Affirmation: p.Affirmation,
		Closer:      p.Closer,
		Matches:     p.Matches,
		Fallback:    p.Fallback,
	}, nil
}
