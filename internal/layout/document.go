package layout

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/reframe/internal/domain"
)

// Document is the JSON form of a ReframeResult.
type Document struct {
	Pairs       []PairDocument    `json:"pairs"`
	Theme       string            `json:"theme"`
	ThemeLabel  string            `json:"theme_label"`
	Chemical    *ChemicalDocument `json:"chemical,omitempty"`
	Action      string            `json:"action"`
	Affirmation string            `json:"affirmation"`
	Closer      string            `json:"closer"`
	Fallback    bool              `json:"fallback"`
	Matches     []MatchDocument   `json:"matches,omitempty"`
}

type PairDocument struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type ChemicalDocument struct {
	Mechanism string `json:"mechanism"`
	Rationale string `json:"rationale"`
}

type MatchDocument struct {
	EntryID  string   `json:"entry_id"`
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons,omitempty"`
}

// ToDocument converts a result. Matches are included only when explain is set.
func ToDocument(r *domain.ReframeResult, explain bool) Document {
	doc := Document{
		Theme:       string(r.Theme),
		ThemeLabel:  r.Theme.Label(),
		Action:      r.Action,
		Affirmation: r.Affirmation,
		Closer:      r.Closer,
		Fallback:    r.Fallback,
	}
	for _, p := range r.Pairs {
		doc.Pairs = append(doc.Pairs, PairDocument{Before: p.Before, After: p.After})
	}
	if r.Chemical != nil {
		doc.Chemical = &ChemicalDocument{Mechanism: string(r.Chemical.Mechanism), Rationale: r.Chemical.Rationale}
	}
	if explain {
		for _, m := range r.Matches {
			md := MatchDocument{EntryID: m.EntryID, Category: m.Category, Score: m.Score}
			for _, reason := range m.Reasons {
				md.Reasons = append(md.Reasons, reason.Message)
			}
			doc.Matches = append(doc.Matches, md)
		}
	}
	return doc
}

// FromDocument converts a decoded document back into a result.
func FromDocument(doc Document) (*domain.ReframeResult, error) {
	theme, err := domain.ParseTheme(doc.Theme)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	r := &domain.ReframeResult{
		Theme:       theme,
		Action:      doc.Action,
		Affirmation: doc.Affirmation,
		Closer:      doc.Closer,
		Fallback:    doc.Fallback,
	}
	for _, p := range doc.Pairs {
		r.Pairs = append(r.Pairs, domain.ReframePair{Before: p.Before, After: p.After})
	}
	if doc.Chemical != nil {
		mech, err := domain.ParseMechanism(doc.Chemical.Mechanism)
		if err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		r.Chemical = &domain.ChemicalAngle{Mechanism: mech, Rationale: doc.Chemical.Rationale}
	}
	return r, nil
}

// MarshalJSON renders the result as indented JSON.
func MarshalJSON(r *domain.ReframeResult, explain bool) ([]byte, error) {
	return json.MarshalIndent(ToDocument(r, explain), "", "  ")
}
