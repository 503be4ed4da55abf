package generator

import (
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/textnorm"
)

type chemicalIndex struct {
	rule    domain.ChemicalRule
	tokens  map[string]bool
	phrases []string
}

// ChemicalMapper detects which mechanism, if any, the situation's emotional
// keywords point at.
type ChemicalMapper struct {
	rules []chemicalIndex
}

// NewChemicalMapper normalizes the dictionary keywords once.
func NewChemicalMapper(rules []domain.ChemicalRule) *ChemicalMapper {
	m := &ChemicalMapper{}
	for _, r := range rules {
		ci := chemicalIndex{rule: r, tokens: map[string]bool{}}
		for _, kw := range r.Keywords {
			toks := textnorm.Normalize(kw)
			switch len(toks) {
			case 0:
			case 1:
				ci.tokens[toks[0]] = true
			default:
				ci.phrases = append(ci.phrases, strings.Join(toks, " "))
			}
		}
		m.rules = append(m.rules, ci)
	}
	return m
}

// Map counts distinct keyword hits per mechanism and returns the one with the
// most hits; ties go to the first-declared mechanism. No hits returns nil.
func (m *ChemicalMapper) Map(tokens []string) *domain.ChemicalAngle {
	seen := map[string]bool{}
	joined := " " + strings.Join(tokens, " ") + " "

	var best *domain.ChemicalRule
	bestHits := 0
	for i := range m.rules {
		ci := &m.rules[i]
		hits := 0
		clear(seen)
		for _, t := range tokens {
			if ci.tokens[t] && !seen[t] {
				seen[t] = true
				hits++
			}
		}
		for _, p := range ci.phrases {
			if strings.Contains(joined, " "+p+" ") {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = &ci.rule, hits
		}
	}
	if best == nil {
		return nil
	}
	return &domain.ChemicalAngle{Mechanism: best.Mechanism, Rationale: best.Rationale}
}
