// Package matcher ranks catalog entries against a situation using
// deterministic token overlap. It is a rule matcher, not a semantic model.
package matcher

import (
	"errors"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/alexanderramin/reframe/internal/textnorm"
)

// ErrInvalidInput marks an empty or whitespace-only situation. It never
// reaches callers as a failure; the fallback set is returned instead.
var ErrInvalidInput = errors.New("situation text is empty")

const (
	DefaultMinConfidence = 2.0
	DefaultMaxResults    = 3
)

// Options tune ranking.
type Options struct {
	Weights       Weights
	MinConfidence float64
	MaxResults    int
}

func DefaultOptions() Options {
	return Options{
		Weights:       DefaultWeights(),
		MinConfidence: DefaultMinConfidence,
		MaxResults:    DefaultMaxResults,
	}
}

// MatchResult is the ranked selection for one situation. Ranked always holds
// between one and MaxResults entries.
type MatchResult struct {
	Ranked       []ScoredEntry
	Tokens       []string
	Fallback     bool
	InvalidInput bool
}

// Top returns the highest-ranked entry.
func (r MatchResult) Top() ScoredEntry {
	return r.Ranked[0]
}

// Err reports ErrInvalidInput for empty situations, for diagnostics only.
func (r MatchResult) Err() error {
	if r.InvalidInput {
		return ErrInvalidInput
	}
	return nil
}

// Matcher scores situations against a fixed knowledge base. Entry token sets
// are built once in New; Match is safe for concurrent use.
type Matcher struct {
	index    []indexedEntry
	fallback []ScoredEntry
	opts     Options
}

// New indexes the knowledge base. Zero-valued options fall back to defaults.
func New(kb *knowledge.KnowledgeBase, opts Options) *Matcher {
	def := DefaultOptions()
	if opts.Weights == (Weights{}) {
		opts.Weights = def.Weights
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = def.MinConfidence
	}
	if opts.MaxResults <= 0 || opts.MaxResults > DefaultMaxResults {
		opts.MaxResults = def.MaxResults
	}

	m := &Matcher{opts: opts}
	for i, e := range kb.All() {
		if e.Fallback {
			if len(m.fallback) < opts.MaxResults {
				m.fallback = append(m.fallback, ScoredEntry{
					Entry: e,
					Index: i,
					Reasons: []domain.MatchReason{{
						Code:    domain.ReasonFallback,
						Message: "no catalog entry cleared the confidence floor",
					}},
				})
			}
			continue
		}
		m.index = append(m.index, indexEntry(e, i))
	}
	return m
}

// Options returns the effective options.
func (m *Matcher) Options() Options { return m.opts }

// Match scores every entry, keeps those at or above the confidence floor and
// returns up to MaxResults of them. Below-floor and empty input yield the
// fallback set.
func (m *Matcher) Match(text string) MatchResult {
	if strings.TrimSpace(text) == "" {
		return MatchResult{Ranked: m.fallbackSet(), Fallback: true, InvalidInput: true}
	}

	tokens := textnorm.Normalize(text)
	set := textnorm.ToSet(tokens...)
	joined := strings.Join(tokens, " ")

	scored := make([]ScoredEntry, 0, len(m.index))
	for _, ie := range m.index {
		s := ScoreEntry(ScoringInput{
			Tokens:  set,
			Text:    joined,
			Entry:   ie,
			Weights: m.opts.Weights,
		})
		if s.Score >= m.opts.MinConfidence {
			scored = append(scored, s)
		}
	}

	if len(scored) == 0 {
		return MatchResult{Ranked: m.fallbackSet(), Tokens: tokens, Fallback: true}
	}

	CanonicalSort(scored)
	if len(scored) > m.opts.MaxResults {
		scored = scored[:m.opts.MaxResults]
	}
	return MatchResult{Ranked: scored, Tokens: tokens}
}

func (m *Matcher) fallbackSet() []ScoredEntry {
	return append([]ScoredEntry(nil), m.fallback...)
}
