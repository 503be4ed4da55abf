package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/textnorm"
)

// Weights scale each scoring factor. All factors are non-negative, so the
// score is monotonic in keyword overlap.
type Weights struct {
	Keyword  float64
	Category float64
	Before   float64
	After    float64
	Phrase   float64
}

// DefaultWeights favours curated keywords, then the category label, then the
// reframe text itself.
func DefaultWeights() Weights {
	return Weights{
		Keyword:  3.0,
		Category: 2.0,
		Before:   1.0,
		After:    0.5,
		Phrase:   2.0,
	}
}

// indexedEntry is a catalog entry with its normalized token sets precomputed.
type indexedEntry struct {
	Entry    domain.PatternEntry
	Index    int
	Keywords map[string]bool
	Phrases  []string
	Category map[string]bool
	Before   map[string]bool
	After    map[string]bool
}

func indexEntry(e domain.PatternEntry, idx int) indexedEntry {
	ie := indexedEntry{
		Entry:    e,
		Index:    idx,
		Keywords: map[string]bool{},
		Category: textnorm.TokenSet(e.Category),
		Before:   textnorm.TokenSet(e.Before),
		After:    textnorm.TokenSet(e.After),
	}
	for _, kw := range e.Keywords {
		toks := textnorm.Normalize(kw)
		switch len(toks) {
		case 0:
		case 1:
			ie.Keywords[toks[0]] = true
		default:
			ie.Phrases = append(ie.Phrases, strings.Join(toks, " "))
		}
	}
	if catToks := textnorm.Normalize(e.Category); len(catToks) > 1 {
		ie.Phrases = append(ie.Phrases, strings.Join(catToks, " "))
	}
	return ie
}

// ScoringInput is everything ScoreEntry needs for one entry.
type ScoringInput struct {
	Tokens  map[string]bool // distinct situation tokens
	Text    string          // situation tokens joined by single spaces
	Entry   indexedEntry
	Weights Weights
}

// ScoredEntry is an entry with its relevance score.
type ScoredEntry struct {
	Entry   domain.PatternEntry
	Index   int // declaration order in the catalog
	Score   float64
	Reasons []domain.MatchReason
}

// Match converts the scored entry into its diagnostic record.
func (s ScoredEntry) Match() domain.EntryMatch {
	return domain.EntryMatch{
		EntryID:  s.Entry.ID,
		Category: s.Entry.Category,
		Score:    s.Score,
		Reasons:  append([]domain.MatchReason(nil), s.Reasons...),
	}
}

// ScoreEntry sums the weighted factors for one entry.
func ScoreEntry(input ScoringInput) ScoredEntry {
	result := ScoredEntry{
		Entry: input.Entry.Entry,
		Index: input.Entry.Index,
	}

	var score float64
	factors := []func(ScoringInput) (float64, *domain.MatchReason){
		scoreKeywords,
		scoreCategory,
		scoreBefore,
		scoreAfter,
		scorePhrases,
	}
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = score
	return result
}

func scoreKeywords(input ScoringInput) (float64, *domain.MatchReason) {
	hits := overlap(input.Tokens, input.Entry.Keywords)
	return weighted(domain.ReasonKeyword, "keyword", hits, input.Weights.Keyword)
}

func scoreCategory(input ScoringInput) (float64, *domain.MatchReason) {
	hits := overlap(input.Tokens, input.Entry.Category)
	return weighted(domain.ReasonCategory, "category", hits, input.Weights.Category)
}

func scoreBefore(input ScoringInput) (float64, *domain.MatchReason) {
	hits := overlap(input.Tokens, input.Entry.Before)
	return weighted(domain.ReasonBefore, "before-text", hits, input.Weights.Before)
}

func scoreAfter(input ScoringInput) (float64, *domain.MatchReason) {
	hits := overlap(input.Tokens, input.Entry.After)
	return weighted(domain.ReasonAfter, "after-text", hits, input.Weights.After)
}

func scorePhrases(input ScoringInput) (float64, *domain.MatchReason) {
	var hits []string
	for _, p := range input.Entry.Phrases {
		if textnorm.ContainsPhrase(input.Text, p) {
			hits = append(hits, p)
		}
	}
	return weighted(domain.ReasonPhrase, "phrase", hits, input.Weights.Phrase)
}

func weighted(code domain.MatchReasonCode, label string, hits []string, weight float64) (float64, *domain.MatchReason) {
	if len(hits) == 0 || weight == 0 {
		return 0, nil
	}
	delta := float64(len(hits)) * weight
	return delta, &domain.MatchReason{
		Code:        code,
		Message:     fmt.Sprintf("%s match: %s", label, strings.Join(hits, ", ")),
		WeightDelta: delta,
	}
}

// overlap returns the situation tokens found in set, sorted for stable messages.
func overlap(tokens, set map[string]bool) []string {
	var hits []string
	for t := range tokens {
		if set[t] {
			hits = append(hits, t)
		}
	}
	sort.Strings(hits)
	return hits
}
