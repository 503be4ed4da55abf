package matcher

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/alexanderramin/reframe/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMatcher(t *testing.T) *Matcher {
	t.Helper()
	kb, err := knowledge.Default()
	require.NoError(t, err)
	return New(kb, Options{})
}

func entryIDs(r MatchResult) []string {
	ids := make([]string, len(r.Ranked))
	for i, s := range r.Ranked {
		ids[i] = s.Entry.ID
	}
	return ids
}

func TestMatch_ProcrastinationExample(t *testing.T) {
	m := defaultMatcher(t)
	r := m.Match("I keep procrastinating on this big project and feel like a failure")

	require.False(t, r.Fallback)
	assert.Equal(t, []string{"goals-procrastination", "goals-too-big", "identity-failure"}, entryIDs(r))
	assert.Equal(t, 6.0, r.Ranked[0].Score)
	assert.NoError(t, r.Err())
}

func TestMatch_MultiWordKeywordsReachTheirEntry(t *testing.T) {
	r := defaultMatcher(t).Match("what might happen next")
	require.False(t, r.Fallback)
	assert.Contains(t, entryIDs(r), "uncertainty-future")
}

func TestMatch_EmptyInputReturnsFallback(t *testing.T) {
	m := defaultMatcher(t)
	for _, in := range []string{"", "   ", "\n\t"} {
		r := m.Match(in)
		assert.True(t, r.Fallback)
		assert.True(t, r.InvalidInput)
		assert.ErrorIs(t, r.Err(), ErrInvalidInput)
		require.NotEmpty(t, r.Ranked)
		for _, s := range r.Ranked {
			assert.True(t, s.Entry.Fallback)
			assert.Equal(t, domain.FallbackCategory, s.Entry.Category)
			require.Len(t, s.Reasons, 1)
			assert.Equal(t, domain.ReasonFallback, s.Reasons[0].Code)
		}
	}
}

func TestMatch_UnrelatedInputReturnsFallback(t *testing.T) {
	r := defaultMatcher(t).Match("purple elephants dance quietly")
	assert.True(t, r.Fallback)
	assert.False(t, r.InvalidInput)
	assert.Equal(t, []string{"general-name-the-piece", "general-bigger-picture", "general-both-true"}, entryIDs(r))
}

func TestMatch_PhraseKeyword(t *testing.T) {
	r := defaultMatcher(t).Match("scrolling social media makes me jealous")
	require.False(t, r.Fallback)
	top := r.Top()
	assert.Equal(t, "comparison-behind", top.Entry.ID)

	var codes []domain.MatchReasonCode
	for _, reason := range top.Reasons {
		codes = append(codes, reason.Code)
	}
	assert.Contains(t, codes, domain.ReasonPhrase)
	assert.Contains(t, codes, domain.ReasonKeyword)
}

func TestMatch_HigherFloorDropsWeakMatches(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)

	loose := New(kb, Options{MinConfidence: 1})
	strict := New(kb, Options{MinConfidence: 5})

	in := "I keep procrastinating on this big project and feel like a failure"
	assert.Len(t, loose.Match(in).Ranked, 3)
	assert.Equal(t, []string{"goals-procrastination"}, entryIDs(strict.Match(in)))
}

func TestMatch_MaxResultsCapped(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)
	m := New(kb, Options{MaxResults: 10})
	assert.Equal(t, DefaultMaxResults, m.Options().MaxResults)

	m = New(kb, Options{MaxResults: 1})
	r := m.Match("my boss criticized my performance review and I feel stuck in this job")
	assert.Len(t, r.Ranked, 1)
}

func TestScoreEntry_ReasonsSumToScore(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)
	entry, ok := kb.Entry("work-criticism")
	require.True(t, ok)

	tokens := textnorm.Normalize("My boss gave harsh feedback on my work")
	s := ScoreEntry(ScoringInput{
		Tokens:  textnorm.ToSet(tokens...),
		Text:    strings.Join(tokens, " "),
		Entry:   indexEntry(entry, 0),
		Weights: DefaultWeights(),
	})

	var sum float64
	for _, r := range s.Reasons {
		sum += r.WeightDelta
	}
	assert.InDelta(t, s.Score, sum, 1e-9)
	assert.GreaterOrEqual(t, s.Score, 6.0, "boss and feedback are both keywords")
}

func TestCanonicalSort_TieBreaksOnDeclarationOrder(t *testing.T) {
	entries := []ScoredEntry{
		{Entry: domain.PatternEntry{ID: "c"}, Index: 2, Score: 4},
		{Entry: domain.PatternEntry{ID: "a"}, Index: 0, Score: 4},
		{Entry: domain.PatternEntry{ID: "top"}, Index: 5, Score: 9},
		{Entry: domain.PatternEntry{ID: "b"}, Index: 1, Score: 4},
	}
	CanonicalSort(entries)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.Entry.ID)
	}
	assert.Equal(t, []string{"top", "a", "b", "c"}, ids)
}

// Random situations assembled from catalog vocabulary must always yield a
// ranked list of one to three entries, sorted, with every non-fallback entry
// at or above the floor, and identical output on a second call.
func TestMatch_Properties(t *testing.T) {
	kb, err := knowledge.Default()
	require.NoError(t, err)
	m := New(kb, Options{})

	var vocab []string
	for _, e := range kb.All() {
		vocab = append(vocab, e.Keywords...)
		vocab = append(vocab, strings.Fields(e.Before)...)
	}
	vocab = append(vocab, "zebra", "", "!!!", "I", "and")

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(12)
		words := make([]string, n)
		for i := range words {
			words[i] = vocab[rng.Intn(len(vocab))]
		}
		text := strings.Join(words, " ")

		r := m.Match(text)
		require.NotEmpty(t, r.Ranked, "trial %d: %q", trial, text)
		assert.LessOrEqual(t, len(r.Ranked), DefaultMaxResults, "trial %d", trial)

		for i, s := range r.Ranked {
			if r.Fallback {
				assert.True(t, s.Entry.Fallback, "trial %d", trial)
				continue
			}
			assert.False(t, s.Entry.Fallback, "trial %d", trial)
			assert.GreaterOrEqual(t, s.Score, DefaultMinConfidence, "trial %d", trial)
			if i > 0 {
				prev := r.Ranked[i-1]
				assert.True(t, prev.Score > s.Score || (prev.Score == s.Score && prev.Index < s.Index),
					"trial %d: ranking not canonical", trial)
			}
		}
		assert.Equal(t, r, m.Match(text), "trial %d: not deterministic", trial)
	}
}
