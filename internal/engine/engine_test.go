package engine_test

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/engine"
	"github.com/alexanderramin/reframe/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const procrastination = "I keep procrastinating on this big project and feel like a failure"

var affirmationRE = regexp.MustCompile(`^I, (.+), will \S+( \S+){0,14}$`)

func TestNew_RequiresKnowledgeBase(t *testing.T) {
	_, err := engine.New(nil, engine.Config{})
	assert.Error(t, err)
}

func TestReframe_ProcrastinationExample(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)

	r, err := eng.Reframe(domain.Situation{Text: procrastination, Name: "Sam"}, nil)
	require.NoError(t, err)

	require.Len(t, r.Pairs, 3)
	assert.Equal(t, "I keep putting this off, so I must be lazy.", r.Pairs[0].Before)
	assert.Equal(t, domain.ThemeControl, r.Theme)
	require.NotNil(t, r.Chemical)
	assert.Equal(t, domain.MechanismDopamine, r.Chemical.Mechanism)
	assert.True(t, strings.HasPrefix(r.Action, "Tomorrow"))
	assert.Contains(t, r.Action, "every day")
	assert.Equal(t, "I, Sam, will shrink the next step until starting feels easy", r.Affirmation)
	assert.NotEmpty(t, r.Closer)
	assert.False(t, r.Fallback)
	require.Len(t, r.Matches, 3)
	assert.Equal(t, "goals-procrastination", r.Matches[0].EntryID)
}

func TestReframe_FallbackForEmptyInput(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	for _, in := range []string{"", "    "} {
		r, err := eng.Reframe(domain.Situation{Text: in}, nil)
		require.NoError(t, err)
		assert.True(t, r.Fallback)
		assert.NotEmpty(t, r.Pairs)
		assert.True(t, r.Theme.Valid())
		assert.Regexp(t, affirmationRE, r.Affirmation)
		assert.Contains(t, r.Affirmation, "[Name]")
	}
}

func TestReframe_DeterministicWithoutHistory(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	sit := domain.Situation{Text: "My boss criticized my presentation in front of everyone", Name: "Alex"}

	first, err := eng.Reframe(sit, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := eng.Reframe(sit, nil)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestReframe_DoesNotModifyHistory(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	state := domain.NewSessionState("s", 5)
	state.Remember("an old closer")
	before := state.Clone()

	_, err := eng.Reframe(domain.Situation{Text: procrastination}, state)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, state))
}

func TestReframe_CloserVarietyAcrossSession(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	state := domain.NewSessionState("s", domain.DefaultHistorySize)

	seen := map[string]bool{}
	for i := 0; i < domain.DefaultHistorySize; i++ {
		r, err := eng.Reframe(domain.Situation{Text: procrastination}, state)
		require.NoError(t, err)
		assert.False(t, seen[r.Closer], "call %d repeated %q", i+1, r.Closer)
		seen[r.Closer] = true
		state.Remember(r.Closer)
	}
}

func TestReframe_CustomCatalogAndFloor(t *testing.T) {
	kb := testutil.NewTestKnowledgeBase(t, testutil.NewTestSchema(
		testutil.NewTestEntry("stuck-project", "Work",
			testutil.WithKeywords("stuck", "project"),
			testutil.WithThemes(domain.ThemeTemporary)),
	))
	eng, err := engine.New(kb, engine.Config{})
	require.NoError(t, err)

	r, err := eng.Reframe(domain.Situation{Text: "stuck on a project"}, nil)
	require.NoError(t, err)
	assert.False(t, r.Fallback)
	assert.Equal(t, domain.ThemeTemporary, r.Theme)
	require.NotNil(t, r.Chemical)
	assert.Equal(t, domain.MechanismDopamine, r.Chemical.Mechanism)

	r, err = eng.Reframe(domain.Situation{Text: "a sunny afternoon"}, nil)
	require.NoError(t, err)
	assert.True(t, r.Fallback)
	assert.Equal(t, "Everything is wrong.", r.Pairs[0].Before)
	assert.Nil(t, r.Chemical)
}

func TestReframe_ConcurrentUseIsSafe(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	want, err := eng.Reframe(domain.Situation{Text: procrastination}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := eng.Reframe(domain.Situation{Text: procrastination}, nil)
			if assert.NoError(t, err) {
				assert.Empty(t, cmp.Diff(want, got))
			}
		}()
	}
	wg.Wait()
}

// Every result from random catalog vocabulary satisfies the output contract.
func TestReframe_OutputContract(t *testing.T) {
	eng := testutil.NewDefaultEngine(t)
	kb := eng.KnowledgeBase()

	var vocab []string
	for _, e := range kb.All() {
		vocab = append(vocab, e.Keywords...)
	}
	for _, c := range kb.Chemicals() {
		vocab = append(vocab, c.Keywords...)
	}
	vocab = append(vocab, "today", "again", "really", "?", "")
	names := []string{"", "Sam", "Jo Anne", "  "}

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 250; trial++ {
		words := make([]string, rng.Intn(10))
		for i := range words {
			words[i] = vocab[rng.Intn(len(vocab))]
		}
		sit := domain.Situation{Text: strings.Join(words, " "), Name: names[rng.Intn(len(names))]}

		r, err := eng.Reframe(sit, nil)
		require.NoError(t, err, "trial %d", trial)
		assert.GreaterOrEqual(t, len(r.Pairs), 1, "trial %d", trial)
		assert.LessOrEqual(t, len(r.Pairs), 3, "trial %d", trial)
		assert.True(t, r.Theme.Valid(), "trial %d", trial)
		assert.Regexp(t, affirmationRE, r.Affirmation, "trial %d", trial)
		assert.True(t, strings.HasPrefix(r.Action, "Today") || strings.HasPrefix(r.Action, "Tomorrow"), "trial %d", trial)
		assert.NotEmpty(t, r.Closer, "trial %d", trial)
		if r.Chemical != nil {
			assert.True(t, r.Chemical.Mechanism.Valid(), "trial %d", trial)
		}
	}
}

func TestAssemble_RejectsIncompleteParts(t *testing.T) {
	valid := engine.Parts{
		Pairs:       []domain.ReframePair{{Before: "b", After: "a"}},
		Theme:       domain.ThemeControl,
		Action:      "Today, do it.",
		Affirmation: "I, Sam, will do it",
		Closer:      "Done.",
	}
	_, err := engine.Assemble(valid)
	require.NoError(t, err)

	tests := []struct {
		field  string
		mutate func(*engine.Parts)
	}{
		{"pairs", func(p *engine.Parts) { p.Pairs = nil }},
		{"pairs", func(p *engine.Parts) { p.Pairs = make([]domain.ReframePair, 4) }},
		{"pairs[0]", func(p *engine.Parts) { p.Pairs = []domain.ReframePair{{Before: "b"}} }},
		{"theme", func(p *engine.Parts) { p.Theme = "hope" }},
		{"chemical", func(p *engine.Parts) { p.Chemical = &domain.ChemicalAngle{Mechanism: domain.MechanismDopamine} }},
		{"action", func(p *engine.Parts) { p.Action = " " }},
		{"affirmation", func(p *engine.Parts) { p.Affirmation = "You will do it" }},
		{"closer", func(p *engine.Parts) { p.Closer = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			parts := valid
			tt.mutate(&parts)
			_, err := engine.Assemble(parts)
			var ae *engine.AssemblyError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.field, ae.Field)
		})
	}
}
