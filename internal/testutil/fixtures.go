package testutil

import (
	"testing"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/engine"
	"github.com/alexanderramin/reframe/internal/knowledge"
)

// Entry options
type EntryOption func(*knowledge.EntryConfig)

func WithThemes(themes ...domain.Theme) EntryOption {
	return func(e *knowledge.EntryConfig) {
		e.Themes = e.Themes[:0]
		for _, th := range themes {
			e.Themes = append(e.Themes, string(th))
		}
	}
}

func WithKeywords(keywords ...string) EntryOption {
	return func(e *knowledge.EntryConfig) {
		e.Keywords = keywords
	}
}

func WithOutcome(outcome string) EntryOption {
	return func(e *knowledge.EntryConfig) {
		e.Outcome = outcome
	}
}

func WithPair(before, after string) EntryOption {
	return func(e *knowledge.EntryConfig) {
		e.Before = before
		e.After = after
	}
}

func AsFallback() EntryOption {
	return func(e *knowledge.EntryConfig) {
		e.Fallback = true
		e.Category = domain.FallbackCategory
		e.Keywords = nil
	}
}

// NewTestEntry returns a valid scorable entry config.
func NewTestEntry(id, category string, opts ...EntryOption) knowledge.EntryConfig {
	e := knowledge.EntryConfig{
		ID:       id,
		Category: category,
		Before:   "Before line for " + id + ".",
		After:    "After line for " + id + ". I will take one step.",
		Themes:   []string{string(domain.ThemeControl)},
		Keywords: []string{id},
		Outcome:  "take one step for " + id,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestSchema returns a small valid catalog: the given entries plus one
// fallback entry and a rule per mechanism.
func NewTestSchema(entries ...knowledge.EntryConfig) *knowledge.CatalogSchema {
	entries = append(entries, NewTestEntry("fallback", "", AsFallback(),
		WithPair("Everything is wrong.", "Some of this is mine to act on."),
		WithOutcome("act on the piece I control")))
	return &knowledge.CatalogSchema{
		Version: "test",
		Entries: entries,
		Chemicals: []knowledge.ChemicalConfig{
			{Mechanism: "dopamine", Rationale: "Progress feeds reward.", Keywords: []string{"stuck", "project"}},
			{Mechanism: "oxytocin", Rationale: "Connection restores trust.", Keywords: []string{"lonely", "friend"}},
			{Mechanism: "serotonin", Rationale: "Status shapes mood.", Keywords: []string{"compare", "worthless"}},
		},
	}
}

// NewTestKnowledgeBase builds a knowledge base from schema, failing the test
// on validation errors.
func NewTestKnowledgeBase(t *testing.T, schema *knowledge.CatalogSchema) *knowledge.KnowledgeBase {
	t.Helper()
	kb, err := knowledge.New(schema)
	if err != nil {
		t.Fatalf("invalid test catalog: %v", err)
	}
	return kb
}

// NewDefaultEngine returns an engine over the embedded catalog.
func NewDefaultEngine(t *testing.T) *engine.Engine {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	eng, err := engine.New(kb, engine.Config{})
	if err != nil {
		t.Fatalf("building engine: %v", err)
	}
	return eng
}
