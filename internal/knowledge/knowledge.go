// Package knowledge holds the immutable reframe catalog: pattern entries,
// the theme tags on them, and the keyword dictionary for chemical angles.
package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// StartupError reports a catalog that cannot be used. It is fatal: the engine
// does not run without a valid catalog.
type StartupError struct {
	Source string
	Errs   []error
}

func (e *StartupError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid catalog %s: %s", e.Source, strings.Join(msgs, "; "))
}

func (e *StartupError) Unwrap() []error {
	return e.Errs
}

// KnowledgeBase is the loaded catalog. It is never mutated after New returns
// and is safe for concurrent use.
type KnowledgeBase struct {
	version   string
	entries   []domain.PatternEntry
	chemicals []domain.ChemicalRule
}

// Default builds the knowledge base from the embedded catalog.
func Default() (*KnowledgeBase, error) {
	return FromBytes("embedded", defaultCatalog)
}

// LoadFile builds the knowledge base from a catalog file on disk.
func LoadFile(path string) (*KnowledgeBase, error) {
	schema, err := LoadCatalog(path)
	if err != nil {
		return nil, &StartupError{Source: path, Errs: []error{err}}
	}
	return newFromSchema(path, schema)
}

// FromBytes builds the knowledge base from raw catalog YAML.
func FromBytes(source string, data []byte) (*KnowledgeBase, error) {
	schema, err := ParseCatalog(data)
	if err != nil {
		return nil, &StartupError{Source: source, Errs: []error{err}}
	}
	return newFromSchema(source, schema)
}

// New validates schema and converts it into a KnowledgeBase.
func New(schema *CatalogSchema) (*KnowledgeBase, error) {
	return newFromSchema("schema", schema)
}

func newFromSchema(source string, schema *CatalogSchema) (*KnowledgeBase, error) {
	if schema == nil {
		return nil, &StartupError{Source: source, Errs: []error{errors.New("catalog is empty")}}
	}
	if errs := ValidateCatalog(schema); len(errs) > 0 {
		return nil, &StartupError{Source: source, Errs: errs}
	}

	kb := &KnowledgeBase{version: schema.Version}
	for _, ec := range schema.Entries {
		themes := make([]domain.Theme, len(ec.Themes))
		for i, t := range ec.Themes {
			themes[i] = domain.Theme(t)
		}
		category := strings.TrimSpace(ec.Category)
		if ec.Fallback {
			category = domain.FallbackCategory
		}
		kb.entries = append(kb.entries, domain.PatternEntry{
			ID:       ec.ID,
			Category: category,
			Before:   strings.TrimSpace(ec.Before),
			After:    strings.TrimSpace(ec.After),
			Themes:   themes,
			Keywords: append([]string(nil), ec.Keywords...),
			Outcome:  strings.TrimSpace(ec.Outcome),
			Fallback: ec.Fallback,
		})
	}
	for _, cc := range schema.Chemicals {
		kb.chemicals = append(kb.chemicals, domain.ChemicalRule{
			Mechanism: domain.Mechanism(cc.Mechanism),
			Rationale: strings.TrimSpace(cc.Rationale),
			Keywords:  append([]string(nil), cc.Keywords...),
		})
	}
	return kb, nil
}

// Version is the catalog's declared version string.
func (kb *KnowledgeBase) Version() string { return kb.version }

// All returns every entry in declaration order.
func (kb *KnowledgeBase) All() []domain.PatternEntry {
	return filterEntries(kb.entries, func(domain.PatternEntry) bool { return true })
}

// ByTheme returns the entries tagged with theme, in declaration order.
func (kb *KnowledgeBase) ByTheme(theme domain.Theme) []domain.PatternEntry {
	return filterEntries(kb.entries, func(e domain.PatternEntry) bool { return e.HasTheme(theme) })
}

// Scorable returns the non-fallback entries in declaration order.
func (kb *KnowledgeBase) Scorable() []domain.PatternEntry {
	return filterEntries(kb.entries, func(e domain.PatternEntry) bool { return !e.Fallback })
}

// Fallback returns the general problem-framing entries in declaration order.
func (kb *KnowledgeBase) Fallback() []domain.PatternEntry {
	return filterEntries(kb.entries, func(e domain.PatternEntry) bool { return e.Fallback })
}

// Chemicals returns the keyword dictionary in declaration order.
func (kb *KnowledgeBase) Chemicals() []domain.ChemicalRule {
	out := make([]domain.ChemicalRule, len(kb.chemicals))
	for i, c := range kb.chemicals {
		c.Keywords = append([]string(nil), c.Keywords...)
		out[i] = c
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func (kb *KnowledgeBase) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range kb.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Entry looks up an entry by id.
func (kb *KnowledgeBase) Entry(id string) (domain.PatternEntry, bool) {
	for _, e := range kb.entries {
		if e.ID == id {
			return cloneEntry(e), true
		}
	}
	return domain.PatternEntry{}, false
}

// filterEntries copies matching entries so callers cannot reach the
// knowledge base's backing slices.
func filterEntries(entries []domain.PatternEntry, keep func(domain.PatternEntry) bool) []domain.PatternEntry {
	var out []domain.PatternEntry
	for _, e := range entries {
		if keep(e) {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

func cloneEntry(e domain.PatternEntry) domain.PatternEntry {
	e.Themes = append([]domain.Theme(nil), e.Themes...)
	e.Keywords = append([]string(nil), e.Keywords...)
	return e
}
