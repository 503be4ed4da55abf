// Package engine runs the reframe pipeline: match, classify, generate,
// assemble. It does no I/O and is safe for concurrent use.
package engine

import (
	"errors"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/generator"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/alexanderramin/reframe/internal/matcher"
)

// Config tunes the engine. The zero value uses all defaults.
type Config struct {
	Match          matcher.Options
	CloserStyles   map[domain.Theme]domain.CloserStyle
	CloserAttempts int
}

// Engine turns a situation into a ReframeResult.
type Engine struct {
	kb        *knowledge.KnowledgeBase
	matcher   *matcher.Matcher
	chemicals *generator.ChemicalMapper
	closers   *generator.CloserGenerator
}

// New builds an engine over kb.
func New(kb *knowledge.KnowledgeBase, cfg Config) (*Engine, error) {
	if kb == nil {
		return nil, errors.New("engine requires a knowledge base")
	}
	return &Engine{
		kb:        kb,
		matcher:   matcher.New(kb, cfg.Match),
		chemicals: generator.NewChemicalMapper(kb.Chemicals()),
		closers:   generator.NewCloserGenerator(cfg.CloserStyles, cfg.CloserAttempts),
	}, nil
}

// KnowledgeBase returns the catalog the engine was built with.
func (e *Engine) KnowledgeBase() *knowledge.KnowledgeBase { return e.kb }

// Match exposes the ranking step on its own, for diagnostics.
func (e *Engine) Match(text string) matcher.MatchResult {
	return e.matcher.Match(text)
}

// Reframe runs the pipeline. state is read for closer variety and never
// modified; a nil state means no history.
func (e *Engine) Reframe(sit domain.Situation, state *domain.SessionState) (*domain.ReframeResult, error) {
	match := e.matcher.Match(sit.Text)
	chemical := e.chemicals.Map(match.Tokens)
	theme := generator.ClassifyTheme(match.Ranked)
	top := match.Top().Entry

	parts := Parts{
		Theme:       theme,
		Chemical:    chemical,
		Action:      generator.GenerateAction(theme, top.Category),
		Affirmation: generator.GenerateAffirmation(sit.Name, top),
		Closer:      e.closers.Generate(theme, top.Category, strings.Join(match.Tokens, " "), state),
		Fallback:    match.Fallback,
	}
	for _, s := range match.Ranked {
		parts.Pairs = append(parts.Pairs, domain.ReframePair{Before: s.Entry.Before, After: s.Entry.After})
		parts.Matches = append(parts.Matches, s.Match())
	}
	return Assemble(parts)
}
