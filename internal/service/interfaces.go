package service

import (
	"context"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/knowledge"
)

// ReframeService runs the engine against per-session closer history.
type ReframeService interface {
	Reframe(ctx context.Context, sit domain.Situation) (*domain.ReframeResult, error)
	ReframeBatch(ctx context.Context, sits []domain.Situation, concurrency int) ([]*domain.ReframeResult, error)
}

// SessionService inspects and resets stored sessions.
type SessionService interface {
	Show(ctx context.Context, id string) (*domain.SessionState, error)
	Clear(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

// CatalogService exposes the loaded knowledge base.
type CatalogService interface {
	Version() string
	Entries(theme *domain.Theme) []domain.PatternEntry
	Chemicals() []domain.ChemicalRule
	Validate(path string) (*knowledge.KnowledgeBase, error)
}
