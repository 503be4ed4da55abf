package service

import (
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/knowledge"
)

type catalogService struct {
	kb *knowledge.KnowledgeBase
}

func NewCatalogService(kb *knowledge.KnowledgeBase) CatalogService {
	return &catalogService{kb: kb}
}

func (s *catalogService) Version() string { return s.kb.Version() }

// Entries lists catalog entries, optionally limited to those tagged with theme.
func (s *catalogService) Entries(theme *domain.Theme) []domain.PatternEntry {
	if theme == nil {
		return s.kb.All()
	}
	return s.kb.ByTheme(*theme)
}

func (s *catalogService) Chemicals() []domain.ChemicalRule { return s.kb.Chemicals() }

// Validate loads a catalog file without replacing the active one.
func (s *catalogService) Validate(path string) (*knowledge.KnowledgeBase, error) {
	if path == "" {
		return s.kb, nil
	}
	return knowledge.LoadFile(path)
}
