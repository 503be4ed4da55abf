package service

import (
	"context"
	"time"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *sessionService) Show(ctx context.Context, id string) (*domain.SessionState, error) {
	return s.sessions.Get(ctx, id)
}

func (s *sessionService) Clear(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "clear-session", time.Now(), map[string]any{"session_id": id}, &err)
	return s.sessions.Clear(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]string, error) {
	return s.sessions.List(ctx)
}
