package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/engine"
	"github.com/alexanderramin/reframe/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds ReframeBatch when the caller passes zero.
const DefaultBatchConcurrency = 4

type reframeService struct {
	engine   *engine.Engine
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewReframeService(
	eng *engine.Engine,
	sessions repository.SessionRepo,
	observers ...UseCaseObserver,
) ReframeService {
	return &reframeService{
		engine:   eng,
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Reframe produces a result for sit. With a session id, the closer is picked
// against that session's history and recorded in the same store update, so
// concurrent requests on one session never both see the same history.
// Without a session id nothing is read or written.
func (s *reframeService) Reframe(ctx context.Context, sit domain.Situation) (result *domain.ReframeResult, err error) {
	fields := map[string]any{"has_session": sit.SessionID != ""}
	defer observe(ctx, s.observer, "reframe", time.Now(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	if sit.SessionID == "" || s.sessions == nil {
		result, err = s.engine.Reframe(sit, nil)
	} else {
		fields["session_id"] = sit.SessionID
		err = s.sessions.Update(ctx, sit.SessionID, func(state *domain.SessionState) error {
			r, genErr := s.engine.Reframe(sit, state.Clone())
			if genErr != nil {
				return genErr
			}
			state.Remember(r.Closer)
			result = r
			return nil
		})
		if err != nil {
			err = fmt.Errorf("reframing in session %q: %w", sit.SessionID, err)
		}
	}
	if err != nil {
		return nil, err
	}

	fields["theme"] = string(result.Theme)
	fields["pairs"] = len(result.Pairs)
	fields["fallback"] = result.Fallback
	if result.Chemical != nil {
		fields["mechanism"] = string(result.Chemical.Mechanism)
	}
	return result, nil
}

// ReframeBatch reframes each situation with at most concurrency in flight.
// Results keep input order. The first failure cancels the remaining work.
// Items that share a session are serialized by the store in unspecified order.
func (s *reframeService) ReframeBatch(ctx context.Context, sits []domain.Situation, concurrency int) (results []*domain.ReframeResult, err error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	fields := map[string]any{"items": len(sits), "concurrency": concurrency}
	defer observe(ctx, s.observer, "reframe-batch", time.Now(), fields, &err)

	results = make([]*domain.ReframeResult, len(sits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, sit := range sits {
		g.Go(func() error {
			r, err := s.Reframe(gctx, sit)
			if err != nil {
				return fmt.Errorf("item %d: %w", i+1, err)
			}
			results[i] = r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
