package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/reframe/internal/repository"
	"github.com/alexanderramin/reframe/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func newTestReframeService(t *testing.T, repo repository.SessionRepo, obs ...UseCaseObserver) ReframeService {
	t.Helper()
	return NewReframeService(testutil.NewDefaultEngine(t), repo, obs...)
}
