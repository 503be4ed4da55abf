package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/reframe/internal/domain"
)

// ErrNotFound is returned when a requested session does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo stores the recent closer history of each session.
//
// Update is the only write path. It loads the current state (an empty state
// for an unknown session), passes it to fn, and persists whatever fn leaves
// in the state. Two Update calls for the same session never interleave, so a
// generate-then-record sequence run inside fn is atomic. Backends that use
// optimistic concurrency may call fn more than once; fn must not have side
// effects outside the state it is given.
type SessionRepo interface {
	Get(ctx context.Context, id string) (*domain.SessionState, error)
	Update(ctx context.Context, id string, fn func(state *domain.SessionState) error) error
	Clear(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

var (
	_ SessionRepo = (*SQLiteSessionRepo)(nil)
	_ SessionRepo = (*MemorySessionRepo)(nil)
	_ SessionRepo = (*RedisSessionRepo)(nil)
)
