package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/reframe/internal/domain"
)

// MemorySessionRepo keeps session history in process memory. Each session has
// its own lock, so updates to different sessions never wait on each other.
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	limit    int
	clock    atomic.Uint64
}

// memorySession is visible to Get and List only once an Update has committed
// to it. A removed session is no longer in the map; Updates that were waiting
// on its lock retry against the current entry.
type memorySession struct {
	mu        sync.Mutex
	lines     []string
	seq       uint64
	committed bool
	removed   bool
}

// NewMemorySessionRepo creates an empty in-memory store.
func NewMemorySessionRepo(limit int) *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[string]*memorySession),
		limit:    historyLimit(limit),
	}
}

func (r *MemorySessionRepo) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return newState(id, r.limit, s.lines), nil
}

func (r *MemorySessionRepo) Update(ctx context.Context, id string, fn func(state *domain.SessionState) error) error {
	if err := validateSessionID(id); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := r.session(id)
		retry, abandoned, err := r.apply(s, id, fn)
		if abandoned {
			r.forget(id, s)
		}
		if !retry {
			return err
		}
	}
}

// session returns the map entry for id, creating an uncommitted one if needed.
func (r *MemorySessionRepo) session(id string) *memorySession {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = &memorySession{}
		r.sessions[id] = s
	}
	return s
}

// apply runs fn under the session lock. retry is set when the session was
// removed while waiting; abandoned is set when fn failed on a session that
// was never committed, which must then leave the map.
func (r *MemorySessionRepo) apply(s *memorySession, id string, fn func(state *domain.SessionState) error) (retry, abandoned bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return true, false, nil
	}

	state := newState(id, r.limit, s.lines)
	if err := fn(state); err != nil {
		if !s.committed {
			s.removed = true
			return false, true, err
		}
		return false, false, err
	}
	s.lines = append([]string(nil), persistedLines(state, r.limit)...)
	s.seq = r.clock.Add(1)
	s.committed = true
	return false, false, nil
}

func (r *MemorySessionRepo) forget(id string, s *memorySession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[id] == s {
		delete(r.sessions, id)
	}
}

// Clear waits for any in-flight Update on the session before removing it.
func (r *MemorySessionRepo) Clear(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	s.removed = true
	delete(r.sessions, id)
	return nil
}

func (s *memorySession) live() bool { return s.committed && !s.removed }

// List returns session ids, most recently updated first.
func (r *MemorySessionRepo) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type entry struct {
		id  string
		seq uint64
	}
	r.mu.Lock()
	entries := make([]entry, 0, len(r.sessions))
	for id, s := range r.sessions {
		s.mu.Lock()
		if s.live() {
			entries = append(entries, entry{id: id, seq: s.seq})
		}
		s.mu.Unlock()
	}
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].seq != entries[j].seq {
			return entries[i].seq > entries[j].seq
		}
		return entries[i].id < entries[j].id
	})
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids, nil
}
