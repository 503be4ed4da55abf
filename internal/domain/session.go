package domain

// DefaultHistorySize is the number of recent closer lines kept per session.
const DefaultHistorySize = 5

// SessionState is the per-conversation closer history. It is owned by the
// session layer; the engine only reads it.
type SessionState struct {
	SessionID     string
	RecentClosers []string // oldest first
	Limit         int
}

// NewSessionState returns an empty state bounded to limit entries.
// A non-positive limit uses DefaultHistorySize.
func NewSessionState(sessionID string, limit int) *SessionState {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &SessionState{SessionID: sessionID, Limit: limit}
}

// Contains reports whether line is in the recent history. A nil state
// contains nothing.
func (s *SessionState) Contains(line string) bool {
	if s == nil {
		return false
	}
	for _, l := range s.RecentClosers {
		if l == line {
			return true
		}
	}
	return false
}

// Remember appends line and prunes the history to the last Limit entries.
func (s *SessionState) Remember(line string) {
	if line == "" {
		return
	}
	s.RecentClosers = append(s.RecentClosers, line)
	s.prune()
}

func (s *SessionState) prune() {
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	if over := len(s.RecentClosers) - limit; over > 0 {
		kept := make([]string, limit)
		copy(kept, s.RecentClosers[over:])
		s.RecentClosers = kept
	}
}

// Clone returns an independent copy so callers can hand a snapshot to the engine.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	c := *s
	c.RecentClosers = append([]string(nil), s.RecentClosers...)
	return &c
}
