package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reframe/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339Nano.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// historyLimit falls back to the default history size for non-positive limits.
func historyLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultHistorySize
	}
	return limit
}

func validateSessionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	return nil
}

// newState builds a session state from stored lines, keeping only the most
// recent limit entries.
func newState(id string, limit int, lines []string) *domain.SessionState {
	state := domain.NewSessionState(id, limit)
	for _, line := range lines {
		state.Remember(line)
	}
	return state
}

// persistedLines returns the tail of the state's history that fits in limit.
func persistedLines(state *domain.SessionState, limit int) []string {
	lines := state.RecentClosers
	if over := len(lines) - limit; over > 0 {
		lines = lines[over:]
	}
	return lines
}
