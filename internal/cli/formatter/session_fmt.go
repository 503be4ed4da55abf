package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

// FormatSession renders a session's recent closers, oldest first.
func FormatSession(s *domain.SessionState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("LIMIT"), Bold(fmt.Sprint(s.Limit))))
	b.WriteString("\n")
	if len(s.RecentClosers) == 0 {
		b.WriteString(Dim("No closers recorded yet."))
	}
	for i, line := range s.RecentClosers {
		b.WriteString(fmt.Sprintf("%s %s", Dim(fmt.Sprintf("%d.", i+1)), line))
		if i < len(s.RecentClosers)-1 {
			b.WriteString("\n")
		}
	}
	return RenderBox("Session "+s.SessionID, b.String())
}

// FormatSessionList renders stored session ids, most recent first.
func FormatSessionList(ids []string) string {
	if len(ids) == 0 {
		return Dim("No sessions.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Sessions"))
	b.WriteString("\n")
	for _, id := range ids {
		b.WriteString("  " + id + "\n")
	}
	return b.String()
}
