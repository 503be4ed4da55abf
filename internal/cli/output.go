package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/reframe/internal/cli/formatter"
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/layout"
)

type outputOptions struct {
	json    bool
	plain   bool
	explain bool
}

// writeResult prints r as JSON, the plain layout, or a styled card on a
// terminal.
func writeResult(w io.Writer, app *App, r *domain.ReframeResult, opts outputOptions) error {
	switch {
	case opts.json:
		data, err := layout.MarshalJSON(r, opts.explain)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case opts.plain || !app.interactive():
		if _, err := io.WriteString(w, layout.Render(r)); err != nil {
			return err
		}
		if opts.explain {
			_, err := io.WriteString(w, "\n"+plainMatches(r.Matches))
			return err
		}
		return nil

	default:
		out := formatter.FormatReframe(r)
		if opts.explain {
			out += "\n" + formatter.FormatMatches(r.Matches)
		}
		_, err := fmt.Fprintln(w, out)
		return err
	}
}

func plainMatches(matches []domain.EntryMatch) string {
	var b strings.Builder
	b.WriteString("MATCHES\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s (%s) score=%.1f\n", i+1, m.EntryID, m.Category, m.Score)
		for _, r := range m.Reasons {
			fmt.Fprintf(&b, "   %+.1f %s %s\n", r.WeightDelta, r.Code, r.Message)
		}
	}
	return b.String()
}
