package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/layout"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var name, session string
	var concurrency int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Reframe every non-empty line of FILE (\"-\" for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			sits, err := readSituations(in, name, session)
			if err != nil {
				return err
			}

			results, err := app.Reframe.ReframeBatch(cmd.Context(), sits, concurrency)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				for _, r := range results {
					data, err := layout.MarshalJSON(r, false)
					if err != nil {
						return fmt.Errorf("encoding result: %w", err)
					}
					var line bytes.Buffer
					if err := json.Compact(&line, data); err != nil {
						return fmt.Errorf("encoding result: %w", err)
					}
					fmt.Fprintln(out, line.String())
				}
				return nil
			}
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprint(out, layout.Render(r))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name used in every affirmation")
	cmd.Flags().StringVar(&session, "session", "", "session id shared by every line")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum reframes in flight")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON document per line")

	return cmd
}

// readSituations turns each non-blank line into a situation. Lines starting
// with "#" are comments.
func readSituations(r io.Reader, name, session string) ([]domain.Situation, error) {
	var sits []domain.Situation
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sits = append(sits, domain.Situation{Text: line, Name: name, SessionID: session})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return sits, nil
}
