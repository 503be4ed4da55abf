package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var name, session string
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "run [TEXT...]",
		Short: "Reframe a situation (reads stdin when TEXT is \"-\")",
		Example: `  reframe run "I keep procrastinating on this big project"
  reframe run --name Sam --session daily "I feel like a failure"
  echo "everyone is ahead of me" | reframe run -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}

			r, err := app.Reframe.Reframe(cmd.Context(), domain.Situation{
				Text:      text,
				Name:      name,
				SessionID: session,
			})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), app, r, opts)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name used in the affirmation")
	cmd.Flags().StringVar(&session, "session", "", "session id for closer variety across runs")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the plain text layout even on a terminal")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "include how catalog entries were scored")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}
