package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/reframe/internal/cli/formatter"
	"github.com/alexanderramin/reframe/internal/repository"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and reset closer history",
	}

	cmd.AddCommand(
		newSessionShowCmd(app),
		newSessionClearCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the recent closers of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Sessions.Show(cmd.Context(), args[0])
			if err != nil {
				return sessionError(args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSession(state))
			return nil
		},
	}
}

func newSessionClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear ID",
		Short: "Forget a session's closer history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(cmd.Context(), args[0]); err != nil {
				return sessionError(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", args[0])
			return nil
		},
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.Sessions.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(ids))
			return nil
		},
	}
}

func sessionError(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("no session %q", id)
	}
	return err
}
