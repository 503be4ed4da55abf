package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/reframe/internal/cli/formatter"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate the pattern catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogValidateCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	theme := &themeFlag{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Catalog.Entries(theme.theme)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalogList(app.Catalog.Version(), entries))
			return nil
		},
	}

	cmd.Flags().Var(theme, "theme", "only entries tagged with this theme (control, gray_areas, small_part, temporary)")
	return cmd
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate a catalog file (default: the active catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			source := "active catalog"
			if len(args) == 1 {
				path = args[0]
				source = path
			}

			out := cmd.OutOrStdout()
			kb, err := app.Catalog.Validate(path)
			if err != nil {
				var startupErr *knowledge.StartupError
				if errors.As(err, &startupErr) {
					fmt.Fprint(out, formatter.FormatCatalogErrors(source, startupErr.Errs))
					return fmt.Errorf("catalog %s is invalid", source)
				}
				return err
			}

			fmt.Fprint(out, formatter.FormatCatalogValid(source, kb.Version(),
				len(kb.All()), len(kb.Fallback()), len(kb.Chemicals())))
			return nil
		},
	}
}
