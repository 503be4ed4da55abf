package cli

import (
	"github.com/alexanderramin/reframe/internal/config"
	"github.com/alexanderramin/reframe/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reframe  service.ReframeService
	Sessions service.SessionService
	Catalog  service.CatalogService

	// Config is bound to the root persistent flags before Setup runs.
	Config config.Config

	// Setup wires the services from Config after flags are parsed. It is
	// skipped when the services were injected directly, as in tests.
	Setup func(cfg config.Config) error

	// IsInteractive reports whether output goes to a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "reframe" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "reframe",
		Short:         "Turn a stuck thought into reframes, an action and an affirmation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil || app.Reframe != nil {
				return nil
			}
			if err := app.Config.Validate(); err != nil {
				return err
			}
			return app.Setup(app.Config)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.Config.DBPath, "db", app.Config.DBPath, "SQLite session database path")
	flags.StringVar(&app.Config.CatalogPath, "catalog", app.Config.CatalogPath, "catalog YAML file (default: built-in catalog)")
	flags.Var(newBackendFlag(&app.Config.Backend), "backend", "session store: sqlite, memory or redis")

	root.AddCommand(
		newRunCmd(app),
		newAskCmd(app),
		newBatchCmd(app),
		newCatalogCmd(app),
		newSessionCmd(app),
	)

	return root
}
