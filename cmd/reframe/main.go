package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/reframe/internal/cli"
	"github.com/alexanderramin/reframe/internal/config"
	"github.com/alexanderramin/reframe/internal/db"
	"github.com/alexanderramin/reframe/internal/engine"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/alexanderramin/reframe/internal/matcher"
	"github.com/alexanderramin/reframe/internal/repository"
	"github.com/alexanderramin/reframe/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var startupErr *knowledge.StartupError
		if errors.As(err, &startupErr) {
			for _, e := range startupErr.Errs {
				fmt.Fprintf(os.Stderr, "  - %v\n", e)
			}
		}
		os.Exit(1)
	}
}

func run() error {
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	app := &cli.App{Config: config.LoadConfig()}

	app.Setup = func(cfg config.Config) error {
		kb, err := loadKnowledgeBase(cfg.CatalogPath)
		if err != nil {
			return err
		}

		matchOpts := matcher.DefaultOptions()
		matchOpts.MinConfidence = cfg.MinConfidence
		eng, err := engine.New(kb, engine.Config{
			Match:          matchOpts,
			CloserAttempts: cfg.CloserAttempts,
		})
		if err != nil {
			return err
		}

		sessions, closer, err := openSessionRepo(cfg)
		if err != nil {
			return err
		}
		if closer != nil {
			closers = append(closers, closer)
		}

		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if cfg.LogUseCases {
			observer = service.NewLogUseCaseObserver(os.Stderr)
		}

		app.Reframe = service.NewReframeService(eng, sessions, observer)
		app.Sessions = service.NewSessionService(sessions, observer)
		app.Catalog = service.NewCatalogService(kb)
		return nil
	}

	// Styled output only when stdout is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func loadKnowledgeBase(path string) (*knowledge.KnowledgeBase, error) {
	if path == "" {
		return knowledge.Default()
	}
	return knowledge.LoadFile(path)
}

func openSessionRepo(cfg config.Config) (repository.SessionRepo, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return repository.NewMemorySessionRepo(cfg.HistorySize), nil, nil

	case config.BackendRedis:
		client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return repository.NewRedisSessionRepo(client, cfg.Redis.Prefix, cfg.HistorySize), client, nil

	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteSessionRepo(database, cfg.HistorySize), database, nil
	}
}
