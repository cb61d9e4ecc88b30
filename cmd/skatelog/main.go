package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/skatelog/internal/cli"
	"github.com/alexanderramin/skatelog/internal/config"
	"github.com/alexanderramin/skatelog/internal/db"
	"github.com/alexanderramin/skatelog/internal/persist"
	"github.com/alexanderramin/skatelog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var closers []func() error
	defer func() {
		for _, c := range closers {
			_ = c()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the skill picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Storage is opened lazily so --config is honored.
	app.Bootstrap = func(ctx context.Context, a *cli.App, configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger := cfg.Log.NewLogger(os.Stderr)
		slog.SetDefault(logger)

		backend, closeFn, err := openBackend(cfg.Storage)
		if err != nil {
			return err
		}
		if closeFn != nil {
			closers = append(closers, closeFn)
		}
		logger.Debug("storage_opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

		tracker := service.NewTracker(
			persist.NewGateway(backend, logger),
			service.WithObserver(service.NewLogUseCaseObserver(logger)),
		)
		tracker.Start(ctx)

		a.Tracker = tracker
		a.ExportDir = cfg.Export.Dir
		return nil
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

// openBackend returns the configured storage backend and, for SQLite, a
// function closing the database.
func openBackend(cfg config.StorageConfig) (persist.Backend, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return persist.NewFileBackend(cfg.Path), nil, nil
	default:
		database, err := db.OpenDB(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return persist.NewSQLiteBackend(database, db.NewSQLiteUnitOfWork(database)), database.Close, nil
	}
}
