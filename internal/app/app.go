// Package app wires configuration, logging, the database pool and the
// repositories for CLI commands.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Taichi-iskw/transqa/internal/config"
	"github.com/Taichi-iskw/transqa/internal/logging"
	"github.com/Taichi-iskw/transqa/internal/repository/prompt"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	"github.com/Taichi-iskw/transqa/internal/repository/score"
	"github.com/Taichi-iskw/transqa/internal/repository/translation"
	"github.com/Taichi-iskw/transqa/internal/storage"
)

// App holds the process-wide dependencies of one command invocation
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	Prompts      prompt.Repository
	Reviewers    reviewer.Repository
	Translations translation.Repository
	Scores       score.Repository
}

// Open loads configuration, connects to the database and builds the repositories.
// Logs are written to logOut. The returned cleanup closes the pool.
func Open(ctx context.Context, logOut io.Writer) (*App, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(logOut, cfg.Log)

	pool, err := config.NewDatabasePool(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &App{
		Config:       cfg,
		Logger:       logger,
		Pool:         pool,
		Prompts:      prompt.NewRepository(pool),
		Reviewers:    reviewer.NewRepository(pool),
		Translations: translation.NewRepository(pool),
		Scores:       score.NewRepository(pool),
	}

	cleanup := func() {
		config.CloseDatabasePool(pool)
	}
	return a, cleanup, nil
}

// ObjectStore connects to the configured storage backend
func (a *App) ObjectStore(ctx context.Context) (storage.ObjectStore, error) {
	store, err := storage.New(ctx, a.Config.Storage, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object store: %w", err)
	}
	return store, nil
}
