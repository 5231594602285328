package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/moviesearcher/internal/config"
	"github.com/at-ishikawa/moviesearcher/internal/database"
	"github.com/at-ishikawa/moviesearcher/internal/lookup"
	"github.com/at-ishikawa/moviesearcher/internal/movie"
	"github.com/at-ishikawa/moviesearcher/internal/omdb"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func storeOptions(cfg config.StoreConfig) movie.Options {
	return movie.Options{
		QueryTimeout:       cfg.QueryTimeout(),
		MaxResults:         cfg.MaxResults,
		ActorCaseSensitive: cfg.ActorCaseSensitive,
	}
}

func omdbConfig(cfg config.OMDbConfig) omdb.Config {
	return omdb.Config{
		BaseURL:       cfg.BaseURL,
		APIKey:        cfg.APIKey,
		Timeout:       cfg.Timeout(),
		RetryAttempts: uint(cfg.RetryAttempts),
		RetryDelay:    cfg.RetryDelay(),
	}
}

// openStore connects to MySQL, creating the movies table when it is missing and,
// when configured, emptying it first. The caller closes the returned DB.
func openStore(ctx context.Context, cfg *config.Config) (*sqlx.DB, *movie.DBRepository, error) {
	if cfg.Store.AutoMigrate {
		if err := database.Migrate(cfg.Database, slog.Default()); err != nil {
			return nil, nil, fmt.Errorf("migrate movies table: %w", err)
		}
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	store := movie.NewDBRepository(db, storeOptions(cfg.Store))

	if cfg.Store.ClearOnStart {
		n, err := store.ClearAll(ctx)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("clear movies on start: %w", err)
		}
		slog.Info("Cleared movies on start", "rows", n)
	}
	return db, store, nil
}

// lookupService is everything a front-end needs for lookups. close releases
// the OMDb client and the database in that order.
type lookupService struct {
	resolver *lookup.Resolver
	close    func() error
}

// newLookupService wires the store, the OMDb client and the resolver.
// Store-only lookups may run without an OMDb API key.
func newLookupService(ctx context.Context, cfg *config.Config, needsProvider bool) (*lookupService, error) {
	if needsProvider {
		if err := cfg.OMDb.RequireAPIKey(); err != nil {
			return nil, err
		}
	}

	db, store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	provider := omdb.NewClient(omdbConfig(cfg.OMDb))

	return &lookupService{
		resolver: lookup.NewResolver(store, provider, lookup.WithObserver(lookup.NewLogObserver(slog.Default()))),
		close: func() error {
			_ = provider.Close()
			return db.Close()
		},
	}, nil
}
