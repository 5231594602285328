package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/at-ishikawa/moviesearcher/internal/config"
	"github.com/at-ishikawa/moviesearcher/schemas"
)

const migrationsDir = "migrations"

// Migrate applies the embedded migrations that are not applied yet.
// A database that is already up to date is not an error.
//
// Migrations run on their own connection pool because the migrate driver
// closes the pool it was given.
func Migrate(cfg config.DatabaseConfig, logger *slog.Logger) error {
	return migrateFS(cfg, schemas.Migrations, logger)
}

func migrateFS(cfg config.DatabaseConfig, fsys fs.FS, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	src, err := newSource(fsys)
	if err != nil {
		return err
	}

	db, err := Open(cfg)
	if err != nil {
		_ = src.Close()
		return err
	}
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", src, cfg.Database, driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if sourceErr != nil {
			logger.Warn("Failed to close migration source", "error", sourceErr)
		}
		if dbErr != nil {
			logger.Warn("Failed to close migration database", "error", dbErr)
		}
	}()
	migrator.Log = &migrateLogger{logger: logger}

	current, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d and needs manual repair", current)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Schema is up to date", "version", current)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	next, _, _ := migrator.Version()
	logger.Info("Applied migrations", "from_version", current, "to_version", next)
	return nil
}

func newSource(fsys fs.FS) (source.Driver, error) {
	src, err := iofs.New(fsys, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}
	return src, nil
}

// migrateLogger sends golang-migrate's output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
