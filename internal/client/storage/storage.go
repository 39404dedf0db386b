// Package storage opens the credential store selected in the configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/boltdb/bolt"
	"github.com/ivycraft/navigator/internal/client/config"
	"github.com/ivycraft/navigator/internal/client/migrations"
	"github.com/ivycraft/navigator/internal/client/repositories/credentials"
	"github.com/ivycraft/navigator/internal/common"
	"github.com/ivycraft/navigator/internal/filex"
	"github.com/ivycraft/navigator/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the repository for cfg.StoreDriver together with the handle
// that releases it.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (credentials.Repository, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Info(ctx, "using in-memory credential store")
		return credentials.NewMemoryRepository(), nopCloser{}, nil

	case config.DriverSQLite:
		path, err := filex.EnsureParentDir(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "using sqlite credential store", "path", path)
		return credentials.NewSQLiteRepository(db), db, nil

	case config.DriverBolt:
		path, err := filex.EnsureParentDir(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt %s: %w", path, err)
		}
		repo, err := credentials.NewBoltRepository(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info(ctx, "using bolt credential store", "path", path)
		return repo, db, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown store driver %q", common.ErrorValidation, cfg.StoreDriver)
	}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens the sqlite database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// sqlite serializes writers anyway; one connection also keeps
	// ":memory:" databases consistent across calls.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
