package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// Store bundles every bun-backed collaborator into a single value that
// satisfies queuectl.Store.
type Store struct {
	*Enqueuer
	*Claimer
	*Observer
	*ConfigStore
	*WorkerRegistry
	*Cleaner

	DB *bun.DB
}

func newStore(db *bun.DB) *Store {
	return &Store{
		Enqueuer:       NewEnqueuer(db),
		Claimer:        NewClaimer(db),
		Observer:       NewObserver(db),
		ConfigStore:    NewConfigStore(db),
		WorkerRegistry: NewWorkerRegistry(db),
		Cleaner:        NewCleaner(db),
		DB:             db,
	}
}

// HomeDir resolves the directory queuectl stores its database in:
// $QUEUECTL_HOME if set, otherwise ~/.queuectl.
func HomeDir() (string, error) {
	if home := os.Getenv("QUEUECTL_HOME"); home != "" {
		return home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("sqlite: resolve home directory: %w", err)
	}
	return filepath.Join(dir, ".queuectl"), nil
}

// Open resolves the queuectl home directory, creates it if necessary,
// opens (creating if absent) queue.db inside it with WAL journaling and
// a busy_timeout, applies the schema, and returns a ready Store.
func Open(ctx context.Context) (*Store, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create home directory: %w", err)
	}
	return OpenFile(ctx, filepath.Join(dir, "queue.db"))
}

// OpenFile opens the SQLite database at path, applying the schema
// before returning.
func OpenFile(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	return OpenDSN(ctx, dsn)
}

// OpenDSN opens the SQLite database identified by a raw modernc.org/sqlite
// DSN (for example, an in-memory database for tests), applying the
// schema before returning.
func OpenDSN(ctx context.Context, dsn string) (*Store, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := InitDB(ctx, db); err != nil {
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return newStore(db), nil
}
