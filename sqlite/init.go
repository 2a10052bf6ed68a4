package sqlite

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
)

func createJobsTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*jobModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createClaimIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_claim").
		Column("state", "next_run_at", "priority").
		IfNotExists().
		Exec(ctx)
	return err
}

func createUpdatedIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_state_updated").
		Column("state", "updated_at").
		IfNotExists().
		Exec(ctx)
	return err
}

func createConfigTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*configModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createWorkersTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*workerModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createWorkersActiveIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*workerModel)(nil)).
		Index("idx_workers_stopped").
		Column("stopped_at").
		IfNotExists().
		Exec(ctx)
	return err
}

var defaultConfig = map[string]string{
	queuectl.ConfigMaxRetries:  queuectl.DefaultMaxRetries,
	queuectl.ConfigBackoffBase: queuectl.DefaultBackoffStr,
	queuectl.ConfigShutdown:    queuectl.DefaultShutdown,
	queuectl.ConfigGCAfter:     queuectl.DefaultGCAfter,
	queuectl.ConfigGCInterval:  queuectl.DefaultGCInterval,
}

func seedConfig(ctx context.Context, db bun.IDB) error {
	for key, value := range defaultConfig {
		_, err := db.NewInsert().
			Model(&configModel{Key: key, Value: value}).
			On("CONFLICT (key) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func initDB(ctx context.Context, db *bun.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	steps := []func(context.Context, bun.IDB) error{
		createJobsTable,
		createClaimIndex,
		createUpdatedIndex,
		createConfigTable,
		createWorkersTable,
		createWorkersActiveIndex,
		seedConfig,
	}
	for _, step := range steps {
		if err := step(ctx, tx); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

// InitDB creates the jobs, config and workers tables and their indexes
// inside a single transaction, and seeds the config table with the
// engine's default values for any key not already present. InitDB is
// idempotent and safe to call on every process startup.
func InitDB(ctx context.Context, db *bun.DB) error {
	return initDB(ctx, db)
}

// MustInitDB behaves like InitDB but panics on failure, for use in
// application bootstrap code where a broken schema is unrecoverable.
func MustInitDB(ctx context.Context, db *bun.DB) {
	if err := initDB(ctx, db); err != nil {
		panic(err)
	}
}
