package sqlite

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Enqueuer implements queuectl.Enqueuer on top of bun.
type Enqueuer struct {
	db *bun.DB
}

// NewEnqueuer creates a bun-backed Enqueuer. db must already be
// initialized with InitDB.
func NewEnqueuer(db *bun.DB) *Enqueuer {
	return &Enqueuer{db: db}
}

// UpsertJob inserts a row for j.ID, or fully replaces an existing one
// (used by plain enqueue and by DLQ retry alike). A zero State is
// stored as Pending.
func (e *Enqueuer) UpsertJob(ctx context.Context, j *job.Job) error {
	model := fromJob(j)
	_, err := e.db.NewInsert().
		Model(model).
		On("CONFLICT (id) DO UPDATE").
		Set("command = EXCLUDED.command").
		Set("state = EXCLUDED.state").
		Set("attempts = EXCLUDED.attempts").
		Set("max_retries = EXCLUDED.max_retries").
		Set("priority = EXCLUDED.priority").
		Set("next_run_at = EXCLUDED.next_run_at").
		Set("created_at = EXCLUDED.created_at").
		Set("updated_at = EXCLUDED.updated_at").
		Set("last_error = EXCLUDED.last_error").
		Set("worker_id = EXCLUDED.worker_id").
		Exec(ctx)
	return err
}
