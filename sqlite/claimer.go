package sqlite

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Claimer implements queuectl.Claimer on top of bun.
//
// ClaimNext relies on a single UPDATE ... WHERE id IN (subquery)
// RETURNING statement so selection and the Processing transition happen
// as one atomic write, with no gap where two workers could observe and
// claim the same row.
type Claimer struct {
	db *bun.DB
}

// NewClaimer creates a bun-backed Claimer. db must already be
// initialized with InitDB.
func NewClaimer(db *bun.DB) *Claimer {
	return &Claimer{db: db}
}

// ClaimNext selects the highest-ranked ready job and atomically
// transitions it to Processing under workerID.
func (c *Claimer) ClaimNext(ctx context.Context, workerID string) (*job.Job, error) {
	now := time.Now()
	subQuery := c.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("id").
		Where("next_run_at <= ?", now).
		WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.
				Where("state = ?", job.Pending).
				WhereOr("state = ?", job.Failed)
		}).
		Order("priority DESC", "next_run_at ASC", "created_at ASC").
		Limit(1)

	var jobs []*job.Job
	err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Processing).
		Set("worker_id = ?", workerID).
		Set("updated_at = ?", now).
		Where("id IN (?)", subQuery).
		Returning("*").
		Scan(ctx, &jobs)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	return jobs[0], nil
}

// MarkCompleted transitions id from Processing to Completed. It returns
// ErrNotProcessing if id is not currently Processing.
func (c *Claimer) MarkCompleted(ctx context.Context, id string) error {
	now := time.Now()
	res, err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Completed).
		Set("worker_id = NULL").
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("state = ?", job.Processing).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return queuectl.ErrNotProcessing
	}
	return nil
}

// MarkFailedOrDead finalizes a failed execution attempt, moving id to
// Dead if attempts has exhausted maxRetries or back to Failed
// (eligible again at nextRunAt) otherwise. It returns ErrNotProcessing
// if id is not currently Processing.
func (c *Claimer) MarkFailedOrDead(ctx context.Context, id string, attempts, maxRetries uint32, lastError string, nextRunAt time.Time) error {
	now := time.Now()
	dead := attempts >= maxRetries

	q := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("attempts = ?", attempts).
		Set("worker_id = NULL").
		Set("updated_at = ?", now).
		Set("last_error = ?", truncateLastError(lastError)).
		Where("id = ?", id).
		Where("state = ?", job.Processing)

	if dead {
		q = q.Set("state = ?", job.Dead)
	} else {
		q = q.Set("state = ?", job.Failed).Set("next_run_at = ?", nextRunAt)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return queuectl.ErrNotProcessing
	}
	return nil
}

// RecoverProcessing rewrites every row stuck in Processing back to
// Failed, eligible immediately, clearing WorkerID. Called once at
// worker startup to reclaim jobs orphaned by a prior crash.
func (c *Claimer) RecoverProcessing(ctx context.Context) (int64, error) {
	now := time.Now()
	res, err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Failed).
		Set("worker_id = NULL").
		Set("next_run_at = ?", now).
		Set("updated_at = ?", now).
		Where("state = ?", job.Processing).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return getAffected(res), nil
}
