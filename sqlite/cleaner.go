package sqlite

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Cleaner implements queuectl.Cleaner on top of bun. It deletes rows
// directly and never touches Pending or Processing jobs.
type Cleaner struct {
	db *bun.DB
}

// NewCleaner creates a bun-backed Cleaner. db must already be
// initialized with InitDB.
func NewCleaner(db *bun.DB) *Cleaner {
	return &Cleaner{db: db}
}

// Clean deletes jobs matching state (job.Completed or job.Dead; the
// zero value applies to both) whose UpdatedAt is at or before before.
// A nil before applies no age filter.
func (c *Cleaner) Clean(ctx context.Context, state job.State, before *time.Time) (int64, error) {
	if state != job.Unknown && state != job.Completed && state != job.Dead {
		return 0, queuectl.ErrBadState
	}
	query := c.db.NewDelete().Model((*jobModel)(nil))
	if state != job.Unknown {
		query = query.Where("state = ?", state)
	} else {
		query = query.Where("state IN (?, ?)", job.Completed, job.Dead)
	}
	if before != nil {
		query = query.Where("updated_at <= ?", before)
	}
	res, err := query.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return getAffected(res), nil
}
