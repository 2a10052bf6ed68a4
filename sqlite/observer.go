package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Observer implements queuectl.Observer on top of bun. It is read-only
// and never participates in state transitions.
type Observer struct {
	db *bun.DB
}

// NewObserver creates a bun-backed Observer. db must already be
// initialized with InitDB.
func NewObserver(db *bun.DB) *Observer {
	return &Observer{db: db}
}

// GetJob retrieves a job by id. If no row exists, GetJob returns
// (nil, nil).
func (o *Observer) GetJob(ctx context.Context, id string) (*job.Job, error) {
	var m jobModel
	err := o.db.NewSelect().
		Model(&m).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m.toJob(), nil
}

// ListJobs returns every job in state. The zero value job.Unknown
// applies no state filter.
func (o *Observer) ListJobs(ctx context.Context, state job.State) ([]*job.Job, error) {
	var models []*jobModel
	query := o.db.NewSelect().Model(&models).
		Order("created_at ASC")
	if state != job.Unknown {
		query = query.Where("state = ?", state)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	ret := make([]*job.Job, len(models))
	for i, m := range models {
		ret[i] = m.toJob()
	}
	return ret, nil
}

// CountsByState returns the number of jobs in each state currently
// present in storage. States with zero jobs are omitted.
func (o *Observer) CountsByState(ctx context.Context) ([]queuectl.StateCount, error) {
	var rows []struct {
		State job.State `bun:"state"`
		Count int64     `bun:"count"`
	}
	err := o.db.NewSelect().
		Model((*jobModel)(nil)).
		ColumnExpr("state").
		ColumnExpr("count(*) AS count").
		Group("state").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	ret := make([]queuectl.StateCount, len(rows))
	for i, r := range rows {
		ret[i] = queuectl.StateCount{State: r.State, Count: r.Count}
	}
	return ret, nil
}
