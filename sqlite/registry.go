package sqlite

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
)

// WorkerRegistry implements queuectl.WorkerRegistry on top of bun.
type WorkerRegistry struct {
	db *bun.DB
}

// NewWorkerRegistry creates a bun-backed WorkerRegistry. db must
// already be initialized with InitDB.
func NewWorkerRegistry(db *bun.DB) *WorkerRegistry {
	return &WorkerRegistry{db: db}
}

// RegisterWorker inserts a fresh, active worker row. Re-registering an
// id that already exists replaces the prior row (a worker id is only
// ever reused after a process restart picks a new one).
func (r *WorkerRegistry) RegisterWorker(ctx context.Context, id string, pid int) error {
	_, err := r.db.NewInsert().
		Model(&workerModel{
			ID:        id,
			PID:       pid,
			StartedAt: time.Now().Unix(),
			StoppedAt: nil,
		}).
		On("CONFLICT (id) DO UPDATE").
		Set("pid = EXCLUDED.pid").
		Set("started_at = EXCLUDED.started_at").
		Set("stopped_at = NULL").
		Exec(ctx)
	return err
}

// StopWorkerRecord marks id as stopped.
func (r *WorkerRegistry) StopWorkerRecord(ctx context.Context, id string) error {
	now := time.Now().Unix()
	_, err := r.db.NewUpdate().
		Model((*workerModel)(nil)).
		Set("stopped_at = ?", now).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// ListActiveWorkers returns every row with a nil StoppedAt.
func (r *WorkerRegistry) ListActiveWorkers(ctx context.Context) ([]queuectl.WorkerRecord, error) {
	var models []*workerModel
	err := r.db.NewSelect().
		Model(&models).
		Where("stopped_at IS NULL").
		Order("started_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]queuectl.WorkerRecord, len(models))
	for i, m := range models {
		ret[i] = queuectl.WorkerRecord{
			ID:        m.ID,
			PID:       m.PID,
			StartedAt: m.StartedAt,
			StoppedAt: m.StoppedAt,
		}
	}
	return ret, nil
}
