package queuectl

import "context"

// WorkerRecord is a snapshot of a worker's registration row. A worker is
// active iff StoppedAt is nil.
type WorkerRecord struct {
	ID        string
	PID       int
	StartedAt int64 // unix seconds
	StoppedAt *int64
}

// WorkerRegistry tracks which worker processes/goroutines are alive.
// Stopped rows are never garbage-collected by the engine; they remain
// available for diagnostic queries.
type WorkerRegistry interface {

	// RegisterWorker inserts a fresh, active worker row.
	RegisterWorker(ctx context.Context, id string, pid int) error

	// StopWorkerRecord marks id as stopped. Called on every exit path
	// of a Worker's run loop.
	StopWorkerRecord(ctx context.Context, id string) error

	// ListActiveWorkers returns every row with a nil StoppedAt.
	ListActiveWorkers(ctx context.Context) ([]WorkerRecord, error)
}
