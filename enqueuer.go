package queuectl

import (
	"context"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Enqueuer defines the write-side entry point of the queue.
type Enqueuer interface {

	// UpsertJob inserts or fully replaces the row identified by j.ID.
	//
	// UpsertJob overwrites every lifecycle field with the values
	// present in j; it is used both by plain enqueue (fresh Pending
	// job, Attempts 0) and by DLQ retry (reset to Pending, Attempts 0,
	// LastError nil).
	//
	// UpsertJob must not mutate j after returning.
	UpsertJob(ctx context.Context, j *job.Job) error
}
