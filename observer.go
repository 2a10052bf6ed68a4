package queuectl

import (
	"context"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// StateCount pairs a job state with the number of rows currently in it.
type StateCount struct {
	State job.State
	Count int64
}

// Observer provides read-only access to job state. It does not
// participate in claim/retry/dead-letter transitions.
type Observer interface {

	// GetJob returns the job identified by id, or (nil, nil) if no such
	// row exists.
	GetJob(ctx context.Context, id string) (*job.Job, error)

	// ListJobs returns jobs ordered by created_at ascending. If state
	// is job.Unknown, no state filter is applied.
	ListJobs(ctx context.Context, state job.State) ([]*job.Job, error)

	// CountsByState returns the number of jobs in each state that has
	// at least one row.
	CountsByState(ctx context.Context) ([]StateCount, error)
}
