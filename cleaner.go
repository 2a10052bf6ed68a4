package queuectl

import (
	"context"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Cleaner permanently removes jobs in a terminal state. It is a
// retention-management concern, not part of normal job processing, and
// must never touch Pending/Processing rows.
type Cleaner interface {

	// Clean deletes jobs matching state (job.Completed or job.Dead; the
	// zero value job.Unknown means both) whose UpdatedAt is at or
	// before before. A nil before applies no age filter. Clean returns
	// the number of deleted rows.
	//
	// Clean returns ErrBadState if state refers to a non-terminal state
	// (Pending, Processing) or an unrecognized value.
	Clean(ctx context.Context, state job.State, before *time.Time) (int64, error)
}
