package job

import "time"

// Job represents a single row managed by the queue storage.
//
// ID is the caller-supplied identity; re-enqueuing an existing ID fully
// replaces the row.
//
// Command is the shell command string handed to the Executor.
//
// State, Attempts, MaxRetries, Priority and NextRunAt together drive the
// claim/retry/dead-letter state machine.
//
// LastError holds the most recent executor error, truncated to 512
// characters. WorkerID identifies the worker currently holding the job;
// it is nil in every state except Processing.
//
// Job instances are snapshots of storage state. Mutating fields directly
// does not change the underlying row; transitions must go through a
// Store.
type Job struct {
	ID      string
	Command string

	State      State
	Attempts   uint32
	MaxRetries uint32
	Priority   int32
	NextRunAt  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	LastError *string
	WorkerID  *string
}
