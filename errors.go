package queuectl

import "errors"

var (
	// ErrDoubleStarted is returned when Start is called on a Worker or
	// CleanWorker that has already been started.
	ErrDoubleStarted = errors.New("queuectl: double start")

	// ErrDoubleStopped is returned when Stop is called on a component
	// that is not currently running.
	ErrDoubleStopped = errors.New("queuectl: double stop")

	// ErrStopTimeout is returned when Stop does not complete within the
	// supplied timeout. The component may still be terminating in the
	// background.
	ErrStopTimeout = errors.New("queuectl: stop timeout")

	// ErrJobNotFound is returned by admin operations that require an
	// existing job (for example, a DLQ retry on an unknown id).
	ErrJobNotFound = errors.New("queuectl: job not found")

	// ErrNotDead is returned by the "dlq retry" command when the
	// referenced job is not currently in the dead state. This is a
	// client error: the job is left untouched.
	ErrNotDead = errors.New("queuectl: job is not dead")

	// ErrBadState is returned by Cleaner.Clean when given a state that
	// is not terminal (and not job.Unknown). An unrecognized state name
	// given to the CLI's list or gc filters is reported as ErrUsage.
	ErrBadState = errors.New("queuectl: bad job state")

	// ErrUsage indicates malformed CLI input. cmd/queuectl maps it to
	// exit code 2.
	ErrUsage = errors.New("queuectl: usage error")

	// ErrNotProcessing is returned by Claimer.MarkCompleted and
	// Claimer.MarkFailedOrDead when the referenced job is no longer in
	// Processing at finalization time. Under the single-claim protocol
	// this should never happen for a job a worker itself claimed; it
	// signals a logic error (double finalization, or finalizing a job
	// another process already recovered) rather than ordinary
	// contention.
	ErrNotProcessing = errors.New("queuectl: job is not processing")
)
