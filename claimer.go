package queuectl

import (
	"context"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// Claimer defines the claim/finalize contract that lets many concurrent
// workers share one Store without double-executing a job.
//
// ClaimNext must run inside a single write transaction (or statement)
// that selects the best-ranked ready row and atomically transitions it
// to Processing before any other caller can observe it. Correctness
// depends only on the store providing single-writer serializability for
// that operation; it does not depend on which concurrency model
// (processes, threads, goroutines) callers use.
type Claimer interface {

	// ClaimNext selects the highest-ranked ready job — state in
	// {pending, failed} and next_run_at <= now, ordered by
	// (priority DESC, next_run_at ASC, created_at ASC) — and
	// transitions it to Processing under workerID.
	//
	// ClaimNext returns (nil, nil) when no job is ready. Implementations
	// that experience transient write-lock contention must retry
	// internally or return an error the caller can back off on; either
	// way contention is never user-visible.
	ClaimNext(ctx context.Context, workerID string) (*job.Job, error)

	// MarkCompleted transitions id from Processing to the terminal
	// Completed state and clears WorkerID.
	MarkCompleted(ctx context.Context, id string) error

	// MarkFailedOrDead finalizes a failed execution attempt. attempts
	// is the post-increment attempt count. If attempts >= maxRetries
	// the job becomes Dead (lastError preserved, nextRunAt ignored);
	// otherwise it becomes Failed with NextRunAt = nextRunAt, eligible
	// for reclaiming once that time elapses. lastError is truncated to
	// 512 characters by the implementation if the caller has not
	// already done so.
	MarkFailedOrDead(ctx context.Context, id string, attempts, maxRetries uint32, lastError string, nextRunAt time.Time) error

	// RecoverProcessing rewrites every row left in Processing back to
	// Failed with NextRunAt = now and WorkerID cleared. It is called
	// once at worker startup to reclaim jobs orphaned by a prior crash.
	// RecoverProcessing is idempotent and returns the number of rows it
	// rewrote.
	RecoverProcessing(ctx context.Context) (int64, error)
}
