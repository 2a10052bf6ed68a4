package queuectl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/internal"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// CleanConfig defines the scheduling and filtering parameters for a
// CleanWorker.
//
// State specifies which job state should be targeted for deletion.
// Only terminal states (job.Completed, job.Dead) or the zero value
// job.Unknown, meaning both, are valid.
//
// Interval defines how often the cleaner runs.
//
// If Before is true, deletion is restricted to jobs whose UpdatedAt
// timestamp is at or before now - Delta.
//
// Delta defines the age threshold applied when Before is enabled.
type CleanConfig struct {
	State    job.State
	Interval time.Duration
	Before   bool
	Delta    time.Duration
}

// CleanWorker periodically invokes a Cleaner according to the provided
// configuration. It is a retention-management concern, independent of
// the claim/execute loop, and never touches Pending or Processing rows.
//
// CleanWorker has a strict lifecycle:
//   - Start may only be called once.
//   - Stop must be called to terminate the worker, and waits for the
//     internal task to finish or until the timeout expires.
type CleanWorker struct {
	lcBase
	cleaner     Cleaner
	task        internal.SweepTask
	log         *slog.Logger
	targetState job.State
	interval    time.Duration
	before      bool
	delta       time.Duration
}

// NewCleanWorker creates a CleanWorker using cleaner and cfg. The
// worker is not started automatically; call Start.
func NewCleanWorker(cleaner Cleaner, cfg CleanConfig, log *slog.Logger) *CleanWorker {
	return &CleanWorker{
		cleaner:     cleaner,
		log:         log.With("component", "clean_worker"),
		targetState: cfg.State,
		interval:    cfg.Interval,
		before:      cfg.Before,
		delta:       cfg.Delta,
	}
}

func (cw *CleanWorker) beforeStamp() *time.Time {
	if !cw.before {
		return nil
	}
	ret := time.Now()
	if cw.delta != 0 {
		ret = ret.Add(-cw.delta)
	}
	return &ret
}

func (cw *CleanWorker) clean(ctx context.Context) {
	before := cw.beforeStamp()
	count, err := cw.cleaner.Clean(ctx, cw.targetState, before)
	if err != nil {
		cw.log.Error("sweep failed", "err", err)
		return
	}
	if count > 0 {
		cw.log.Info("swept terminal jobs", "count", count, "state", cw.targetState)
	}
}

// Start begins periodic execution of the cleaning task.
//
// Start returns ErrDoubleStarted if the worker has already been
// started. The provided context controls cancellation of the
// background task.
func (cw *CleanWorker) Start(ctx context.Context) error {
	if err := cw.tryStart(); err != nil {
		return err
	}
	cw.task.Start(ctx, cw.clean, cw.interval)
	return nil
}

// Stop terminates the background cleaning task.
//
// Stop waits until the task finishes or timeout expires. If shutdown
// does not complete in time, ErrStopTimeout is returned. Stop returns
// ErrDoubleStopped if the worker is not running.
func (cw *CleanWorker) Stop(timeout time.Duration) error {
	return cw.tryStop(timeout, cw.task.Stop)
}
