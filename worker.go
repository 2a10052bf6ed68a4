package queuectl

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/executor"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/internal"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// workerStore is everything a Worker needs from a Store.
type workerStore interface {
	Claimer
	ConfigStore
	WorkerRegistry
}

// WorkerConfig configures a single Worker's run loop. PollInterval
// defaults to one second when zero.
type WorkerConfig struct {
	PollInterval time.Duration
}

// Worker is a single sequential consumer: claim -> execute -> finalize,
// polling when idle, honoring the shared shutdown config flag. Exactly
// one job is in flight per worker at a time; concurrency comes from
// running multiple Worker instances (see Supervisor).
//
// Worker has a strict lifecycle:
//   - Start may only be called once.
//   - Stop signals the loop to exit and waits for it to finish, up to
//     a timeout.
type Worker struct {
	lcBase
	id       string
	store    workerStore
	exec     executor.Executor
	log      *slog.Logger
	interval time.Duration
	cancel   context.CancelFunc
	done     internal.DoneChan
}

// NewWorker creates a Worker identified by id, backed by store and exec.
// The worker is not started automatically; call Start.
func NewWorker(id string, store workerStore, exec executor.Executor, cfg WorkerConfig, log *slog.Logger) *Worker {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Worker{
		id:       id,
		store:    store,
		exec:     exec,
		log:      log.With("worker_id", id),
		interval: interval,
	}
}

// ID returns the identity the worker was created with. Workers created
// by a Supervisor have ids of the form "w-<8-hex>".
func (w *Worker) ID() string {
	return w.id
}

// step runs one iteration of the loop: check shutdown, claim, execute,
// finalize. It returns false when the caller should stop.
func (w *Worker) step(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	shutdown, err := w.store.ConfigGet(ctx, ConfigShutdown, DefaultShutdown)
	if err != nil {
		w.log.Error("config read failed", "err", err)
		return w.idle(ctx)
	}
	if shutdown == "true" {
		return false
	}

	j, err := w.store.ClaimNext(ctx, w.id)
	if err != nil {
		w.log.Error("claim failed", "err", err)
		return w.idle(ctx)
	}
	if j == nil {
		return w.idle(ctx)
	}

	w.log.Debug("claimed job", "job_id", j.ID, "attempts", j.Attempts)
	// Once claimed, a job always runs to completion and is finalized,
	// even if the loop's own context is canceled mid-execution by a
	// supervisor shutdown: workers are never killed mid-job, only
	// signaled to stop claiming new ones.
	w.execute(context.Background(), j)
	return true
}

// idle sleeps one poll interval, returning false if ctx is canceled
// while waiting. Used both when no job is ready and to back off after a
// transient store error.
func (w *Worker) idle(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(w.interval):
		return true
	}
}

func (w *Worker) execute(ctx context.Context, j *job.Job) {
	rc, shortErr, err := w.exec.Run(ctx, j.Command, 0)
	if err != nil {
		// The Executor contract forbids surfacing implementation
		// failures as panics to the worker; treat a non-nil err the
		// same as a non-zero exit code.
		if shortErr == "" {
			shortErr = err.Error()
		}
		if rc == 0 {
			rc = 1
		}
	}

	if rc == 0 {
		if err := w.store.MarkCompleted(ctx, j.ID); err != nil {
			w.log.Error("cannot mark completed", "job_id", j.ID, "err", err)
		}
		return
	}

	attempts := j.Attempts + 1
	base, err := w.store.ConfigGet(ctx, ConfigBackoffBase, DefaultBackoffStr)
	if err != nil {
		w.log.Error("config read failed", "err", err)
		base = DefaultBackoffStr
	}
	delay := BackoffDelay(ParseBackoffBase(base), attempts)
	nextRun := time.Now().Add(delay)

	if err := w.store.MarkFailedOrDead(ctx, j.ID, attempts, j.MaxRetries, truncate(shortErr, 512), nextRun); err != nil {
		w.log.Error("cannot finalize failed job", "job_id", j.ID, "err", err)
		return
	}
	if IsDead(attempts, j.MaxRetries) {
		w.log.Warn("job moved to dead letter", "job_id", j.ID, "attempts", attempts)
	} else {
		w.log.Debug("job scheduled for retry", "job_id", j.ID, "attempts", attempts, "next_run_at", nextRun)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (w *Worker) loop(ctx context.Context) {
	defer close(w.done)
	for w.step(ctx) {
	}
	// Use a detached context: ctx is already canceled by the time the
	// loop exits, but the stop record must still be written so
	// list_active_workers reflects reality after a graceful shutdown.
	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.store.StopWorkerRecord(stopCtx, w.id); err != nil {
		w.log.Error("cannot record worker stop", "err", err)
	}
}

// Start registers the worker, recovers any jobs orphaned by a prior
// crash, then launches the consume loop in the background. Start
// returns ErrDoubleStarted if already running.
//
// The loop runs until ctx is canceled, Stop is called, or the shared
// "shutdown" config flag is set.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.tryStart(); err != nil {
		return err
	}

	if err := w.store.RegisterWorker(ctx, w.id, os.Getpid()); err != nil {
		w.state.Store(stopped)
		return err
	}
	if n, err := w.store.RecoverProcessing(ctx); err != nil {
		w.log.Error("orphan recovery failed", "err", err)
	} else if n > 0 {
		w.log.Info("recovered orphaned jobs", "count", n)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(internal.DoneChan)
	go w.loop(loopCtx)
	return nil
}

// Stop signals the worker to exit its loop and waits up to timeout for
// it to do so. Stop returns ErrDoubleStopped if not running, or
// ErrStopTimeout if the loop does not exit in time.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.tryStop(timeout, func() internal.DoneChan {
		w.cancel()
		return w.done
	})
}
