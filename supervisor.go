package queuectl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/executor"
)

// SupervisorConfig controls how many workers a Supervisor runs and how
// it configures each one, plus the retention sweep running alongside
// them.
type SupervisorConfig struct {
	Workers      int
	PollInterval time.Duration
	Clean        CleanConfig
	StopTimeout  time.Duration
}

// Supervisor starts a fixed pool of Worker goroutines plus one
// CleanWorker, all sharing a single Store, and joins them with
// golang.org/x/sync/errgroup. Shutdown is always cooperative: a
// canceled context passed to Run sets the shared "shutdown"
// config flag and lets each Worker finish its current job before
// exiting — workers are never killed mid-job.
type Supervisor struct {
	store   Store
	exec    executor.Executor
	cfg     SupervisorConfig
	log     *slog.Logger
	workers []*Worker
	cleaner *CleanWorker
}

// NewSupervisor creates a Supervisor. It is not started automatically;
// call Run.
func NewSupervisor(store Store, exec executor.Executor, cfg SupervisorConfig, log *slog.Logger) *Supervisor {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = 30 * time.Second
	}
	if cfg.Clean.Interval <= 0 {
		cfg.Clean.Interval = time.Hour
	}
	workers := make([]*Worker, cfg.Workers)
	for i := range workers {
		workers[i] = NewWorker(
			newWorkerID(),
			store,
			exec,
			WorkerConfig{PollInterval: cfg.PollInterval},
			log,
		)
	}
	return &Supervisor{
		store:   store,
		exec:    exec,
		cfg:     cfg,
		log:     log,
		workers: workers,
		cleaner: NewCleanWorker(store, cfg.Clean, log),
	}
}

// Run starts every worker and the retention sweep, then blocks until
// ctx is canceled or every worker has exited on its own (the shared
// shutdown flag was set, possibly by another process). It then requests
// a cooperative shutdown (see WorkerStop) and waits for every worker
// and the cleaner to stop, up to cfg.StopTimeout. Run returns the first
// error encountered starting or stopping any component.
func (s *Supervisor) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	started := make([]*Worker, 0, len(s.workers))
	for _, w := range s.workers {
		if err := w.Start(groupCtx); err != nil {
			for _, prev := range started {
				_ = prev.Stop(s.cfg.StopTimeout)
			}
			return fmt.Errorf("supervisor: start worker %s: %w", w.ID(), err)
		}
		started = append(started, w)
	}
	if err := s.cleaner.Start(groupCtx); err != nil {
		for _, prev := range started {
			_ = prev.Stop(s.cfg.StopTimeout)
		}
		return fmt.Errorf("supervisor: start clean worker: %w", err)
	}

	// A worker also exits on its own once the shared shutdown flag is
	// set, possibly by a "worker stop" in another process; treat that
	// the same as an interrupt and tear everything down.
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		for _, w := range s.workers {
			<-w.done
		}
	}()

	select {
	case <-groupCtx.Done():
	case <-workersDone:
	}
	if err := WorkerStop(context.Background(), s.store); err != nil {
		s.log.Error("cannot set shutdown flag", "err", err)
	}

	for _, w := range s.workers {
		group.Go(func() error {
			return w.Stop(s.cfg.StopTimeout)
		})
	}
	group.Go(func() error {
		return s.cleaner.Stop(s.cfg.StopTimeout)
	})

	return group.Wait()
}

// WorkerStop sets the shared "shutdown" config flag, the cooperative
// signal every Worker checks between jobs. It does not itself wait for
// any worker to exit.
func WorkerStop(ctx context.Context, store ConfigStore) error {
	return store.ConfigSet(ctx, ConfigShutdown, "true")
}

// newWorkerID generates a worker identity of the form "w-<8-hex>". Job
// ids are always caller-supplied, but workers have no caller to supply
// one, so they get a short random identity instead.
func newWorkerID() string {
	return "w-" + uuid.NewString()[:8]
}
