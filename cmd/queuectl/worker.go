package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/executor"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

func runWorker(ctx context.Context, store queuectl.Store, log *slog.Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: worker requires a subcommand (start|stop)", queuectl.ErrUsage)
	}

	switch args[0] {
	case "start":
		return runWorkerStart(ctx, store, log, args[1:])
	case "stop":
		return runWorkerStop(ctx, store, args[1:])
	default:
		return fmt.Errorf("%w: unknown worker subcommand %q", queuectl.ErrUsage, args[0])
	}
}

// runWorkerStart resets the shared shutdown flag, then runs a
// Supervisor of --count workers until interrupted.
func runWorkerStart(ctx context.Context, store queuectl.Store, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("worker start", flag.ContinueOnError)
	count := fs.Int("count", 1, "number of concurrent workers")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", queuectl.ErrUsage, err)
	}
	if *count <= 0 {
		return fmt.Errorf("%w: --count must be positive", queuectl.ErrUsage)
	}

	if err := store.ConfigSet(ctx, queuectl.ConfigShutdown, "false"); err != nil {
		return fmt.Errorf("reset shutdown flag: %w", err)
	}

	clean, err := resolveCleanConfig(ctx, store)
	if err != nil {
		return err
	}

	sigCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sup := queuectl.NewSupervisor(store, executor.NewShell(), queuectl.SupervisorConfig{
		Workers: *count,
		Clean:   clean,
	}, log)

	return sup.Run(sigCtx)
}

// resolveCleanConfig builds the background CleanWorker's schedule from
// the gc_after/gc_interval config keys, falling back to their defaults
// when unset or unparsable.
func resolveCleanConfig(ctx context.Context, store queuectl.Store) (queuectl.CleanConfig, error) {
	intervalStr, err := store.ConfigGet(ctx, queuectl.ConfigGCInterval, queuectl.DefaultGCInterval)
	if err != nil {
		return queuectl.CleanConfig{}, err
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		interval, _ = time.ParseDuration(queuectl.DefaultGCInterval)
	}

	afterStr, err := store.ConfigGet(ctx, queuectl.ConfigGCAfter, queuectl.DefaultGCAfter)
	if err != nil {
		return queuectl.CleanConfig{}, err
	}
	after, err := time.ParseDuration(afterStr)
	if err != nil {
		after, _ = time.ParseDuration(queuectl.DefaultGCAfter)
	}

	return queuectl.CleanConfig{
		State:    job.Unknown,
		Interval: interval,
		Before:   true,
		Delta:    after,
	}, nil
}

func runWorkerStop(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: worker stop takes no arguments", queuectl.ErrUsage)
	}
	return queuectl.WorkerStop(ctx, store)
}
