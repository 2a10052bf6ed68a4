package main

import (
	"context"
	"fmt"
	"os"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

func runDlq(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: dlq requires a subcommand (list|retry)", queuectl.ErrUsage)
	}

	switch args[0] {
	case "list":
		return runDlqList(ctx, store, args[1:])
	case "retry":
		return runDlqRetry(ctx, store, args[1:])
	default:
		return fmt.Errorf("%w: unknown dlq subcommand %q", queuectl.ErrUsage, args[0])
	}
}

func runDlqList(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: dlq list takes no arguments", queuectl.ErrUsage)
	}
	jobs, err := store.ListJobs(ctx, job.Dead)
	if err != nil {
		return err
	}
	printJobTable(os.Stdout, jobs)
	return nil
}

// runDlqRetry resets a dead job to Pending with a clean attempt count,
// the same shape as a fresh enqueue. It is a client error to retry a
// job that is not currently Dead.
func runDlqRetry(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: dlq retry requires exactly one job id", queuectl.ErrUsage)
	}
	id := args[0]

	j, err := store.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if j == nil {
		return fmt.Errorf("%w: %s", queuectl.ErrJobNotFound, id)
	}
	if j.State != job.Dead {
		return fmt.Errorf("%w: job %s is %s", queuectl.ErrNotDead, id, j.State)
	}

	j.State = job.Pending
	j.Attempts = 0
	j.LastError = nil
	j.WorkerID = nil
	j.NextRunAt = time.Now()
	if err := store.UpsertJob(ctx, j); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "requeued %s\n", id)
	return nil
}
