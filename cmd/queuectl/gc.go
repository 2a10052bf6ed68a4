package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// runGC triggers a one-off retention sweep, independent of the periodic
// CleanWorker a running "worker start" process keeps alongside its job
// workers.
func runGC(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: gc requires a subcommand (run)", queuectl.ErrUsage)
	}
	if args[0] != "run" {
		return fmt.Errorf("%w: unknown gc subcommand %q", queuectl.ErrUsage, args[0])
	}

	fs := flag.NewFlagSet("gc run", flag.ContinueOnError)
	stateFlag := fs.String("state", "", "limit the sweep to completed or dead (default: both)")
	beforeFlag := fs.String("before", "", "only delete rows last updated before this age (Go duration, e.g. 168h)")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", queuectl.ErrUsage, err)
	}

	state := job.Unknown
	if *stateFlag != "" {
		var err error
		state, err = job.ParseState(*stateFlag)
		if err != nil {
			return fmt.Errorf("%w: %v", queuectl.ErrUsage, err)
		}
	}

	var before *time.Time
	if *beforeFlag != "" {
		age, err := time.ParseDuration(*beforeFlag)
		if err != nil {
			return fmt.Errorf("%w: invalid --before duration: %v", queuectl.ErrUsage, err)
		}
		cutoff := time.Now().Add(-age)
		before = &cutoff
	}

	n, err := store.Clean(ctx, state, before)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "deleted %d rows\n", n)
	return nil
}
