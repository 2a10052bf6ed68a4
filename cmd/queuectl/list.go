package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

func runList(ctx context.Context, store queuectl.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	stateFlag := fs.String("state", "", "filter by state (pending|processing|completed|failed|dead)")
	if err := fs.Parse(args); err != nil {
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

	jobs, err := store.ListJobs(ctx, state)
	if err != nil {
		return err
	}
	printJobTable(os.Stdout, jobs)
	return nil
}

func printJobTable(w *os.File, jobs []*job.Job) {
	t := newTable("ID", "STATE", "ATTEMPTS", "PRIORITY", "NEXT_RUN", "COMMAND")
	for _, j := range jobs {
		t.add(
			j.ID,
			j.State.String(),
			fmt.Sprintf("%d/%d", j.Attempts, j.MaxRetries),
			fmt.Sprintf("%d", j.Priority),
			relativeTime(j.NextRunAt),
			j.Command,
		)
	}
	t.fprint(w)
}
