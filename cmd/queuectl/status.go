package main

import (
	"context"
	"fmt"
	"os"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
)

// runStatus prints two tables: job counts by state, and active workers.
func runStatus(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: status takes no arguments", queuectl.ErrUsage)
	}

	counts, err := store.CountsByState(ctx)
	if err != nil {
		return err
	}
	countsTable := newTable("STATE", "COUNT")
	for _, c := range counts {
		countsTable.add(c.State.String(), fmt.Sprintf("%d", c.Count))
	}
	fmt.Fprintln(os.Stdout, "job counts:")
	countsTable.fprint(os.Stdout)

	workers, err := store.ListActiveWorkers(ctx)
	if err != nil {
		return err
	}
	workersTable := newTable("ID", "PID", "STARTED")
	for _, w := range workers {
		workersTable.add(w.ID, fmt.Sprintf("%d", w.PID), relativeTime(time.Unix(w.StartedAt, 0)))
	}
	fmt.Fprintln(os.Stdout, "\nactive workers:")
	workersTable.fprint(os.Stdout)
	return nil
}
