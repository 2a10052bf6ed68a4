// Command queuectl is the thin CLI wrapper described by the engine's
// external interface: a set of verbs over a single shared queuectl.Store,
// each exiting 0 on success, 1 on an operational error, 2 on a usage
// error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/sqlite"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage())
		return 2
	}

	ctx := context.Background()
	store, err := sqlite.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "queuectl: cannot open store: %v\n", err)
		return 1
	}
	defer store.DB.Close()

	verb, rest := args[0], args[1:]
	var dispatchErr error

	switch verb {
	case "enqueue":
		dispatchErr = runEnqueue(ctx, store, rest)
	case "worker":
		dispatchErr = runWorker(ctx, store, log, rest)
	case "status":
		dispatchErr = runStatus(ctx, store, rest)
	case "list":
		dispatchErr = runList(ctx, store, rest)
	case "dlq":
		dispatchErr = runDlq(ctx, store, rest)
	case "config":
		dispatchErr = runConfig(ctx, store, rest)
	case "gc":
		dispatchErr = runGC(ctx, store, rest)
	case "-h", "--help", "help":
		fmt.Fprintln(os.Stdout, usage())
		return 0
	default:
		fmt.Fprintf(os.Stderr, "queuectl: unknown command %q\n\n%s\n", verb, usage())
		return 2
	}

	return exitCode(dispatchErr)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, queuectl.ErrUsage) {
		fmt.Fprintf(os.Stderr, "queuectl: %v\n", err)
		return 2
	}
	fmt.Fprintf(os.Stderr, "queuectl: %v\n", err)
	return 1
}

func usage() string {
	return `usage: queuectl <command> [arguments]

commands:
  enqueue <json> | --id X --command Y [--max-retries N] [--priority P]
  enqueue --json-file F
  worker start [--count N]
  worker stop
  status
  list [--state pending|processing|completed|failed|dead]
  dlq list
  dlq retry <id>
  config get <key>
  config set <key> <value>
  gc run [--state completed|dead] [--before DURATION]

environment:
  QUEUECTL_HOME   directory holding queue.db (default ~/.queuectl)`
}
