package main

import (
	"context"
	"fmt"
	"os"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
)

func runConfig(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: config requires a subcommand (get|set)", queuectl.ErrUsage)
	}

	switch args[0] {
	case "get":
		return runConfigGet(ctx, store, args[1:])
	case "set":
		return runConfigSet(ctx, store, args[1:])
	default:
		return fmt.Errorf("%w: unknown config subcommand %q", queuectl.ErrUsage, args[0])
	}
}

func runConfigGet(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: config get requires exactly one key", queuectl.ErrUsage)
	}
	value, err := store.ConfigGet(ctx, args[0], "")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}

func runConfigSet(ctx context.Context, store queuectl.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: config set requires a key and a value", queuectl.ErrUsage)
	}
	return store.ConfigSet(ctx, args[0], args[1])
}
