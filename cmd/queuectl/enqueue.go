package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

// enqueuePayload is the shape accepted both as a raw JSON argument and
// as the contents of a --json-file. MaxRetries is a pointer so that an
// omitted field can be told apart from an explicit 0: when nil, the
// engine copies the current max_retries config value at enqueue time.
type enqueuePayload struct {
	ID         string  `json:"id"`
	Command    string  `json:"command"`
	MaxRetries *uint32 `json:"max_retries"`
	Priority   int32   `json:"priority"`
}

func runEnqueue(ctx context.Context, store queuectl.Store, args []string) error {
	fs := flag.NewFlagSet("enqueue", flag.ContinueOnError)
	id := fs.String("id", "", "job id")
	command := fs.String("command", "", "shell command")
	jsonFile := fs.String("json-file", "", "path to a JSON file with the job payload")
	maxRetries := fs.Uint("max-retries", 0, "maximum retry attempts (default: the max_retries config value)")
	priority := fs.Int("priority", 0, "claim priority, higher claims first")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", queuectl.ErrUsage, err)
	}

	var maxRetriesSet *uint32
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-retries" {
			v := uint32(*maxRetries)
			maxRetriesSet = &v
		}
	})

	payload, err := resolveEnqueuePayload(fs, *id, *command, *jsonFile, maxRetriesSet, int32(*priority))
	if err != nil {
		return err
	}
	if payload.ID == "" || payload.Command == "" {
		return fmt.Errorf("%w: enqueue requires both id and command", queuectl.ErrUsage)
	}

	maxRetriesVal, err := resolveMaxRetries(ctx, store, payload.MaxRetries)
	if err != nil {
		return err
	}

	j := &job.Job{
		ID:         payload.ID,
		Command:    payload.Command,
		MaxRetries: maxRetriesVal,
		Priority:   payload.Priority,
		State:      job.Pending,
		NextRunAt:  time.Now(),
	}
	if err := store.UpsertJob(ctx, j); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "enqueued %s\n", j.ID)
	return nil
}

// resolveMaxRetries copies the max_retries config value into the job
// when the submitter omitted it; an explicit value, including 0, is
// always used as-is.
func resolveMaxRetries(ctx context.Context, store queuectl.Store, explicit *uint32) (uint32, error) {
	if explicit != nil {
		return *explicit, nil
	}
	raw, err := store.ConfigGet(ctx, queuectl.ConfigMaxRetries, queuectl.DefaultMaxRetries)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, nil
	}
	return uint32(n), nil
}

// resolveEnqueuePayload picks between the three accepted input forms:
// a raw JSON positional argument, --json-file, or discrete flags. Flags
// take precedence only when neither JSON source is supplied.
func resolveEnqueuePayload(fs *flag.FlagSet, id, command, jsonFile string, maxRetries *uint32, priority int32) (enqueuePayload, error) {
	switch {
	case jsonFile != "":
		data, err := os.ReadFile(jsonFile)
		if err != nil {
			return enqueuePayload{}, fmt.Errorf("%w: cannot read %s: %v", queuectl.ErrUsage, jsonFile, err)
		}
		return decodeEnqueuePayload(data)
	case fs.NArg() == 1:
		return decodeEnqueuePayload([]byte(fs.Arg(0)))
	case fs.NArg() > 1:
		return enqueuePayload{}, fmt.Errorf("%w: enqueue accepts at most one positional JSON argument", queuectl.ErrUsage)
	default:
		return enqueuePayload{ID: id, Command: command, MaxRetries: maxRetries, Priority: priority}, nil
	}
}

func decodeEnqueuePayload(data []byte) (enqueuePayload, error) {
	var p enqueuePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return enqueuePayload{}, fmt.Errorf("%w: invalid JSON payload: %v", queuectl.ErrUsage, err)
	}
	return p, nil
}
