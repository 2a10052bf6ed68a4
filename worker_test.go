package queuectl_test

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1) // important for sqlite
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	ctx := context.Background()
	if err := sqlite.InitDB(ctx, db); err != nil {
		t.Fatal(err)
	}
	return &sqlite.Store{
		Enqueuer:       sqlite.NewEnqueuer(db),
		Claimer:        sqlite.NewClaimer(db),
		Observer:       sqlite.NewObserver(db),
		ConfigStore:    sqlite.NewConfigStore(db),
		WorkerRegistry: sqlite.NewWorkerRegistry(db),
		Cleaner:        sqlite.NewCleaner(db),
		DB:             db,
	}
}

// countingExecutor runs a deterministic canned script: it fails the
// first failCount times it's invoked, then succeeds.
type countingExecutor struct {
	calls     atomic.Int32
	failCount int32
}

func (e *countingExecutor) Run(_ context.Context, _ string, _ time.Duration) (int, string, error) {
	if e.calls.Add(1) <= e.failCount {
		return 1, "synthetic failure", nil
	}
	return 0, "", nil
}

func TestWorkerProcessesJob(t *testing.T) {
	store := newTestStore(t)
	logger := slog.Default()
	exec := &countingExecutor{}

	worker := queuectl.NewWorker("w1", store, exec, queuectl.WorkerConfig{PollInterval: 20 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := worker.Start(ctx); err != nil {
		t.Fatal(err)
	}

	if err := store.UpsertJob(ctx, &job.Job{ID: "j1", Command: "true", MaxRetries: 3}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(time.Second)
	var got *job.Job
	for time.Now().Before(deadline) {
		j, err := store.GetJob(ctx, "j1")
		if err != nil {
			t.Fatal(err)
		}
		if j != nil && j.State.Terminal() {
			got = j
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got == nil {
		t.Fatal("job never reached a terminal state")
	}
	if got.State != job.Completed {
		t.Fatalf("expected Completed, got %v", got.State)
	}

	if err := worker.Stop(time.Second); err != nil {
		t.Fatal(err)
	}
}

func TestWorkerRetriesThenSucceeds(t *testing.T) {
	store := newTestStore(t)
	logger := slog.Default()
	exec := &countingExecutor{failCount: 1}

	worker := queuectl.NewWorker("w1", store, exec, queuectl.WorkerConfig{PollInterval: 20 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = worker.Start(ctx)

	if err := store.UpsertJob(ctx, &job.Job{ID: "j1", Command: "false; true", MaxRetries: 3}); err != nil {
		t.Fatal(err)
	}
	// The backoff for attempt 1 is base**1 = 2 seconds by default, far
	// longer than this test should wait, so lower it directly.
	if err := store.ConfigSet(ctx, queuectl.ConfigBackoffBase, "1.01"); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	var got *job.Job
	for time.Now().Before(deadline) {
		j, err := store.GetJob(ctx, "j1")
		if err != nil {
			t.Fatal(err)
		}
		if j != nil && j.State == job.Completed {
			got = j
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if got == nil {
		t.Fatal("job never completed after retry")
	}
	if got.Attempts != 1 {
		t.Fatalf("expected exactly 1 recorded failed attempt, got %d", got.Attempts)
	}

	_ = worker.Stop(time.Second)
}

func TestWorkerMovesExhaustedJobToDeadLetter(t *testing.T) {
	store := newTestStore(t)
	logger := slog.Default()
	exec := &countingExecutor{failCount: 100}

	worker := queuectl.NewWorker("w1", store, exec, queuectl.WorkerConfig{PollInterval: 10 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = worker.Start(ctx)

	if err := store.ConfigSet(ctx, queuectl.ConfigBackoffBase, "1.0"); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertJob(ctx, &job.Job{ID: "j1", Command: "false", MaxRetries: 2}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	var got *job.Job
	for time.Now().Before(deadline) {
		j, err := store.GetJob(ctx, "j1")
		if err != nil {
			t.Fatal(err)
		}
		if j != nil && j.State == job.Dead {
			got = j
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got == nil {
		t.Fatal("job never moved to the dead letter state")
	}
	if got.Attempts != 2 {
		t.Fatalf("expected exactly 2 attempts before dead-lettering, got %d", got.Attempts)
	}

	_ = worker.Stop(time.Second)
}

func TestWorkerStopRecordsRegistryExit(t *testing.T) {
	store := newTestStore(t)
	logger := slog.Default()
	exec := &countingExecutor{}

	worker := queuectl.NewWorker("w1", store, exec, queuectl.WorkerConfig{PollInterval: 10 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := worker.Start(ctx); err != nil {
		t.Fatal(err)
	}

	active, err := store.ListActiveWorkers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active worker right after Start, got %d", len(active))
	}

	if err := worker.Stop(time.Second); err != nil {
		t.Fatal(err)
	}

	active, err = store.ListActiveWorkers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active workers after a graceful Stop, got %d", len(active))
	}
}
