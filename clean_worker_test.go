package queuectl_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

type mockCleaner struct {
	count atomic.Int64
	state atomic.Int32
}

func (m *mockCleaner) Clean(_ context.Context, state job.State, _ *time.Time) (int64, error) {
	m.count.Add(1)
	m.state.Store(int32(state))
	return 1, nil
}

func TestCleanWorkerSweepsPeriodically(t *testing.T) {
	cleaner := &mockCleaner{}
	logger := slog.Default()

	cfg := queuectl.CleanConfig{
		State:    job.Completed,
		Interval: 20 * time.Millisecond,
	}
	worker := queuectl.NewCleanWorker(cleaner, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := worker.Start(ctx); err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)

	if err := worker.Stop(time.Second); err != nil {
		t.Fatal(err)
	}

	if cleaner.count.Load() < 2 {
		t.Fatalf("expected multiple sweeps, got %d", cleaner.count.Load())
	}
	if job.State(cleaner.state.Load()) != job.Completed {
		t.Fatalf("expected sweeps to target Completed, got %v", job.State(cleaner.state.Load()))
	}
}

func TestCleanWorkerDoubleStartFails(t *testing.T) {
	cleaner := &mockCleaner{}
	worker := queuectl.NewCleanWorker(cleaner, queuectl.CleanConfig{Interval: time.Hour}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := worker.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := worker.Start(ctx); err != queuectl.ErrDoubleStarted {
		t.Fatalf("expected ErrDoubleStarted, got %v", err)
	}
	_ = worker.Stop(time.Second)
}

func TestCleanWorkerDoubleStopFails(t *testing.T) {
	cleaner := &mockCleaner{}
	worker := queuectl.NewCleanWorker(cleaner, queuectl.CleanConfig{Interval: time.Hour}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = worker.Start(ctx)
	if err := worker.Stop(time.Second); err != nil {
		t.Fatal(err)
	}
	if err := worker.Stop(time.Second); err != queuectl.ErrDoubleStopped {
		t.Fatalf("expected ErrDoubleStopped, got %v", err)
	}
}
