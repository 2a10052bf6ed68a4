package sqlite_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

func TestClaimNextAndComplete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertJob(ctx, &job.Job{ID: "j1", Command: "echo hi", MaxRetries: 3}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	claimed, err := store.ClaimNext(ctx, "w1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed == nil {
		t.Fatal("expected a claimed job, got nil")
	}
	if claimed.State != job.Processing {
		t.Fatalf("expected Processing, got %v", claimed.State)
	}
	if claimed.WorkerID == nil || *claimed.WorkerID != "w1" {
		t.Fatalf("expected worker_id w1, got %v", claimed.WorkerID)
	}

	if again, err := store.ClaimNext(ctx, "w2"); err != nil {
		t.Fatalf("second claim: %v", err)
	} else if again != nil {
		t.Fatalf("expected no second claimable job, got %+v", again)
	}

	if err := store.MarkCompleted(ctx, claimed.ID); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	got, err := store.GetJob(ctx, claimed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != job.Completed {
		t.Fatalf("expected Completed, got %v", got.State)
	}
	if got.WorkerID != nil {
		t.Fatalf("expected worker_id cleared, got %v", *got.WorkerID)
	}
}

func TestClaimNextOrdersByPriority(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	_ = store.UpsertJob(ctx, &job.Job{ID: "low", Command: "true", MaxRetries: 3, Priority: 0, NextRunAt: now})
	_ = store.UpsertJob(ctx, &job.Job{ID: "high", Command: "true", MaxRetries: 3, Priority: 10, NextRunAt: now})

	claimed, err := store.ClaimNext(ctx, "w1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed == nil || claimed.ID != "high" {
		t.Fatalf("expected high-priority job claimed first, got %+v", claimed)
	}
}

// TestClaimNextSingleClaimUnderContention drives many concurrent
// claimers against one store and verifies the core invariant of the
// claim protocol: every job is claimed and executed exactly once, no
// matter how many workers race for it.
func TestClaimNextSingleClaimUnderContention(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const total = 100
	for i := 0; i < total; i++ {
		id := fmt.Sprintf("job-%03d", i)
		if err := store.UpsertJob(ctx, &job.Job{ID: id, Command: "true", MaxRetries: 3}); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	const workers = 4
	counts := make([]int, workers)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			workerID := fmt.Sprintf("w%d", n)
			for {
				claimed, err := store.ClaimNext(ctx, workerID)
				if err != nil {
					t.Errorf("claim (%s): %v", workerID, err)
					return
				}
				if claimed == nil {
					return
				}
				if err := store.MarkCompleted(ctx, claimed.ID); err != nil {
					t.Errorf("complete %s (%s): %v", claimed.ID, workerID, err)
					return
				}
				counts[n]++
			}
		}(n)
	}
	wg.Wait()

	executions := 0
	for _, c := range counts {
		executions += c
	}
	if executions != total {
		t.Fatalf("expected %d executions summed across workers, got %d (per-worker %v)", total, executions, counts)
	}

	completed, err := store.ListJobs(ctx, job.Completed)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != total {
		t.Fatalf("expected %d completed jobs, got %d", total, len(completed))
	}
	for _, j := range completed {
		if j.Attempts > 1 {
			t.Fatalf("job %s recorded %d attempts; a job must never be executed twice", j.ID, j.Attempts)
		}
	}
}

func TestMarkFailedOrDeadRetriesThenKills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertJob(ctx, &job.Job{ID: "flaky", Command: "false", MaxRetries: 2}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	claimed, err := store.ClaimNext(ctx, "w1")
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v / %+v", err, claimed)
	}

	next := time.Now().Add(50 * time.Millisecond)
	if err := store.MarkFailedOrDead(ctx, claimed.ID, 1, claimed.MaxRetries, "boom", next); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	got, err := store.GetJob(ctx, claimed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != job.Failed {
		t.Fatalf("expected Failed after attempt 1/2, got %v", got.State)
	}

	time.Sleep(time.Until(next) + 10*time.Millisecond)
	claimed2, err := store.ClaimNext(ctx, "w1")
	if err != nil {
		t.Fatalf("re-claim: %v", err)
	}
	if claimed2 == nil {
		t.Fatal("expected job to be re-claimable once next_run_at elapsed")
	}

	if err := store.MarkFailedOrDead(ctx, claimed2.ID, 2, claimed2.MaxRetries, "boom again", time.Now()); err != nil {
		t.Fatalf("mark failed 2: %v", err)
	}
	got, err = store.GetJob(ctx, claimed2.ID)
	if err != nil {
		t.Fatalf("get 2: %v", err)
	}
	if got.State != job.Dead {
		t.Fatalf("expected Dead after exhausting retries, got %v", got.State)
	}
}

func TestRecoverProcessing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertJob(ctx, &job.Job{ID: "orphan", Command: "sleep 1", MaxRetries: 3}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := store.ClaimNext(ctx, "crashed-worker"); err != nil {
		t.Fatalf("claim: %v", err)
	}

	n, err := store.RecoverProcessing(ctx)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 recovered row, got %d", n)
	}

	got, err := store.GetJob(ctx, "orphan")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != job.Failed {
		t.Fatalf("expected recovered job to be Failed, got %v", got.State)
	}
	if got.WorkerID != nil {
		t.Fatalf("expected worker_id cleared after recovery, got %v", *got.WorkerID)
	}

	if n2, err := store.RecoverProcessing(ctx); err != nil {
		t.Fatalf("second recover: %v", err)
	} else if n2 != 0 {
		t.Fatalf("expected recovery to be idempotent, got %d rows", n2)
	}
}
