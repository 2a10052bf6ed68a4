package sqlite

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/job"
)

type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	ID      string `bun:"id,pk"`
	Command string `bun:"command,notnull"`

	State      job.State `bun:"state,notnull,default:0"`
	Attempts   uint32    `bun:"attempts,notnull,default:0"`
	MaxRetries uint32    `bun:"max_retries,notnull,default:3"`
	Priority   int32     `bun:"priority,notnull,default:0"`
	NextRunAt  time.Time `bun:"next_run_at,notnull"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	LastError *string `bun:"last_error,nullzero"`
	WorkerID  *string `bun:"worker_id,nullzero"`
}

func (jm *jobModel) toJob() *job.Job {
	return &job.Job{
		ID:         jm.ID,
		Command:    jm.Command,
		State:      jm.State,
		Attempts:   jm.Attempts,
		MaxRetries: jm.MaxRetries,
		Priority:   jm.Priority,
		NextRunAt:  jm.NextRunAt,
		CreatedAt:  jm.CreatedAt,
		UpdatedAt:  jm.UpdatedAt,
		LastError:  jm.LastError,
		WorkerID:   jm.WorkerID,
	}
}

// fromJob copies the lifecycle fields of j into a row. Only zero values
// that have no meaning in storage get defaults: a State of job.Unknown
// is stored as Pending, and a zero NextRunAt or CreatedAt as now.
// Attempts, LastError and WorkerID are copied as they are, so it is the
// caller's job (cmd/queuectl's enqueue and dlq retry handlers) to reset
// them before calling UpsertJob.
func fromJob(j *job.Job) *jobModel {
	now := time.Now()
	state := j.State
	if state == job.Unknown {
		state = job.Pending
	}
	nextRun := j.NextRunAt
	if nextRun.IsZero() {
		nextRun = now
	}
	created := j.CreatedAt
	if created.IsZero() {
		created = now
	}
	return &jobModel{
		ID:         j.ID,
		Command:    j.Command,
		State:      state,
		Attempts:   j.Attempts,
		MaxRetries: j.MaxRetries,
		Priority:   j.Priority,
		NextRunAt:  nextRun,
		CreatedAt:  created,
		UpdatedAt:  now,
		LastError:  j.LastError,
		WorkerID:   j.WorkerID,
	}
}

type configModel struct {
	bun.BaseModel `bun:"table:config"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

type workerModel struct {
	bun.BaseModel `bun:"table:workers"`

	ID        string `bun:"id,pk"`
	PID       int    `bun:"pid,notnull"`
	StartedAt int64  `bun:"started_at,notnull"`
	StoppedAt *int64 `bun:"stopped_at,nullzero"`
}
