// Package queuectl implements a durable background job queue: bounded
// concurrent workers execute shell commands with exponential-backoff
// retry and a dead-letter partition for jobs that exhaust their retry
// budget. State lives in a single-file transactional store shared by
// every worker and survives process restarts.
//
// # Overview
//
// A Job carries a shell command and moves through an explicit state
// machine: pending -> processing -> {completed | failed | dead}, with
// failed jobs becoming claimable again once their backoff delay elapses
// (see package job).
//
// queuectl does not mandate a storage backend; package sqlite provides
// one built on github.com/uptrace/bun and modernc.org/sqlite. Any
// backend may be used provided it can execute the claim operation
// (ClaimNext) as a single serializable write.
//
// # Claim Protocol
//
// Many workers may share one Store. ClaimNext selects the
// highest-ranked ready job (priority DESC, next_run_at ASC, created_at
// ASC) and transitions it to Processing in one atomic step, so two
// workers can never claim the same row. A worker that crashes mid-job
// leaves an orphaned Processing row; RecoverProcessing, run once at
// worker startup, rewrites any such row to Failed so it re-enters
// circulation.
//
// # Retry Policy
//
// On failure, BackoffDelay(base, attempts) computes how long a job
// waits before becoming eligible again. IsDead reports whether the job
// has exhausted max_retries, in which case it moves to Dead instead of
// Failed.
//
// # Worker and Supervisor
//
// Worker runs a single sequential loop: claim one job, execute it,
// finalize it, repeat; it polls when idle and exits once the shared
// "shutdown" config flag is set. Supervisor starts N such workers
// (plus one CleanWorker) and joins them; on external interrupt it only
// ever sets the shutdown flag, never kills a worker mid-job.
//
// # Interfaces
//
// queuectl defines narrow storage interfaces that together form Store:
//
//	Enqueuer       — insert/replace a job
//	Claimer        — claim, complete, fail/kill, recover orphans
//	Observer       — read-only job inspection
//	ConfigStore    — string-keyed runtime configuration
//	WorkerRegistry — track live worker processes
//	Cleaner        — delete terminal jobs past a retention age
//
// Splitting the surface this way lets each collaborator (Worker,
// Supervisor, CleanWorker, the admin API) depend on only what it uses.
//
// # Delivery Semantics
//
// A job stays Processing until its own worker finalizes it, or until
// the next process restart's RecoverProcessing reclaims it after a
// crash. There is no visibility-timeout lease and no per-job
// cancellation; an operator recovers a stuck job by killing the worker
// process and letting the next startup's orphan recovery take over.
package queuectl
