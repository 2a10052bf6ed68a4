// Package job defines the persistent representation of a queued job.
//
// A Job is a snapshot of storage state: identity, the shell command it
// carries, its position in the lifecycle state machine, and scheduling
// metadata. Job values returned by a Store are independent snapshots;
// mutating them does not change the underlying row. State transitions
// must go through a Store.
package job
