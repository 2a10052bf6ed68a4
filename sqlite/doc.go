// Package sqlite implements queuectl.Store on a single SQLite file
// using github.com/uptrace/bun and the pure-Go driver modernc.org/sqlite.
//
// # Overview
//
// The backend stores three tables: jobs, config and workers. ClaimNext
// is implemented as a single UPDATE ... WHERE id IN (subquery)
// RETURNING statement, so selection and the Processing transition
// happen as one write under SQLite's single-writer lock — two workers
// sharing the same database file can never claim the same row.
//
// # Concurrency
//
// SQLite serializes writers; Open configures WAL journaling and a
// busy_timeout so that concurrent workers queue briefly on contention
// rather than failing with SQLITE_BUSY.
//
// # Schema
//
// InitDB (or MustInitDB) creates the jobs/config/workers tables, the
// indexes ClaimNext and Clean depend on, and seeds config with the
// engine's default values. InitDB is idempotent and safe to call on
// every process startup.
//
// # Lifecycle
//
// This package does not manage the database file's lifecycle beyond
// opening and initializing it; Open resolves QUEUECTL_HOME (or
// ~/.queuectl) and returns a ready-to-use *Store with schema applied.
package sqlite
