// Package executor runs the shell command carried by a job.
//
// Executor is an opaque collaborator to the engine: it takes a command
// string and an optional timeout and returns an exit code plus a short
// error string. The engine never inspects how a command was run, only
// whether it exited zero.
package executor
