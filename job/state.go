package job

import "fmt"

// State represents the current lifecycle state of a Job.
//
// The state machine:
//
//	pending    -> processing
//	processing -> completed
//	processing -> failed      (room left to retry)
//	processing -> dead        (retry budget exhausted)
//	failed     -> processing  (re-claimed once next_run_at elapses)
//	dead       -> pending     (via an explicit DLQ retry)
//
// Unknown is reserved as the zero value and used to mean "no filter" in
// List/Clean calls.
type State uint8

const (
	// Unknown is the zero value; List/Clean treat it as unfiltered.
	Unknown State = iota

	// Pending indicates the job is eligible for claiming once NextRunAt
	// elapses.
	Pending

	// Processing indicates the job is currently held by the worker
	// named in WorkerID.
	Processing

	// Completed is terminal: the job ran successfully and will never be
	// retried.
	Completed

	// Failed indicates a failed attempt that still has retry budget;
	// the job becomes eligible again at NextRunAt.
	Failed

	// Dead is terminal: the job exhausted its retry budget.
	Dead
)

func stateToString(s State) string {
	switch s {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

func stateFromString(s string) (State, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "processing":
		return Processing, nil
	case "completed":
		return Completed, nil
	case "failed":
		return Failed, nil
	case "dead":
		return Dead, nil
	case "unknown", "":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("unknown job state: %s", s)
	}
}

// ParseState converts a string representation of a state into a State
// value. An error is returned for unrecognized strings.
func ParseState(s string) (State, error) {
	return stateFromString(s)
}

// Terminal reports whether s is a state from which a job never
// transitions again: WorkerID is nil in {completed, dead} and no
// subsequent state change occurs.
func (s State) Terminal() bool {
	return s == Completed || s == Dead
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(stateToString(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	state, err := stateFromString(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// String returns the canonical lower-case name of the state.
func (s State) String() string {
	return stateToString(s)
}
