package queuectl

import "context"

// Recognized config keys. The config table accepts any string key;
// these are the ones the engine itself reads.
const (
	ConfigMaxRetries  = "max_retries"
	ConfigBackoffBase = "backoff_base"
	ConfigShutdown    = "shutdown"
	ConfigGCAfter     = "gc_after"
	ConfigGCInterval  = "gc_interval"
)

// Default values for recognized config keys, seeded by Store
// initialization and returned by ConfigGet when a key is unset.
const (
	DefaultMaxRetries = "3"
	DefaultBackoffStr = "2.0"
	DefaultShutdown   = "false"
	DefaultGCAfter    = "168h"
	DefaultGCInterval = "1h"
)

// ConfigStore is a last-writer-wins string-to-string key/value store.
// The key set is open-ended; only the keys above are interpreted by the
// engine itself.
type ConfigStore interface {

	// ConfigGet returns the value stored for key, or def if unset.
	ConfigGet(ctx context.Context, key, def string) (string, error)

	// ConfigSet upserts key to value.
	ConfigSet(ctx context.Context, key, value string) error
}
