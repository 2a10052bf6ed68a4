package queuectl

// Store composes the full storage contract the engine depends on. A
// concrete backend (see package sqlite) implements Store in one piece,
// but every consumer in this module only requires the narrow interface
// it actually uses: Worker needs a Claimer + WorkerRegistry +
// ConfigStore, CleanWorker needs only a Cleaner, and so on.
type Store interface {
	Enqueuer
	Claimer
	Observer
	ConfigStore
	WorkerRegistry
	Cleaner
}
