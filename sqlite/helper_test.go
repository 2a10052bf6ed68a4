package sqlite_test

import (
	"context"
	"testing"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.OpenDSN(context.Background(), "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.DB.Close() })
	return store
}
