package main

import (
	"context"
	"testing"

	queuectl "github.com/Sucharan30/FLAM-Backend-Assignment-queuectl"
	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/sqlite"
)

func newCLITestStore(t *testing.T) queuectl.Store {
	t.Helper()
	store, err := sqlite.OpenDSN(context.Background(), "file::memory:?cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.DB.Close() })
	return store
}
