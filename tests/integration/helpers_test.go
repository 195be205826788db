// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/crm"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// setupBackend creates a backend attached to an isolated temp directory.
// Each test gets its own data directory for isolation.
func setupBackend(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

// setupService creates a record service over a fresh backend.
func setupService(t *testing.T) *crm.Service {
	t.Helper()
	b, _ := setupBackend(t)
	svc, err := crm.New(b, nil)
	if err != nil {
		t.Fatalf("New service: %v", err)
	}
	return svc
}

// mustAddCustomer creates a customer or fails the test.
func mustAddCustomer(t *testing.T, svc *crm.Service, p types.CustomerPayload) *types.Customer {
	t.Helper()
	c, err := svc.AddCustomer(p)
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	return c
}
