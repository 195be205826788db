// Package sqlite implements the SQLite storage backend for Rolodex.
// Each entity store is an identifier-keyed table holding the full record as
// JSON; the database file is the durable source of truth across attaches.
// See docs/ARCHITECTURE.md § SQLite Backend.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "rolodex.db"

// Backend implements the Registry interface using SQLite as the durable map.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	stores   map[string]*store
}

// Compile-time interface check: Backend must implement Registry.
var _ types.Registry = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		stores: make(map[string]*store),
	}
}

// GetStore returns a Store accessor for the given store name.
// Returns ErrStoreNotFound if the name is not a standard store.
// Returns ErrRegistryDetached if the backend is not attached.
func (b *Backend) GetStore(name string) (types.Store, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrRegistryDetached
	}

	s, ok := b.stores[name]
	if !ok {
		return nil, types.ErrStoreNotFound
	}
	return s, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens or creates the database file,
// applies the schema, and creates the store accessors. An existing database
// is reused as-is: records persisted by a previous attach remain visible.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.stores[types.CustomersStore] = newStore(b, types.CustomersStore, decodeCustomer, encodeCustomer)
	b.stores[types.InteractionsStore] = newStore(b, types.InteractionsStore, decodeInteraction, encodeInteraction)
	b.stores[types.PurchasesStore] = newStore(b, types.PurchasesStore, decodePurchase, encodePurchase)

	return nil
}

// Detach releases all resources held by the backend. Closes the SQLite
// connection. After Detach, all store operations return ErrRegistryDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.stores = make(map[string]*store)

	return nil
}
