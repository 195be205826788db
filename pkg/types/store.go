package types

// Standard store names. Each holds the canonical records for one entity kind.
const (
	CustomersStore    = "customers"
	InteractionsStore = "interactions"
	PurchasesStore    = "purchases"
)

// Store is a durable identifier-keyed map for a single entity kind.
// Get, Insert, Remove, and Values traffic in any; callers type-assert to the
// concrete entity struct for the store they asked the Registry for.
type Store interface {
	// Get retrieves the record with the given id.
	// Returns ErrNotFound if no record exists under that id.
	Get(id string) (any, error)

	// Insert creates or replaces the record under id (upsert semantics;
	// create and update share this one primitive). Returns the previous
	// record, or nil if the id was absent.
	Insert(id string, record any) (any, error)

	// Remove deletes the record under id and returns it.
	// Returns ErrNotFound if no record exists under that id.
	Remove(id string) (any, error)

	// Values returns every record in the store in insertion order.
	// Returns an empty slice, never nil, when the store is empty.
	Values() ([]any, error)

	// Contains reports whether a record exists under id.
	Contains(id string) (bool, error)
}

// Registry is the backend-agnostic access point for the entity stores.
// Callers attach to a backend, fetch stores by name, and detach when done.
// No transaction spans more than one store: a compound operation that
// touches two stores executes as two independent writes.
type Registry interface {
	// GetStore returns the Store for the given name.
	// Returns ErrStoreNotFound if the name is not a standard store.
	GetStore(name string) (Store, error)

	// Attach connects the Registry to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, store operations return ErrRegistryDetached.
	Detach() error
}
