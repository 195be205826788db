// Package crm implements the Rolodex service operations: the CRUD and query
// handlers over the customer, interaction, and purchase stores.
//
// Every operation is a single synchronous read-modify-write against a
// durable store. The compound add operations touch two stores with two
// independent writes; nothing in this package adds cross-store transaction
// semantics, and a crash between the writes leaves the stores diverged.
// See docs/ARCHITECTURE.md § Service Operations.
package crm

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Entity kind names used in error messages.
const (
	entityCustomer    = "customer"
	entityInteraction = "interaction"
	entityPurchase    = "purchase"
)

// Service exposes the public operation surface over the three entity stores.
type Service struct {
	customers    types.Store
	interactions types.Store
	purchases    types.Store
	log          *slog.Logger
}

// New builds a Service over an attached registry. The registry must expose
// the three standard stores; a nil logger falls back to slog.Default.
func New(registry types.Registry, log *slog.Logger) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}

	customers, err := registry.GetStore(types.CustomersStore)
	if err != nil {
		return nil, fmt.Errorf("getting customers store: %w", err)
	}
	interactions, err := registry.GetStore(types.InteractionsStore)
	if err != nil {
		return nil, fmt.Errorf("getting interactions store: %w", err)
	}
	purchases, err := registry.GetStore(types.PurchasesStore)
	if err != nil {
		return nil, fmt.Errorf("getting purchases store: %w", err)
	}

	return &Service{
		customers:    customers,
		interactions: interactions,
		purchases:    purchases,
		log:          log,
	}, nil
}
