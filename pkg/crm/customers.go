// Customer operations: list, get, add, update, delete.
package crm

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/ident"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// ListCustomers returns every customer record in insertion order.
func (s *Service) ListCustomers() ([]*types.Customer, error) {
	values, err := s.customers.Values()
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	customers := make([]*types.Customer, 0, len(values))
	for _, v := range values {
		customers = append(customers, v.(*types.Customer))
	}
	return customers, nil
}

// GetCustomer returns the customer with the given id.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) GetCustomer(id string) (*types.Customer, error) {
	if !ident.Valid(id) {
		return nil, types.NewInvalidPayloadError("malformed customer id %q", id)
	}
	got, err := s.customers.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.NewNotFoundError(entityCustomer, id)
		}
		return nil, fmt.Errorf("getting customer %s: %w", id, err)
	}
	return got.(*types.Customer), nil
}

// AddCustomer creates a customer under a freshly generated identifier.
// The new record starts with empty interaction and purchase lists.
// Reports InvalidPayload when the payload carries no data.
func (s *Service) AddCustomer(p types.CustomerPayload) (*types.Customer, error) {
	if p.Empty() {
		return nil, types.NewInvalidPayloadError("customer payload is empty")
	}

	customer := types.NewCustomer(ident.New(), p)
	if _, err := s.customers.Insert(customer.CustomerID, customer); err != nil {
		return nil, fmt.Errorf("adding customer: %w", err)
	}

	s.log.Debug("customer added", "customer_id", customer.CustomerID)
	return customer, nil
}

// UpdateCustomer replaces the stored record verbatim, keyed by the record's
// own id. Unlike GetCustomer and DeleteCustomer there is no id-format
// pre-check; an absent id reports NotFound.
func (s *Service) UpdateCustomer(c *types.Customer) (*types.Customer, error) {
	exists, err := s.customers.Contains(c.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("checking customer %s: %w", c.CustomerID, err)
	}
	if !exists {
		return nil, types.NewNotFoundError(entityCustomer, c.CustomerID)
	}

	if _, err := s.customers.Insert(c.CustomerID, c); err != nil {
		return nil, fmt.Errorf("updating customer %s: %w", c.CustomerID, err)
	}

	s.log.Debug("customer updated", "customer_id", c.CustomerID)
	return c, nil
}

// DeleteCustomer removes the customer from the standalone store and returns
// the deleted id. Interactions and purchases the customer owned remain in
// their standalone stores; there is no cascade.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) DeleteCustomer(id string) (string, error) {
	if !ident.Valid(id) {
		return "", types.NewInvalidPayloadError("malformed customer id %q", id)
	}
	if _, err := s.customers.Remove(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.NewNotFoundError(entityCustomer, id)
		}
		return "", fmt.Errorf("deleting customer %s: %w", id, err)
	}

	s.log.Debug("customer deleted", "customer_id", id)
	return id, nil
}
