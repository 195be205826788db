// Purchase operations: add, list-by-customer, get, update, delete, and the
// date query. These mirror the interaction operations exactly.
package crm

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/ident"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// AddPurchase creates a purchase under a freshly generated identifier and
// embeds a snapshot of it in the owning customer. Same two-write shape as
// AddInteraction: standalone record first, then the customer, not atomic.
// Returns the new purchase id.
func (s *Service) AddPurchase(customerID string, p types.PurchasePayload) (string, error) {
	if !ident.Valid(customerID) {
		return "", types.NewInvalidPayloadError("malformed customer id %q", customerID)
	}
	if p.Empty() {
		return "", types.NewInvalidPayloadError("purchase payload is empty")
	}

	got, err := s.customers.Get(customerID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.NewNotFoundError(entityCustomer, customerID)
		}
		return "", fmt.Errorf("getting customer %s: %w", customerID, err)
	}
	customer := got.(*types.Customer)

	purchase := types.NewPurchase(ident.New(), p)
	if _, err := s.purchases.Insert(purchase.PurchaseID, purchase); err != nil {
		return "", fmt.Errorf("adding purchase: %w", err)
	}

	customer.RecordPurchase(*purchase)
	if _, err := s.customers.Insert(customerID, customer); err != nil {
		return "", fmt.Errorf("embedding purchase in customer %s: %w", customerID, err)
	}

	s.log.Debug("purchase added",
		"purchase_id", purchase.PurchaseID,
		"customer_id", customerID)
	return purchase.PurchaseID, nil
}

// ListCustomerPurchases returns the embedded purchase snapshots of the given
// customer. Like ListCustomerInteractions, every failure mode collapses to an
// empty sequence.
func (s *Service) ListCustomerPurchases(customerID string) []types.Purchase {
	if !ident.Valid(customerID) {
		return []types.Purchase{}
	}
	got, err := s.customers.Get(customerID)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			s.log.Debug("swallowed failure listing purchases",
				"customer_id", customerID, "error", err)
		}
		return []types.Purchase{}
	}
	return got.(*types.Customer).Purchases
}

// GetPurchase returns the standalone purchase with the given id.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) GetPurchase(id string) (*types.Purchase, error) {
	if !ident.Valid(id) {
		return nil, types.NewInvalidPayloadError("malformed purchase id %q", id)
	}
	got, err := s.purchases.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.NewNotFoundError(entityPurchase, id)
		}
		return nil, fmt.Errorf("getting purchase %s: %w", id, err)
	}
	return got.(*types.Purchase), nil
}

// UpdatePurchase replaces the standalone record verbatim, keyed by the
// record's own id. No id-format pre-check; the embedded copy inside the
// owning customer is left untouched.
func (s *Service) UpdatePurchase(p *types.Purchase) (*types.Purchase, error) {
	exists, err := s.purchases.Contains(p.PurchaseID)
	if err != nil {
		return nil, fmt.Errorf("checking purchase %s: %w", p.PurchaseID, err)
	}
	if !exists {
		return nil, types.NewNotFoundError(entityPurchase, p.PurchaseID)
	}

	if _, err := s.purchases.Insert(p.PurchaseID, p); err != nil {
		return nil, fmt.Errorf("updating purchase %s: %w", p.PurchaseID, err)
	}

	s.log.Debug("purchase updated", "purchase_id", p.PurchaseID)
	return p, nil
}

// DeletePurchase removes the standalone record and returns the deleted id.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) DeletePurchase(id string) (string, error) {
	if !ident.Valid(id) {
		return "", types.NewInvalidPayloadError("malformed purchase id %q", id)
	}
	if _, err := s.purchases.Remove(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.NewNotFoundError(entityPurchase, id)
		}
		return "", fmt.Errorf("deleting purchase %s: %w", id, err)
	}

	s.log.Debug("purchase deleted", "purchase_id", id)
	return id, nil
}

// PurchasesByDate returns every standalone purchase whose date matches date
// case-insensitively. The match is raw string equality; no semantic date
// comparison is performed.
func (s *Service) PurchasesByDate(date string) ([]*types.Purchase, error) {
	values, err := s.purchases.Values()
	if err != nil {
		return nil, fmt.Errorf("querying purchases by date: %w", err)
	}

	matches := []*types.Purchase{}
	for _, v := range values {
		p := v.(*types.Purchase)
		if p.MatchesDate(date) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
