// Interaction operations: add, list-by-customer, get, update, delete, and
// the status filter query.
package crm

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/ident"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// AddInteraction creates an interaction under a freshly generated identifier
// and embeds a snapshot of it in the owning customer. Two independent writes:
// the standalone interaction record first, then the customer. A crash between
// them leaves the stores diverged; that is the accepted failure mode.
// Returns the new interaction id.
func (s *Service) AddInteraction(customerID string, p types.InteractionPayload) (string, error) {
	if !ident.Valid(customerID) {
		return "", types.NewInvalidPayloadError("malformed customer id %q", customerID)
	}
	if p.Empty() {
		return "", types.NewInvalidPayloadError("interaction payload is empty")
	}

	got, err := s.customers.Get(customerID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.NewNotFoundError(entityCustomer, customerID)
		}
		return "", fmt.Errorf("getting customer %s: %w", customerID, err)
	}
	customer := got.(*types.Customer)

	interaction := types.NewInteraction(ident.New(), p)
	if _, err := s.interactions.Insert(interaction.InteractionID, interaction); err != nil {
		return "", fmt.Errorf("adding interaction: %w", err)
	}

	customer.RecordInteraction(*interaction)
	if _, err := s.customers.Insert(customerID, customer); err != nil {
		return "", fmt.Errorf("embedding interaction in customer %s: %w", customerID, err)
	}

	s.log.Debug("interaction added",
		"interaction_id", interaction.InteractionID,
		"customer_id", customerID)
	return interaction.InteractionID, nil
}

// ListCustomerInteractions returns the embedded interaction snapshots of the
// given customer. This read path swallows every failure mode: a malformed id,
// a missing customer, and store failures all yield an empty sequence rather
// than an error.
func (s *Service) ListCustomerInteractions(customerID string) []types.Interaction {
	if !ident.Valid(customerID) {
		return []types.Interaction{}
	}
	got, err := s.customers.Get(customerID)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			s.log.Debug("swallowed failure listing interactions",
				"customer_id", customerID, "error", err)
		}
		return []types.Interaction{}
	}
	return got.(*types.Customer).Interactions
}

// GetInteraction returns the standalone interaction with the given id.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) GetInteraction(id string) (*types.Interaction, error) {
	if !ident.Valid(id) {
		return nil, types.NewInvalidPayloadError("malformed interaction id %q", id)
	}
	got, err := s.interactions.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.NewNotFoundError(entityInteraction, id)
		}
		return nil, fmt.Errorf("getting interaction %s: %w", id, err)
	}
	return got.(*types.Interaction), nil
}

// UpdateInteraction replaces the standalone record verbatim, keyed by the
// record's own id. No id-format pre-check, matching update semantics across
// entities. The embedded copy inside the owning customer is left untouched;
// the divergence is part of the contract.
func (s *Service) UpdateInteraction(i *types.Interaction) (*types.Interaction, error) {
	exists, err := s.interactions.Contains(i.InteractionID)
	if err != nil {
		return nil, fmt.Errorf("checking interaction %s: %w", i.InteractionID, err)
	}
	if !exists {
		return nil, types.NewNotFoundError(entityInteraction, i.InteractionID)
	}

	if _, err := s.interactions.Insert(i.InteractionID, i); err != nil {
		return nil, fmt.Errorf("updating interaction %s: %w", i.InteractionID, err)
	}

	s.log.Debug("interaction updated", "interaction_id", i.InteractionID)
	return i, nil
}

// DeleteInteraction removes the standalone record and returns the deleted id.
// The embedded copy inside the owning customer is not touched.
// Reports InvalidPayload for a malformed id and NotFound for an absent one.
func (s *Service) DeleteInteraction(id string) (string, error) {
	if !ident.Valid(id) {
		return "", types.NewInvalidPayloadError("malformed interaction id %q", id)
	}
	if _, err := s.interactions.Remove(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", types.NewNotFoundError(entityInteraction, id)
		}
		return "", fmt.Errorf("deleting interaction %s: %w", id, err)
	}

	s.log.Debug("interaction deleted", "interaction_id", id)
	return id, nil
}

// FilterByStatus returns every standalone interaction whose status matches
// status case-insensitively. The status is not validated; an empty or
// whitespace status simply matches nothing (or interactions with that exact
// status).
func (s *Service) FilterByStatus(status string) ([]*types.Interaction, error) {
	values, err := s.interactions.Values()
	if err != nil {
		return nil, fmt.Errorf("filtering interactions by status: %w", err)
	}

	matches := []*types.Interaction{}
	for _, v := range values {
		i := v.(*types.Interaction)
		if i.MatchesStatus(status) {
			matches = append(matches, i)
		}
	}
	return matches, nil
}
