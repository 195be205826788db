package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func customersStore(t *testing.T) types.Store {
	t.Helper()
	b := attachTestBackend(t)
	s, err := b.GetStore(types.CustomersStore)
	require.NoError(t, err)
	return s
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	s := customersStore(t)
	_, err := s.Get("3b241101-e2bb-4255-8caf-4136c566a962")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestInsertReturnsPreviousRecord(t *testing.T) {
	s := customersStore(t)
	id := "3b241101-e2bb-4255-8caf-4136c566a962"

	previous, err := s.Insert(id, types.NewCustomer(id, types.CustomerPayload{Name: "Acme"}))
	require.NoError(t, err)
	assert.Nil(t, previous, "first insert has no previous value")

	previous, err = s.Insert(id, types.NewCustomer(id, types.CustomerPayload{Name: "Acme Renamed"}))
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "Acme", previous.(*types.Customer).Name)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", got.(*types.Customer).Name)
}

func TestInsertRejectsWrongRecordType(t *testing.T) {
	s := customersStore(t)
	_, err := s.Insert("3b241101-e2bb-4255-8caf-4136c566a962", &types.Purchase{Product: "widget"})
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestRemoveReturnsRemovedRecord(t *testing.T) {
	s := customersStore(t)
	id := "3b241101-e2bb-4255-8caf-4136c566a962"
	_, err := s.Insert(id, types.NewCustomer(id, types.CustomerPayload{Name: "Acme"}))
	require.NoError(t, err)

	removed, err := s.Remove(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", removed.(*types.Customer).Name)

	// Removing twice reports absence the second time.
	_, err = s.Remove(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestValuesEmptyStore(t *testing.T) {
	s := customersStore(t)
	values, err := s.Values()
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestValuesInsertionOrder(t *testing.T) {
	s := customersStore(t)
	ids := []string{
		"00000001-0000-4000-8000-000000000001",
		"00000002-0000-4000-8000-000000000002",
		"00000003-0000-4000-8000-000000000003",
	}
	names := []string{"First", "Second", "Third"}
	for i, id := range ids {
		_, err := s.Insert(id, types.NewCustomer(id, types.CustomerPayload{Name: names[i]}))
		require.NoError(t, err)
	}

	// Replacing a record must not move it to the end.
	_, err := s.Insert(ids[0], types.NewCustomer(ids[0], types.CustomerPayload{Name: "First Replaced"}))
	require.NoError(t, err)

	values, err := s.Values()
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "First Replaced", values[0].(*types.Customer).Name)
	assert.Equal(t, "Second", values[1].(*types.Customer).Name)
	assert.Equal(t, "Third", values[2].(*types.Customer).Name)
}

func TestContains(t *testing.T) {
	s := customersStore(t)
	id := "3b241101-e2bb-4255-8caf-4136c566a962"

	ok, err := s.Contains(id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Insert(id, types.NewCustomer(id, types.CustomerPayload{Name: "Acme"}))
	require.NoError(t, err)

	ok, err = s.Contains(id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInteractionAndPurchaseRoundTrip(t *testing.T) {
	b := attachTestBackend(t)

	is, err := b.GetStore(types.InteractionsStore)
	require.NoError(t, err)
	i := types.NewInteraction("00000001-0000-4000-8000-00000000000a", types.InteractionPayload{
		Date:   "2026-01-15",
		Kind:   "call",
		Status: "Open",
	})
	_, err = is.Insert(i.InteractionID, i)
	require.NoError(t, err)
	got, err := is.Get(i.InteractionID)
	require.NoError(t, err)
	assert.Equal(t, "call", got.(*types.Interaction).Kind)

	ps, err := b.GetStore(types.PurchasesStore)
	require.NoError(t, err)
	p := types.NewPurchase("00000001-0000-4000-8000-00000000000b", types.PurchasePayload{
		Date:     "2026-01-16",
		Product:  "widget",
		Quantity: 2,
		Price:    250,
	})
	_, err = ps.Insert(p.PurchaseID, p)
	require.NoError(t, err)
	got, err = ps.Get(p.PurchaseID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.(*types.Purchase).Quantity)
	assert.Equal(t, 250, got.(*types.Purchase).Price)
}
