package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerPayloadEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload CustomerPayload
		want    bool
	}{
		{
			name:    "zero payload is empty",
			payload: CustomerPayload{},
			want:    true,
		},
		{
			name:    "single field makes payload non-empty",
			payload: CustomerPayload{Phone: "555-0100"},
			want:    false,
		},
		{
			name: "full payload is non-empty",
			payload: CustomerPayload{
				Name:    "Acme",
				Company: "Acme Co",
				Email:   "a@acme.com",
				Phone:   "555-0100",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payload.Empty())
		})
	}
}

func TestNewCustomer(t *testing.T) {
	c := NewCustomer("some-id", CustomerPayload{
		Name:    "Acme",
		Company: "Acme Co",
		Email:   "a@acme.com",
		Phone:   "555-0100",
	})

	assert.Equal(t, "some-id", c.CustomerID)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "Acme Co", c.Company)
	assert.Equal(t, "a@acme.com", c.Email)
	assert.Equal(t, "555-0100", c.Phone)

	// Embedded lists start as empty sequences, not nil.
	assert.NotNil(t, c.Interactions)
	assert.NotNil(t, c.Purchases)
	assert.Empty(t, c.Interactions)
	assert.Empty(t, c.Purchases)
}

func TestRecordInteractionSnapshots(t *testing.T) {
	c := NewCustomer("cust-1", CustomerPayload{Name: "Acme"})

	i := Interaction{
		InteractionID: "int-1",
		Date:          "2026-01-15",
		Kind:          "call",
		Status:        "Open",
	}
	c.RecordInteraction(i)
	assert.Len(t, c.Interactions, 1)

	// Mutating the original after recording must not reach the embedded copy.
	i.Status = "Closed"
	assert.Equal(t, "Open", c.Interactions[0].Status)
}

func TestRecordPurchaseSnapshots(t *testing.T) {
	c := NewCustomer("cust-1", CustomerPayload{Name: "Acme"})

	p := Purchase{PurchaseID: "pur-1", Product: "widget", Quantity: 3, Price: 42}
	c.RecordPurchase(p)
	assert.Len(t, c.Purchases, 1)

	p.Quantity = 99
	assert.Equal(t, 3, c.Purchases[0].Quantity)
}
