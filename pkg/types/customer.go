package types

// Customer is the root CRM entity. Its Interactions and Purchases fields
// hold snapshots embedded at add-time; they are the source of truth for the
// list-by-customer queries, while the standalone stores remain the source of
// truth for direct lookup, update, and delete by identifier. After creation
// the two intentionally diverge: updates to a standalone interaction or
// purchase never propagate back into the embedded copy, and deletes do not
// cascade.
type Customer struct {
	CustomerID   string        `json:"customer_id" yaml:"customer_id"`
	Name         string        `json:"name" yaml:"name"`
	Company      string        `json:"company" yaml:"company"`
	Email        string        `json:"email" yaml:"email"`
	Phone        string        `json:"phone" yaml:"phone"`
	Interactions []Interaction `json:"interactions" yaml:"interactions"`
	Purchases    []Purchase    `json:"purchases" yaml:"purchases"`
}

// CustomerPayload carries the caller-supplied fields for creating a customer.
type CustomerPayload struct {
	Name    string `json:"name" yaml:"name"`
	Company string `json:"company" yaml:"company"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
}

// Empty reports whether the payload carries no data at all. The check is
// shallow: it does not judge individual fields, only that at least one of
// them is set.
func (p CustomerPayload) Empty() bool {
	return p == CustomerPayload{}
}

// NewCustomer builds a Customer from a payload under the given identifier.
// The embedded interaction and purchase lists start as empty slices, not nil,
// so the list-by-customer queries always have a sequence to return.
func NewCustomer(id string, p CustomerPayload) *Customer {
	return &Customer{
		CustomerID:   id,
		Name:         p.Name,
		Company:      p.Company,
		Email:        p.Email,
		Phone:        p.Phone,
		Interactions: []Interaction{},
		Purchases:    []Purchase{},
	}
}

// RecordInteraction appends a snapshot of the interaction to the embedded
// list. The snapshot is a copy by value; later changes to the standalone
// record do not reach it.
func (c *Customer) RecordInteraction(i Interaction) {
	c.Interactions = append(c.Interactions, i)
}

// RecordPurchase appends a snapshot of the purchase to the embedded list.
func (c *Customer) RecordPurchase(p Purchase) {
	c.Purchases = append(c.Purchases, p)
}
