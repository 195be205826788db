package types

import "strings"

// Purchase is a single sale record. Quantity and Price are plain integers;
// the shallow payload check deliberately does not enforce non-negativity.
type Purchase struct {
	PurchaseID string `json:"purchase_id" yaml:"purchase_id"`
	Date       string `json:"date" yaml:"date"`
	Product    string `json:"product" yaml:"product"`
	Quantity   int    `json:"quantity" yaml:"quantity"`
	Price      int    `json:"price" yaml:"price"`
}

// PurchasePayload carries the caller-supplied fields for creating a purchase.
type PurchasePayload struct {
	Date     string `json:"date" yaml:"date"`
	Product  string `json:"product" yaml:"product"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Price    int    `json:"price" yaml:"price"`
}

// Empty reports whether the payload carries no data at all.
func (p PurchasePayload) Empty() bool {
	return p == PurchasePayload{}
}

// NewPurchase builds a Purchase from a payload under the given identifier.
func NewPurchase(id string, p PurchasePayload) *Purchase {
	return &Purchase{
		PurchaseID: id,
		Date:       p.Date,
		Product:    p.Product,
		Quantity:   p.Quantity,
		Price:      p.Price,
	}
}

// MatchesDate reports whether the purchase's date equals date, compared
// case-insensitively as a raw string. There is no semantic date parsing.
func (p Purchase) MatchesDate(date string) bool {
	return strings.EqualFold(p.Date, date)
}
