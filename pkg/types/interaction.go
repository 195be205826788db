package types

import "strings"

// Interaction is a single customer contact record. Its lifecycle is
// independent of the owning customer after creation: the customer holds a
// snapshot, the interactions store holds the canonical record.
type Interaction struct {
	InteractionID string `json:"interaction_id" yaml:"interaction_id"`
	Date          string `json:"date" yaml:"date"`
	Kind          string `json:"type" yaml:"type"`
	Description   string `json:"description" yaml:"description"`
	Status        string `json:"status" yaml:"status"`
	Comments      string `json:"comments" yaml:"comments"`
}

// InteractionPayload carries the caller-supplied fields for creating an
// interaction.
type InteractionPayload struct {
	Date        string `json:"date" yaml:"date"`
	Kind        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	Comments    string `json:"comments" yaml:"comments"`
}

// Empty reports whether the payload carries no data at all.
func (p InteractionPayload) Empty() bool {
	return p == InteractionPayload{}
}

// NewInteraction builds an Interaction from a payload under the given
// identifier.
func NewInteraction(id string, p InteractionPayload) *Interaction {
	return &Interaction{
		InteractionID: id,
		Date:          p.Date,
		Kind:          p.Kind,
		Description:   p.Description,
		Status:        p.Status,
		Comments:      p.Comments,
	}
}

// MatchesStatus reports whether the interaction's status equals status,
// compared case-insensitively.
func (i Interaction) MatchesStatus(status string) bool {
	return strings.EqualFold(i.Status, status)
}
