package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("customer", "abc-123")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidPayload))
	assert.Contains(t, err.Error(), "customer")
	assert.Contains(t, err.Error(), "abc-123")
}

func TestNotFoundErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("deleting customer: %w", NewNotFoundError("customer", "abc-123"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInvalidPayloadErrorMatchesSentinel(t *testing.T) {
	err := NewInvalidPayloadError("malformed id %q", "not-a-uuid")

	assert.True(t, errors.Is(err, ErrInvalidPayload))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestInteractionMatchesStatus(t *testing.T) {
	i := Interaction{Status: "Closed"}

	assert.True(t, i.MatchesStatus("Closed"))
	assert.True(t, i.MatchesStatus("closed"))
	assert.True(t, i.MatchesStatus("CLOSED"))
	assert.False(t, i.MatchesStatus("Open"))
}

func TestPurchaseMatchesDate(t *testing.T) {
	p := Purchase{Date: "2026-02-01"}

	assert.True(t, p.MatchesDate("2026-02-01"))
	assert.False(t, p.MatchesDate("2026-02-02"))
}
