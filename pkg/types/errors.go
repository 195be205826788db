package types

import (
	"errors"
	"fmt"
)

// Operation error taxonomy. Every service operation reports failures as one
// of these sentinels; callers match with errors.Is.
var (
	// ErrNotFound means the identifier is absent from the relevant store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidPayload means the identifier is malformed or the payload is
	// empty.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInternal is reserved for unexpected host failures. No operation in
	// this surface raises it directly.
	ErrInternal = errors.New("internal error")
)

// Registry lifecycle errors.
var (
	ErrRegistryDetached = errors.New("registry is detached")
	ErrAlreadyAttached  = errors.New("registry is already attached")
	ErrStoreNotFound    = errors.New("store not found")
)

// Store operation errors.
var (
	ErrInvalidRecord = errors.New("invalid record type")
)

// NotFoundError reports an absent entity, carrying the entity kind and the
// identifier looked up so callers can surface both.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%s not found", e.Entity, e.ID)
}

// Is reports whether target is ErrNotFound, so errors.Is matches the sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity kind and id.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidPayloadError reports a malformed identifier or an empty payload.
type InvalidPayloadError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %s", e.Reason)
}

// Is reports whether target is ErrInvalidPayload.
func (e *InvalidPayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// NewInvalidPayloadError creates an InvalidPayloadError with the given reason.
func NewInvalidPayloadError(format string, args ...any) *InvalidPayloadError {
	return &InvalidPayloadError{Reason: fmt.Sprintf(format, args...)}
}
