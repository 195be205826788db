// This file implements the per-entity store accessor for the SQLite backend.
// One accessor exists per entity kind; all of them share the same row shape
// (id, JSON record, insertion sequence) and differ only in how they encode
// and decode the record column.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Compile-time interface check: store must implement Store.
var _ types.Store = (*store)(nil)

// store implements types.Store for a single entity kind. Each operation is a
// single synchronous read-modify-write against the backing table; no
// operation touches more than one table.
type store struct {
	backend *Backend
	table   string
	decode  func([]byte) (any, error)
	encode  func(any) ([]byte, error)
}

func newStore(b *Backend, table string, decode func([]byte) (any, error), encode func(any) ([]byte, error)) *store {
	return &store{backend: b, table: table, decode: decode, encode: encode}
}

// Get retrieves the record with the given id.
// Returns ErrNotFound if no record exists under that id.
func (s *store) Get(id string) (any, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, types.ErrRegistryDetached
	}
	return s.getLocked(id)
}

// Insert creates or replaces the record under id and returns the previous
// record, or nil if the id was absent. Create and update share this one
// primitive; no existence pre-check is performed here.
func (s *store) Insert(id string, record any) (any, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return nil, types.ErrRegistryDetached
	}

	data, err := s.encode(record)
	if err != nil {
		return nil, err
	}

	previous, err := s.getLocked(id)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	// The upsert keeps the original row, so insertion order is stable
	// across replacements.
	_, err = s.backend.db.Exec(
		"INSERT INTO "+s.table+" (id, record) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET record = excluded.record",
		id, string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", s.table, err)
	}

	return previous, nil
}

// Remove deletes the record under id and returns it.
// Returns ErrNotFound if no record exists under that id.
func (s *store) Remove(id string) (any, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return nil, types.ErrRegistryDetached
	}

	removed, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.backend.db.Exec("DELETE FROM "+s.table+" WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting from %s: %w", s.table, err)
	}

	return removed, nil
}

// Values returns every record in the store in insertion order.
// Returns an empty slice, never nil, when the store is empty.
func (s *store) Values() ([]any, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, types.ErrRegistryDetached
	}

	rows, err := s.backend.db.Query("SELECT record FROM " + s.table + " ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", s.table, err)
		}
		record, err := s.decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", s.table, err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", s.table, err)
	}

	return results, nil
}

// Contains reports whether a record exists under id.
func (s *store) Contains(id string) (bool, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return false, types.ErrRegistryDetached
	}

	var one int
	err := s.backend.db.QueryRow("SELECT 1 FROM "+s.table+" WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", s.table, err)
	}
	return true, nil
}

// getLocked fetches and decodes a single record. The caller must hold the
// backend lock (read or write).
func (s *store) getLocked(id string) (any, error) {
	var raw string
	err := s.backend.db.QueryRow("SELECT record FROM "+s.table+" WHERE id = ?", id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s record %s: %w", s.table, id, err)
	}
	return s.decode([]byte(raw))
}

// Record codecs. Each store accepts exactly one concrete entity type;
// anything else reports ErrInvalidRecord.

func encodeCustomer(record any) ([]byte, error) {
	c, ok := record.(*types.Customer)
	if !ok {
		return nil, types.ErrInvalidRecord
	}
	return json.Marshal(c)
}

func decodeCustomer(data []byte) (any, error) {
	var c types.Customer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding customer: %w", err)
	}
	if c.Interactions == nil {
		c.Interactions = []types.Interaction{}
	}
	if c.Purchases == nil {
		c.Purchases = []types.Purchase{}
	}
	return &c, nil
}

func encodeInteraction(record any) ([]byte, error) {
	i, ok := record.(*types.Interaction)
	if !ok {
		return nil, types.ErrInvalidRecord
	}
	return json.Marshal(i)
}

func decodeInteraction(data []byte) (any, error) {
	var i types.Interaction
	if err := json.Unmarshal(data, &i); err != nil {
		return nil, fmt.Errorf("decoding interaction: %w", err)
	}
	return &i, nil
}

func encodePurchase(record any) ([]byte, error) {
	p, ok := record.(*types.Purchase)
	if !ok {
		return nil, types.ErrInvalidRecord
	}
	return json.Marshal(p)
}

func decodePurchase(data []byte) (any, error) {
	var p types.Purchase
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding purchase: %w", err)
	}
	return &p, nil
}
