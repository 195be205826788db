// Package ident generates and validates Rolodex entity identifiers.
//
// An identifier is a 36-character token in the 8-4-4-4-12 hex-grouped layout
// of a version-4 UUID: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx, with y drawn
// from {8, 9, a, b}. Tokens are derived from the current clock and a
// cryptographically strong random source. Generation performs no
// de-duplication against existing keys; collision within the practical
// lifetime of a store is treated as statistically impossible.
package ident

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"regexp"
	"time"
)

// pattern matches the fixed 8-4-4-4-12 hex-grouped identifier layout.
// Validation is structural only: any hex digits are accepted in any group,
// case-insensitively, so identifiers minted by other writers still pass.
var pattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// New returns a fresh identifier. The leading group carries the low 32 bits
// of the wall clock in nanoseconds; the remaining 12 bytes come from
// crypto/rand, with the version nibble forced to 4 and the variant nibble to
// one of {8, 9, a, b}.
func New() string {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().UnixNano()))
	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand never fails on supported platforms; if it does there
		// is no safe way to mint identifiers.
		panic(fmt.Sprintf("ident: reading random source: %v", err))
	}

	b[6] = (b[6] & 0x0f) | 0x40 // version nibble: 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant nibble: 8, 9, a, or b

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// Valid reports whether id is a structurally well-formed identifier.
func Valid(id string) bool {
	return pattern.MatchString(id)
}
