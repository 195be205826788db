// Package types defines the Store and Registry interfaces, the Customer,
// Interaction, and Purchase entity types, their creation payloads, and the
// standard error types for the Rolodex record store.
// See docs/ARCHITECTURE.md § Main Interface.
package types
