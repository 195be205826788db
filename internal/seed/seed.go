// Package seed loads customer fixtures from a YAML file and applies them
// through the service operations. Seeding takes the same path as any caller:
// payload validation, generated identifiers, and the two-write embedding all
// apply; nothing is written to the stores directly.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/pkg/crm"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// File is the root of a seed document.
type File struct {
	Customers []Entry `yaml:"customers"`
}

// Entry describes one customer with optional nested history.
type Entry struct {
	types.CustomerPayload `yaml:",inline"`
	Interactions          []types.InteractionPayload `yaml:"interactions"`
	Purchases             []types.PurchasePayload    `yaml:"purchases"`
}

// Summary counts the records created by Apply.
type Summary struct {
	Customers    int
	Interactions int
	Purchases    int
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Apply creates every entry through the service. It stops on the first
// failure; entries created before the failure remain, consistent with the
// absence of cross-store transactions everywhere else.
func Apply(svc *crm.Service, f *File) (Summary, error) {
	var sum Summary

	for n, entry := range f.Customers {
		customer, err := svc.AddCustomer(entry.CustomerPayload)
		if err != nil {
			return sum, fmt.Errorf("seeding customer %d: %w", n, err)
		}
		sum.Customers++

		for _, p := range entry.Interactions {
			if _, err := svc.AddInteraction(customer.CustomerID, p); err != nil {
				return sum, fmt.Errorf("seeding interaction for customer %d: %w", n, err)
			}
			sum.Interactions++
		}
		for _, p := range entry.Purchases {
			if _, err := svc.AddPurchase(customer.CustomerID, p); err != nil {
				return sum, fmt.Errorf("seeding purchase for customer %d: %w", n, err)
			}
			sum.Purchases++
		}
	}

	return sum, nil
}
