// Seed command imports records from a YAML fixture file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/seed"
)

var flagSeedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import customer records from a YAML file",
	Long: `Seed reads a YAML file of customers with optional interactions and
purchases and creates them through the record service. Import stops at the
first record that fails validation.

Example:
  rolodex seed --file fixtures/customers.yaml`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&flagSeedFile, "file", "", "path to the seed YAML file (required)")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	f, err := seed.Load(flagSeedFile)
	if err != nil {
		return fmt.Errorf("load seed file: %w", err)
	}

	summary, err := seed.Apply(svc, f)
	if err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}

	if flagJSON {
		return printRecord(summary, "")
	}

	fmt.Printf("Seeded %d customer(s), %d interaction(s), %d purchase(s)\n",
		summary.Customers, summary.Interactions, summary.Purchases)
	return nil
}
