// Purchase commands manage purchase records.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Manage purchase records",
}

var (
	purchaseDate     string
	purchaseProduct  string
	purchaseQuantity int
	purchasePrice    int
)

var purchaseAddCmd = &cobra.Command{
	Use:   "add <customer-id>",
	Short: "Record a purchase for a customer",
	Long: `Add creates a purchase record and embeds a copy of it in the
customer's record.

Example:
  rolodex purchase add 5f0c0d5e-1a2b-4c3d-8e4f-5a6b7c8d9e0f --product "widget" --quantity 3 --price 1200`,
	Args: cobra.ExactArgs(1),
	RunE: runPurchaseAdd,
}

var purchaseGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a purchase by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchaseGet,
}

var purchaseListCmd = &cobra.Command{
	Use:   "list <customer-id>",
	Short: "List the purchases embedded in a customer record",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchaseList,
}

var purchaseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update purchase fields",
	Long: `Update replaces fields of a standalone purchase record. Copies
embedded in customer records are left as they were recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPurchaseUpdate,
}

var purchaseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a purchase by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchaseDelete,
}

var purchaseByDateCmd = &cobra.Command{
	Use:   "by-date",
	Short: "List purchases matching a date",
	Long: `By-date lists standalone purchases whose date field matches the
given value, ignoring letter case. Dates are compared as raw strings, so
"2026-02-01" and "2026-2-1" are different dates.

Example:
  rolodex purchase by-date --date 2026-02-01`,
	Args: cobra.NoArgs,
	RunE: runPurchaseByDate,
}

func init() {
	for _, c := range []*cobra.Command{purchaseAddCmd, purchaseUpdateCmd} {
		c.Flags().StringVar(&purchaseDate, "date", "", "purchase date")
		c.Flags().StringVar(&purchaseProduct, "product", "", "product name")
		c.Flags().IntVar(&purchaseQuantity, "quantity", 0, "units purchased")
		c.Flags().IntVar(&purchasePrice, "price", 0, "unit price in cents")
	}
	purchaseByDateCmd.Flags().StringVar(&purchaseDate, "date", "", "date to match (required)")
	_ = purchaseByDateCmd.MarkFlagRequired("date")

	purchaseCmd.AddCommand(purchaseAddCmd)
	purchaseCmd.AddCommand(purchaseGetCmd)
	purchaseCmd.AddCommand(purchaseListCmd)
	purchaseCmd.AddCommand(purchaseUpdateCmd)
	purchaseCmd.AddCommand(purchaseDeleteCmd)
	purchaseCmd.AddCommand(purchaseByDateCmd)
}

func runPurchaseAdd(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	id, err := svc.AddPurchase(args[0], types.PurchasePayload{
		Date:     purchaseDate,
		Product:  purchaseProduct,
		Quantity: purchaseQuantity,
		Price:    purchasePrice,
	})
	if err != nil {
		return fmt.Errorf("add purchase: %w", err)
	}

	if flagJSON {
		purchase, err := svc.GetPurchase(id)
		if err != nil {
			return fmt.Errorf("get created purchase: %w", err)
		}
		return printRecord(purchase, "")
	}

	fmt.Printf("Created purchase: %s\n", id)
	return nil
}

func runPurchaseGet(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	purchase, err := svc.GetPurchase(args[0])
	if err != nil {
		return fmt.Errorf("get purchase: %w", err)
	}

	plain := fmt.Sprintf("%s  %s  %s  qty=%d  price=%d",
		purchase.PurchaseID, purchase.Date, purchase.Product,
		purchase.Quantity, purchase.Price)
	return printRecord(purchase, plain)
}

func runPurchaseList(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	purchases := svc.ListCustomerPurchases(args[0])

	if flagJSON {
		return printRecord(purchases, "")
	}

	printPurchaseTable(purchases)
	return nil
}

func runPurchaseUpdate(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	purchase, err := svc.GetPurchase(args[0])
	if err != nil {
		return fmt.Errorf("get purchase: %w", err)
	}

	if cmd.Flags().Changed("date") {
		purchase.Date = purchaseDate
	}
	if cmd.Flags().Changed("product") {
		purchase.Product = purchaseProduct
	}
	if cmd.Flags().Changed("quantity") {
		purchase.Quantity = purchaseQuantity
	}
	if cmd.Flags().Changed("price") {
		purchase.Price = purchasePrice
	}

	updated, err := svc.UpdatePurchase(purchase)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}

	return printRecord(updated, fmt.Sprintf("Updated purchase: %s", updated.PurchaseID))
}

func runPurchaseDelete(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	id, err := svc.DeletePurchase(args[0])
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}

	fmt.Printf("Deleted purchase: %s\n", id)
	return nil
}

func runPurchaseByDate(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	purchases, err := svc.PurchasesByDate(purchaseDate)
	if err != nil {
		return fmt.Errorf("list purchases by date: %w", err)
	}

	if flagJSON {
		return printRecord(purchases, "")
	}

	flat := make([]types.Purchase, len(purchases))
	for i, item := range purchases {
		flat[i] = *item
	}
	printPurchaseTable(flat)
	return nil
}

// printPurchaseTable prints purchases in a human-readable table format.
func printPurchaseTable(purchases []types.Purchase) {
	if len(purchases) == 0 {
		fmt.Println("No purchases found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tPRODUCT\tQUANTITY\tPRICE")
	for _, p := range purchases {
		shortID := p.PurchaseID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			shortID, p.Date, p.Product, p.Quantity, p.Price)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d purchase(s)\n", len(purchases))
}
