// Customer commands manage customer records.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customer records",
}

var (
	customerName    string
	customerCompany string
	customerEmail   string
	customerPhone   string
)

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new customer",
	Long: `Add creates a new customer record with a generated identifier.

Example:
  rolodex customer add --name "Ada Lovelace" --company "Analytical Engines"
  rolodex customer add --name "Ada Lovelace" --email ada@example.com --json`,
	Args: cobra.NoArgs,
	RunE: runCustomerAdd,
}

var customerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a customer by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerGet,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	Args:  cobra.NoArgs,
	RunE:  runCustomerList,
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update customer fields",
	Long: `Update replaces fields of an existing customer record. Fields not
named by a flag keep their stored value, and embedded interactions and
purchases are preserved.

Example:
  rolodex customer update 5f0c0d5e-1a2b-4c3d-8e4f-5a6b7c8d9e0f --phone "+1 555 0100"`,
	Args: cobra.ExactArgs(1),
	RunE: runCustomerUpdate,
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerDelete,
}

func init() {
	customerAddCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	customerAddCmd.Flags().StringVar(&customerCompany, "company", "", "company name")
	customerAddCmd.Flags().StringVar(&customerEmail, "email", "", "email address")
	customerAddCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")

	customerUpdateCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	customerUpdateCmd.Flags().StringVar(&customerCompany, "company", "", "company name")
	customerUpdateCmd.Flags().StringVar(&customerEmail, "email", "", "email address")
	customerUpdateCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerGetCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	customer, err := svc.AddCustomer(types.CustomerPayload{
		Name:    customerName,
		Company: customerCompany,
		Email:   customerEmail,
		Phone:   customerPhone,
	})
	if err != nil {
		return fmt.Errorf("add customer: %w", err)
	}

	return printRecord(customer, fmt.Sprintf("Created customer: %s", customer.CustomerID))
}

func runCustomerGet(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	customer, err := svc.GetCustomer(args[0])
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}

	plain := fmt.Sprintf("%s  %s  %s  %s  %s (%d interactions, %d purchases)",
		customer.CustomerID, customer.Name, customer.Company, customer.Email,
		customer.Phone, len(customer.Interactions), len(customer.Purchases))
	return printRecord(customer, plain)
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	customers, err := svc.ListCustomers()
	if err != nil {
		return fmt.Errorf("list customers: %w", err)
	}

	if flagJSON {
		return printRecord(customers, "")
	}

	printCustomerTable(customers)
	return nil
}

func runCustomerUpdate(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	customer, err := svc.GetCustomer(args[0])
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}

	if cmd.Flags().Changed("name") {
		customer.Name = customerName
	}
	if cmd.Flags().Changed("company") {
		customer.Company = customerCompany
	}
	if cmd.Flags().Changed("email") {
		customer.Email = customerEmail
	}
	if cmd.Flags().Changed("phone") {
		customer.Phone = customerPhone
	}

	updated, err := svc.UpdateCustomer(customer)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}

	return printRecord(updated, fmt.Sprintf("Updated customer: %s", updated.CustomerID))
}

func runCustomerDelete(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	id, err := svc.DeleteCustomer(args[0])
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	fmt.Printf("Deleted customer: %s\n", id)
	return nil
}

// printCustomerTable prints customers in a human-readable table format.
func printCustomerTable(customers []*types.Customer) {
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tINTERACTIONS\tPURCHASES")
	for _, c := range customers {
		shortID := c.CustomerID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			shortID, c.Name, c.Company, c.Email,
			len(c.Interactions), len(c.Purchases))
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d customer(s)\n", len(customers))
}
