// Interaction commands manage interaction records.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var interactionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Manage interaction records",
}

var (
	interactionDate        string
	interactionType        string
	interactionDescription string
	interactionStatus      string
	interactionComments    string
)

var interactionAddCmd = &cobra.Command{
	Use:   "add <customer-id>",
	Short: "Record an interaction for a customer",
	Long: `Add creates an interaction record and embeds a copy of it in the
customer's record.

Example:
  rolodex interaction add 5f0c0d5e-1a2b-4c3d-8e4f-5a6b7c8d9e0f --type call --status Open`,
	Args: cobra.ExactArgs(1),
	RunE: runInteractionAdd,
}

var interactionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve an interaction by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runInteractionGet,
}

var interactionListCmd = &cobra.Command{
	Use:   "list <customer-id>",
	Short: "List the interactions embedded in a customer record",
	Args:  cobra.ExactArgs(1),
	RunE:  runInteractionList,
}

var interactionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update interaction fields",
	Long: `Update replaces fields of a standalone interaction record. Copies
embedded in customer records are left as they were recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runInteractionUpdate,
}

var interactionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an interaction by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runInteractionDelete,
}

var interactionFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List interactions matching a status",
	Long: `Filter lists standalone interactions whose status matches the given
value, ignoring letter case.

Example:
  rolodex interaction filter --status open`,
	Args: cobra.NoArgs,
	RunE: runInteractionFilter,
}

func init() {
	for _, c := range []*cobra.Command{interactionAddCmd, interactionUpdateCmd} {
		c.Flags().StringVar(&interactionDate, "date", "", "interaction date")
		c.Flags().StringVar(&interactionType, "type", "", "interaction type (call, email, meeting, ...)")
		c.Flags().StringVar(&interactionDescription, "description", "", "free-form description")
		c.Flags().StringVar(&interactionStatus, "status", "", "interaction status")
		c.Flags().StringVar(&interactionComments, "comments", "", "follow-up comments")
	}
	interactionFilterCmd.Flags().StringVar(&interactionStatus, "status", "", "status to match (required)")
	_ = interactionFilterCmd.MarkFlagRequired("status")

	interactionCmd.AddCommand(interactionAddCmd)
	interactionCmd.AddCommand(interactionGetCmd)
	interactionCmd.AddCommand(interactionListCmd)
	interactionCmd.AddCommand(interactionUpdateCmd)
	interactionCmd.AddCommand(interactionDeleteCmd)
	interactionCmd.AddCommand(interactionFilterCmd)
}

func runInteractionAdd(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	id, err := svc.AddInteraction(args[0], types.InteractionPayload{
		Date:        interactionDate,
		Kind:        interactionType,
		Description: interactionDescription,
		Status:      interactionStatus,
		Comments:    interactionComments,
	})
	if err != nil {
		return fmt.Errorf("add interaction: %w", err)
	}

	if flagJSON {
		interaction, err := svc.GetInteraction(id)
		if err != nil {
			return fmt.Errorf("get created interaction: %w", err)
		}
		return printRecord(interaction, "")
	}

	fmt.Printf("Created interaction: %s\n", id)
	return nil
}

func runInteractionGet(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	interaction, err := svc.GetInteraction(args[0])
	if err != nil {
		return fmt.Errorf("get interaction: %w", err)
	}

	plain := fmt.Sprintf("%s  %s  %s  %s  %s",
		interaction.InteractionID, interaction.Date, interaction.Kind,
		interaction.Status, interaction.Description)
	return printRecord(interaction, plain)
}

func runInteractionList(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	interactions := svc.ListCustomerInteractions(args[0])

	if flagJSON {
		return printRecord(interactions, "")
	}

	printInteractionTable(interactions)
	return nil
}

func runInteractionUpdate(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	interaction, err := svc.GetInteraction(args[0])
	if err != nil {
		return fmt.Errorf("get interaction: %w", err)
	}

	if cmd.Flags().Changed("date") {
		interaction.Date = interactionDate
	}
	if cmd.Flags().Changed("type") {
		interaction.Kind = interactionType
	}
	if cmd.Flags().Changed("description") {
		interaction.Description = interactionDescription
	}
	if cmd.Flags().Changed("status") {
		interaction.Status = interactionStatus
	}
	if cmd.Flags().Changed("comments") {
		interaction.Comments = interactionComments
	}

	updated, err := svc.UpdateInteraction(interaction)
	if err != nil {
		return fmt.Errorf("update interaction: %w", err)
	}

	return printRecord(updated, fmt.Sprintf("Updated interaction: %s", updated.InteractionID))
}

func runInteractionDelete(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	id, err := svc.DeleteInteraction(args[0])
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}

	fmt.Printf("Deleted interaction: %s\n", id)
	return nil
}

func runInteractionFilter(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer()

	interactions, err := svc.FilterByStatus(interactionStatus)
	if err != nil {
		return fmt.Errorf("filter interactions: %w", err)
	}

	if flagJSON {
		return printRecord(interactions, "")
	}

	flat := make([]types.Interaction, len(interactions))
	for i, item := range interactions {
		flat[i] = *item
	}
	printInteractionTable(flat)
	return nil
}

// printInteractionTable prints interactions in a human-readable table format.
func printInteractionTable(interactions []types.Interaction) {
	if len(interactions) == 0 {
		fmt.Println("No interactions found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tTYPE\tSTATUS\tDESCRIPTION")
	for _, i := range interactions {
		shortID := i.InteractionID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		description := i.Description
		if len(description) > 40 {
			description = description[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID, i.Date, i.Kind, i.Status, description)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d interaction(s)\n", len(interactions))
}
