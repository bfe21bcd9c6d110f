package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

var (
	recordsCategory string
	recordsPage     string
	recordsSearch   string
	recordsJSON     bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage service records in the local store",
	Long: `List and remove service records kept in the local SQLite store.

The local store backs the "sqlite" record source and can be populated
with 'vitrine seed'.`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	RunE:  runRecordsList,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the local store with the fallback catalogs",
	Long: `Write every fallback entry into the local store as a service record.

Entries whose category and name are already stored are skipped, so
running seed again never modifies existing records.`,
	RunE: runSeed,
}

func init() {
	recordsListCmd.Flags().StringVar(&recordsCategory, "category", "", "filter by category")
	recordsListCmd.Flags().StringVar(&recordsPage, "page", "", "filter by page tag")
	recordsListCmd.Flags().StringVar(&recordsSearch, "search", "", "filter by name substring")
	recordsListCmd.Flags().BoolVar(&recordsJSON, "json", false, "output as JSON")
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(seedCmd)
}

// recordJSON is the machine-readable form of a stored record.
type recordJSON struct {
	ID            string   `json:"id"`
	Name          *string  `json:"name"`
	Category      string   `json:"category"`
	Page          *string  `json:"page"`
	Price         *string  `json:"price"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"is_active"`
	IsHighlighted *bool    `json:"is_highlighted"`
	DisplayOrder  float64  `json:"display_order"`
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	filter := domain.RecordFilter{
		Category: domain.Category(recordsCategory),
		Page:     recordsPage,
		Search:   recordsSearch,
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return fmt.Errorf("unknown category %q: %w", recordsCategory, domain.ErrInvalidInput)
	}

	records, err := recordService.List(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if recordsJSON {
		out := make([]recordJSON, 0, len(records))
		for i := range records {
			r := &records[i]
			out = append(out, recordJSON{
				ID:            r.ID.String(),
				Name:          r.Name.Ptr(),
				Category:      r.Category.String(),
				Page:          r.Page.Ptr(),
				Price:         r.Price.Ptr(),
				Features:      r.Features,
				IsActive:      r.IsActive.Ptr(),
				IsHighlighted: r.IsHighlighted.Ptr(),
				DisplayOrder:  r.DisplayOrder,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No records stored. Run 'vitrine seed' to copy the fallback catalogs.")
		return nil
	}

	cmd.Printf("%-36s %-5s %-12s %-14s %-6s %s\n", "ID", "ORDER", "CATEGORY", "PAGE", "ACTIVE", "NAME")
	for i := range records {
		r := &records[i]
		cmd.Printf("%-36s %-5g %-12s %-14s %-6t %s\n",
			r.ID.String(), r.DisplayOrder, r.Category, r.Page.Or("-"), r.IsActive.Or(true), r.Name.Or("-"))
	}
	cmd.Printf("\n%d records\n", len(records))
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	cmd.Printf("Deleted record %s\n", args[0])
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedService == nil {
		return errors.New("seed service not configured")
	}

	report, err := seedService.SeedDefaults(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to seed records: %w", err)
	}

	for _, name := range report.Created {
		cmd.Printf("  + %s\n", name)
	}
	cmd.Printf("Created %d records, skipped %d already stored.\n", len(report.Created), len(report.Skipped))
	return nil
}
