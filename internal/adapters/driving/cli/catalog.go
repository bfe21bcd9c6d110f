package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/adapters/driven/catalog"
	"github.com/mdsolution/vitrine/internal/adapters/driven/config/file"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the fallback catalogs",
	Long: `Inspect and validate the fallback catalogs.

The built-in catalogs can be overridden per surface with a TOML or YAML
file set via 'vitrine config set catalog.path <file>'.`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog override file",
	Long: `Load the built-in catalogs with an override file applied and check that
every surface has at least one entry and every entry is complete.

Without a file the configured catalog.path is validated.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationSkipWiring: "true"},
	RunE:        runCatalogValidate,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [surface]",
	Short: "Show the fallback catalogs",
	Long: `Print the effective fallback catalogs in the override file layout.

With a surface name only that surface's entries are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogShow,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		path = store.GetString("catalog.path")
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "built-in catalogs"
	}
	cmd.Printf("%s: OK\n", source)
	for _, s := range cat.Surfaces() {
		entries, _ := cat.Catalog(s.Name) //nolint:errcheck // surface comes from the catalog itself
		cmd.Printf("  %-16s %d entries\n", s.Name, len(entries))
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	if fallbackCatalog == nil {
		return errors.New("catalog not loaded")
	}

	if len(args) == 0 {
		data, err := fallbackCatalog.Export()
		if err != nil {
			return err
		}
		cmd.Print(string(data))
		return nil
	}

	surface, err := fallbackCatalog.Surface(args[0])
	if err != nil {
		return err
	}
	entries, err := fallbackCatalog.Catalog(surface.Name)
	if err != nil {
		return err
	}

	cmd.Printf("%s: %s (category %s, page %s)\n", surface.Name, surface.Title, surface.Category, surface.Page)
	for i := range entries {
		e := &entries[i]
		cmd.Printf("  %d. %-28s %-18s %s\n", i+1, e.Name, e.Price, e.BadgeText)
	}
	return nil
}
