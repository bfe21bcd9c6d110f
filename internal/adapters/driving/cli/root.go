// Package cli provides the cobra command tree for vitrine.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/adapters/driven/catalog"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
	"github.com/mdsolution/vitrine/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// annotationSkipWiring marks commands that run without services.
const annotationSkipWiring = "vitrine/skip-wiring"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Services available to commands once wired.
var (
	wired           bool
	settingsService driving.SettingsService
	contentService  driving.ContentService
	recordService   driving.RecordService
	seedService     driving.SeedService
	fallbackCatalog *catalog.Catalog
	recordWatcher   driven.RecordWatcher
	closeServices   func() error
)

var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "Resolve the agency's offerings for every display surface",
	Long: `vitrine fetches service records from the admin content service and
resolves them, surface by surface, against the built-in fallback catalogs.

Every surface always renders complete offerings: fields missing from a
remote record are filled from the fallback entry, and a surface with no
qualifying records (or an unreachable source) renders its fallback catalog.`,
	SilenceUsage:      true,
	PersistentPreRunE: persistentPreRun,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolution details to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.vitrine)")
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if wired || cmd.Annotations[annotationSkipWiring] == "true" {
		return nil
	}
	return wire(configDir)
}

func shutdown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Command output goes to stdout so it
// can be piped; cobra would otherwise print to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
