package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change where service records come from and where vitrine keeps its data.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. An empty value clears optional settings.

Keys:
  source.kind             http, sqlite, file or none
  source.admin_url        admin content service base URL
  source.api_key          admin content service key (prefer set-key)
  source.table            services table name
  source.timeout_seconds  fetch timeout
  source.rate_per_second  request rate towards the admin service
  source.records_file     JSON export path for the file source
  catalog.path            fallback catalog override (TOML or YAML)
  data.dir                local store directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the admin service API key",
	Long:  `Prompt for the admin service API key without echoing it and store it.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Kind: %s\n", settings.Source.Kind.Description())
	switch settings.Source.Kind {
	case domain.SourceKindHTTP:
		cmd.Printf("  Admin URL: %s\n", orNotSet(settings.Source.AdminURL))
		if settings.Source.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Source.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
		cmd.Printf("  Table: %s\n", settings.Source.Table)
		cmd.Printf("  Rate: %g req/s\n", settings.Source.RatePerSecond)
	case domain.SourceKindFile:
		cmd.Printf("  Records file: %s\n", orNotSet(settings.Source.RecordsFile))
	case domain.SourceKindSQLite, domain.SourceKindNone:
	}
	cmd.Printf("  Timeout: %s\n", settings.Source.Timeout)
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Override: %s\n", orNotSet(settings.CatalogPath))
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Directory: %s\n", orDefault(settings.DataDir))
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Every surface will render its fallback catalog until this is fixed.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if key == "source.kind" && value != "" {
		if idx := parseChoice(value, len(domain.AllSourceKinds()), 0); idx > 0 {
			value = domain.AllSourceKinds()[idx-1].String()
		}
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if value == "" {
		cmd.Printf("Cleared %s\n", key)
	} else {
		cmd.Printf("Set %s\n", key)
	}
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key is required")
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Printf("Stored API key %s\n", maskAPIKey(key))
	return nil
}

// Helper functions.

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func orDefault(v string) string {
	if v == "" {
		return "(default)"
	}
	return v
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
