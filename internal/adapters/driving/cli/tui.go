package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/adapters/driving/tui"
	"github.com/mdsolution/vitrine/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for previewing surfaces.

Selecting a surface shows its fallback catalog at once and swaps in the
resolved offerings when the fetch completes.

Controls:
  ↑/k, ↓/j - Navigate
  ←/h, →/l - Move between offerings
  Enter    - Preview surface
  r        - Re-resolve
  Esc      - Back
  ?        - Toggle help
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panicked: %v", r)
		}
	}()

	// Log lines would corrupt the alternate screen.
	prev := logger.SetLevel(logger.LevelOff)
	defer logger.SetLevel(prev)

	app, err := tui.NewApp(tui.NewPorts(contentService, recordService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
