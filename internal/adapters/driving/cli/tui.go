package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	CleanerService  driving.CleanerService
	SettingsService driving.SettingsService
	HistoryService  driving.HistoryService

	// CleanerForDir rebuilds the cleaner over a different workspace
	// directory. Used when --dir overrides the configured workspace for
	// one session without persisting the change.
	CleanerForDir func(dir string) driving.CleanerService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiDir is the --dir flag value.
var tuiDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for csvclean.

The TUI lists the CSV files in your workspace directory, cleans the
selected file, and shows a report of what changed. The listing refreshes
automatically as files appear and disappear.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Clean / Select
  Esc      - Back / Cancel
  q        - Quit (from menu)`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiDir, "dir", "d", "", "workspace directory to list (overrides configuration)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration
	ports := &tui.Ports{}

	if tuiConfig != nil {
		ports.Cleaner = tuiConfig.CleanerService
		ports.Settings = tuiConfig.SettingsService
		ports.History = tuiConfig.HistoryService

		if tuiDir != "" && tuiConfig.CleanerForDir != nil {
			ports.Cleaner = tuiConfig.CleanerForDir(tuiDir)
		}
	}

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	// Create and run the bubbletea program
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
