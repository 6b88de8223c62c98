// Package cli implements the csvclean command-line interface.
// Commands receive their services through SetServices at startup and
// print through cobra so tests can capture output.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Services used by the commands, injected once via SetServices.
var (
	cleanerService driving.CleanerService

	// cleanerNoHistory is the cleaner wired without a run store. The
	// clean command switches to it for --no-history.
	cleanerNoHistory driving.CleanerService

	settingsService driving.SettingsService
	historyService  driving.HistoryService
)

// verbose enables pipeline logging on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "csvclean",
	Short: "Clean CSV files for data analysis",
	Long: `csvclean tidies CSV files so they load cleanly into analysis tools.

Each column is classified as temporal, numeric or textual. Temporal
values are rewritten to a single canonical timestamp format, numeric
values to plain decimal form, and values that fail their column's
format are set missing. Empty and duplicate rows are dropped, and the
cleaned table is written next to the source file.

Run without arguments on a terminal to open the interactive picker.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline progress to stderr")
}

// SetServices injects the driving services the commands call.
// cleanerNoHist is the cleaner wired without history recording.
func SetServices(
	cleaner driving.CleanerService,
	cleanerNoHist driving.CleanerService,
	settings driving.SettingsService,
	history driving.HistoryService,
) {
	cleanerService = cleaner
	cleanerNoHistory = cleanerNoHist
	settingsService = settings
	historyService = history
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runRoot launches the TUI when attached to a terminal and prints help
// otherwise, so piping csvclean output stays sensible.
func runRoot(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}
