package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past cleaning runs",
	Long: `Lists recorded cleaning runs, newest first.

Recording is controlled by the history.enabled setting and can be
skipped for a single run with clean --no-history.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of runs to list (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()
	runs, err := historyService.List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, runs)
	}

	if len(runs) == 0 {
		cmd.Println("No cleaning runs recorded.")
		if !historyService.Enabled() {
			cmd.Println("History recording is disabled (history.enabled = false).")
		}
		return nil
	}

	cmd.Println("Recent cleaning runs:")
	cmd.Println()
	for i := range runs {
		name := filepath.Base(runs[i].SourcePath)
		cmd.Printf("  %s  %s  %d in, %d out\n",
			name,
			runs[i].StartedAt.Format("2006-01-02 15:04"),
			runs[i].RowsIn,
			runs[i].RowsOut,
		)
		cmd.Printf("    ID: %s\n", runs[i].ID)
		cmd.Println()
	}

	cmd.Printf("Total: %d runs\n", len(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()
	run, err := historyService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run: %s\n\n", run.ID)
	cmd.Printf("  Source:     %s\n", run.SourcePath)
	cmd.Printf("  Output:     %s\n", run.OutputPath)
	if !run.StartedAt.IsZero() {
		cmd.Printf("  Started:    %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	}
	if run.Duration > 0 {
		cmd.Printf("  Took:       %s\n", run.Duration)
	}
	cmd.Printf("  Rows:       %d in, %d out\n", run.RowsIn, run.RowsOut)
	cmd.Printf("  Empty:      %d dropped\n", run.EmptyRowsDropped)
	cmd.Printf("  Duplicates: %d dropped\n", run.DuplicateRowsDropped)
	if coerced := run.CoercedMissing(); coerced > 0 {
		cmd.Printf("  Coerced:    %d values set missing\n", coerced)
	}

	if len(run.Columns) > 0 {
		cmd.Println()
		cmd.Println("  Columns:")
		for _, col := range run.Columns {
			if col.CoercedMissing > 0 {
				cmd.Printf("    %-24s %s (%d coerced)\n", col.Name, col.Type, col.CoercedMissing)
			} else {
				cmd.Printf("    %-24s %s\n", col.Name, col.Type)
			}
		}
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()
	removed, err := historyService.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Printf("Removed %d runs from history.\n", removed)
	return nil
}

func outputHistoryJSON(cmd *cobra.Command, runs []domain.CleanReport) error {
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
