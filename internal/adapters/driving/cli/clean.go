package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

var (
	cleanOutput    string
	cleanNoHistory bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean a CSV file",
	Long: `Cleans a single CSV file and writes the result next to the source.

Column types are inferred from the data: columns whose values parse as
dates become temporal, columns of numbers become numeric, everything
else stays textual. Each value is then rewritten into its column's
canonical format, empty and duplicate rows are dropped, and a summary
of the changes is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "write the cleaned file to this path")
	cleanCmd.Flags().BoolVar(&cleanNoHistory, "no-history", false, "do not record this run in history")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	service := cleanerService
	if cleanNoHistory {
		service = cleanerNoHistory
	}
	if service == nil {
		return errors.New("cleaner service not configured")
	}

	path := args[0]

	printBanner(cmd)
	cmd.Printf("Cleaning %s...\n", path)

	report, err := service.Clean(context.Background(), path)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	// The pipeline derives the output path from the configured suffix;
	// an explicit --output moves the file afterwards.
	if cleanOutput != "" && cleanOutput != report.OutputPath {
		if err := os.Rename(report.OutputPath, cleanOutput); err != nil {
			return fmt.Errorf("moving output to %s: %w", cleanOutput, err)
		}
		report.OutputPath = cleanOutput
	}

	printReport(cmd, report)
	return nil
}

// printBanner writes the tool banner.
func printBanner(cmd *cobra.Command) {
	rule := strings.Repeat("=", 50)
	cmd.Println(rule)
	cmd.Println("CSV DATA CLEANING TOOL")
	cmd.Println(rule)
	cmd.Println()
}

// printReport writes the run summary.
func printReport(cmd *cobra.Command, report *domain.CleanReport) {
	cmd.Println()
	cmd.Printf("  Rows:       %d in, %d out\n", report.RowsIn, report.RowsOut)
	cmd.Printf("  Empty:      %d dropped\n", report.EmptyRowsDropped)
	cmd.Printf("  Duplicates: %d dropped\n", report.DuplicateRowsDropped)
	if coerced := report.CoercedMissing(); coerced > 0 {
		cmd.Printf("  Coerced:    %d values set missing\n", coerced)
	}
	if report.Duration > 0 {
		cmd.Printf("  Took:       %s\n", report.Duration)
	}

	if len(report.Columns) > 0 {
		cmd.Println()
		cmd.Println("  Columns:")
		for _, col := range report.Columns {
			if col.CoercedMissing > 0 {
				cmd.Printf("    %-24s %s (%d coerced)\n", col.Name, col.Type, col.CoercedMissing)
			} else {
				cmd.Printf("    %-24s %s\n", col.Name, col.Type)
			}
		}
	}

	cmd.Println()
	cmd.Printf("Cleaned file saved to: %s\n", report.OutputPath)
}
