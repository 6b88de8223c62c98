package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer persists domain tables as CSV files.
type Writer struct{}

// NewWriter creates a CSV table writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serialises the table to path. The header row holds the column
// names; missing cells are written as empty fields. Output goes to a
// temporary file renamed into place after a successful flush, so no
// partial file is left on failure. Failures wrap domain.ErrWrite.
func (w *Writer) Write(ctx context.Context, table *domain.Table, path string) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", domain.ErrWrite)
	}
	if err := table.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".csvclean-*")
	if err != nil {
		return fmt.Errorf("%w: create temporary file for %s: %w", domain.ErrWrite, path, err)
	}
	tmpPath := tmp.Name()

	if err := w.writeTable(ctx, tmp, table); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", domain.ErrWrite, path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close %s: %w", domain.ErrWrite, path, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: chmod %s: %w", domain.ErrWrite, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename to %s: %w", domain.ErrWrite, path, err)
	}

	logger.Debug("wrote %s: %d rows, %d columns", path, table.RowCount(), table.ColumnCount())
	return nil
}

// writeTable streams the header and rows through a CSV writer.
func (w *Writer) writeTable(ctx context.Context, file *os.File, table *domain.Table) error {
	writer := csv.NewWriter(file)

	if err := writer.Write(table.ColumnNames()); err != nil {
		return err
	}

	rows := table.RowCount()
	record := make([]string, table.ColumnCount())
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for j := range table.Columns {
			cell := table.Columns[j].Cells[i]
			if cell.Missing {
				record[j] = ""
			} else {
				record[j] = cell.Value
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

