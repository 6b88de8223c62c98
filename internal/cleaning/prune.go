package cleaning

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure PruneStage implements the interface.
var _ driven.Stage = (*PruneStage)(nil)

// PruneStage drops empty rows: rows whose every cell is missing. Rows
// with some missing cells are retained untouched, no values are
// imputed.
type PruneStage struct{}

// NewPruneStage creates the empty-row pruning stage.
func NewPruneStage() *PruneStage {
	return &PruneStage{}
}

// Name returns the stage name.
func (s *PruneStage) Name() string {
	return "prune"
}

// Apply removes all-missing rows, preserving the relative order of the
// rows kept.
func (s *PruneStage) Apply(_ context.Context, table *domain.Table, report *domain.CleanReport) error {
	rows := table.RowCount()
	if rows == 0 {
		return nil
	}

	keep := make([]bool, rows)
	for i := 0; i < rows; i++ {
		for j := range table.Columns {
			if !table.Columns[j].Cells[i].Missing {
				keep[i] = true
				break
			}
		}
	}

	dropped := table.KeepRows(keep)
	report.EmptyRowsDropped = dropped
	if dropped > 0 {
		logger.Debug("dropped %d empty rows", dropped)
	}
	return nil
}
