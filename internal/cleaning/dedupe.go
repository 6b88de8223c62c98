package cleaning

import (
	"context"
	"strconv"
	"strings"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure DedupeStage implements the interface.
var _ driven.Stage = (*DedupeStage)(nil)

// DedupeStage removes rows that are exact duplicates of an earlier row,
// keeping the first occurrence. Two rows are duplicates when every cell
// pair is equal, with missing equal to missing.
type DedupeStage struct{}

// NewDedupeStage creates the duplicate-removal stage.
func NewDedupeStage() *DedupeStage {
	return &DedupeStage{}
}

// Name returns the stage name.
func (s *DedupeStage) Name() string {
	return "dedupe"
}

// Apply drops duplicate rows, preserving the relative order of the rows
// kept.
func (s *DedupeStage) Apply(_ context.Context, table *domain.Table, report *domain.CleanReport) error {
	rows := table.RowCount()
	if rows == 0 {
		return nil
	}

	seen := make(map[string]struct{}, rows)
	keep := make([]bool, rows)
	for i := 0; i < rows; i++ {
		key := rowKey(table, i)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep[i] = true
	}

	dropped := table.KeepRows(keep)
	report.DuplicateRowsDropped = dropped
	if dropped > 0 {
		logger.Debug("dropped %d duplicate rows", dropped)
	}
	return nil
}

// rowKey builds a collision-free key for the row: missing cells render
// as "_" and present cells as their quoted value. Quoting keeps "a","b"
// distinct from "ab","" and present "_" distinct from missing.
func rowKey(table *domain.Table, row int) string {
	var b strings.Builder
	for j := range table.Columns {
		cell := table.Columns[j].Cells[row]
		if cell.Missing {
			b.WriteByte('_')
			continue
		}
		b.WriteString(strconv.Quote(cell.Value))
	}
	return b.String()
}
