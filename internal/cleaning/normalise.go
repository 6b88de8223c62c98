package cleaning

import (
	"context"
	"fmt"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure NormaliseStage implements the interface.
var _ driven.Stage = (*NormaliseStage)(nil)

// NormaliseStage rewrites every column through the normaliser registry.
// Columns whose type has no registered normaliser (numeric) pass
// through unchanged.
type NormaliseStage struct {
	registry driven.NormaliserRegistry
	excluded map[string]struct{}
}

// NewNormaliseStage creates the normalisation stage. Columns named in
// exclude keep their loaded values regardless of type.
func NewNormaliseStage(registry driven.NormaliserRegistry, exclude []string) *NormaliseStage {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	return &NormaliseStage{registry: registry, excluded: excluded}
}

// Name returns the stage name.
func (s *NormaliseStage) Name() string {
	return "normalise"
}

// Apply normalises each column in header order and records per-column
// coercion counts on the report.
func (s *NormaliseStage) Apply(ctx context.Context, table *domain.Table, report *domain.CleanReport) error {
	for i := range table.Columns {
		column := &table.Columns[i]
		if _, ok := s.excluded[column.Name]; ok {
			logger.Debug("column %q excluded from normalisation", column.Name)
			continue
		}

		result, err := s.registry.Normalise(ctx, column)
		if err != nil {
			return fmt.Errorf("normalise column %q: %w", column.Name, err)
		}

		if result.CoercedMissing > 0 {
			s.recordCoerced(report, column.Name, result.CoercedMissing)
			logger.Debug("column %q: %d values coerced to missing", column.Name, result.CoercedMissing)
		}
	}
	return nil
}

// recordCoerced adds the coercion count to the column's report entry.
func (s *NormaliseStage) recordCoerced(report *domain.CleanReport, name string, coerced int) {
	for i := range report.Columns {
		if report.Columns[i].Name == name {
			report.Columns[i].CoercedMissing += coerced
			return
		}
	}
	report.Columns = append(report.Columns, domain.ColumnReport{Name: name, CoercedMissing: coerced})
}
