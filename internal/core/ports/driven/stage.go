package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// Stage is one step of the cleaning pipeline (e.g., classify, normalise,
// prune, dedupe). Stages mutate the table in place and record what they
// did on the report.
type Stage interface {
	// Name returns the stage name for logging.
	Name() string

	// Apply runs the stage over the table. Apply must leave the table
	// rectangular: every column keeps the same number of cells.
	Apply(ctx context.Context, table *domain.Table, report *domain.CleanReport) error
}

// CleanPipeline chains the cleaning stages over a table.
type CleanPipeline interface {
	// Run applies all stages in order and returns the report describing
	// what changed. The table is mutated in place; if a stage fails the
	// table is left in an unspecified state and must be discarded.
	Run(ctx context.Context, table *domain.Table) (*domain.CleanReport, error)
}
