package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// RunStore persists reports of completed cleaning runs.
type RunStore interface {
	// Save stores a run report.
	Save(ctx context.Context, report *domain.CleanReport) error

	// Get retrieves a run report by ID.
	// Returns domain.ErrNotFound if no run with that ID exists.
	Get(ctx context.Context, id string) (*domain.CleanReport, error)

	// List returns run reports ordered by start time, newest first.
	// A limit of 0 returns all runs.
	List(ctx context.Context, limit int) ([]domain.CleanReport, error)

	// Clear removes all run reports and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
