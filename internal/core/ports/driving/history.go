package driving

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// HistoryService provides access to past cleaning runs.
type HistoryService interface {
	// List returns past runs ordered by start time, newest first.
	// A limit of 0 returns all runs.
	List(ctx context.Context, limit int) ([]domain.CleanReport, error)

	// Get retrieves one run by ID.
	// Returns domain.ErrNotFound if no run with that ID exists.
	Get(ctx context.Context, id string) (*domain.CleanReport, error)

	// Clear removes all recorded runs and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// Enabled reports whether run history is being recorded.
	Enabled() bool
}
