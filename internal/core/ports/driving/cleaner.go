package driving

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// CleanerService runs the cleaning pipeline over workspace files.
type CleanerService interface {
	// Clean loads the CSV file at path, runs the full cleaning pipeline
	// over it and writes the result next to the input with the output
	// suffix. Returns the report describing what changed.
	Clean(ctx context.Context, path string) (*domain.CleanReport, error)

	// Files returns the CSV files available in the workspace, sorted by
	// name. Returns domain.ErrNoFiles if the workspace has none.
	Files(ctx context.Context) ([]domain.FileInfo, error)

	// Watch streams workspace file events until ctx is cancelled, so
	// callers can refresh their file listing. The returned channel is
	// closed when watching stops.
	Watch(ctx context.Context) (<-chan domain.FileEvent, error)
}
