package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// Workspace provides access to the CSV files in the working directory.
type Workspace interface {
	// Dir returns the absolute path of the workspace directory.
	Dir() string

	// List returns the CSV files currently in the workspace, sorted by
	// name. Hidden files and subdirectories are not included.
	List(ctx context.Context) ([]domain.FileInfo, error)

	// Watch streams file events for the workspace until ctx is
	// cancelled. The returned channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan domain.FileEvent, error)
}
