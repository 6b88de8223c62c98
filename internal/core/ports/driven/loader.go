package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// TableLoader reads tabular data from a file into a domain table.
// Implementations decide the on-disk format (e.g., CSV).
type TableLoader interface {
	// Load reads the file at path and returns its contents as a table.
	// Cell values are trimmed and missing-value tokens are converted to
	// missing cells during loading. Returns an error wrapping
	// domain.ErrLoad if the file cannot be read or parsed.
	Load(ctx context.Context, path string) (*domain.Table, error)
}

// TableWriter persists a table to a file.
type TableWriter interface {
	// Write serialises the table to the file at path, creating or
	// truncating it. Missing cells are written as empty fields. Returns
	// an error wrapping domain.ErrWrite on failure; on failure no
	// partial output file is left behind.
	Write(ctx context.Context, table *domain.Table, path string) error
}
