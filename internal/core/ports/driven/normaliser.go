package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// ColumnNormaliser rewrites the values of columns with a specific
// classified type. Each normaliser handles exactly one column type
// (e.g., temporal, textual).
type ColumnNormaliser interface {
	// Type returns the column type this normaliser handles.
	Type() domain.ColumnType

	// Normalise rewrites the column's cells in place and reports what
	// changed. Missing cells are left untouched.
	Normalise(ctx context.Context, column *domain.Column) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalising one column.
type NormaliseResult struct {
	// CoercedMissing is the number of present cells that could not be
	// normalised and were converted to missing.
	CoercedMissing int
}
