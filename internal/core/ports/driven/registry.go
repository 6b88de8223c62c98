package driven

import (
	"context"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for a column.
// It maintains one normaliser per column type and dispatches on the
// column's classified type.
type NormaliserRegistry interface {
	// Normalise rewrites the column using the normaliser registered for
	// its type. Columns with no registered normaliser pass through
	// unchanged with an empty result.
	Normalise(ctx context.Context, column *domain.Column) (*NormaliseResult, error)

	// Register adds a normaliser to the registry, replacing any previous
	// normaliser for the same column type.
	Register(normaliser ColumnNormaliser)

	// SupportedTypes returns the column types that have a registered
	// normaliser.
	SupportedTypes() []domain.ColumnType
}
