package normalisers

import (
	"context"
	"sort"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry maps column types to their normalisers. Registration
// happens at startup; dispatch is by the column's classified type.
type Registry struct {
	normalisers map[domain.ColumnType]driven.ColumnNormaliser
}

// NewRegistry creates an empty normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[domain.ColumnType]driven.ColumnNormaliser),
	}
}

// Register adds a normaliser, replacing any previous normaliser for the
// same column type.
func (r *Registry) Register(normaliser driven.ColumnNormaliser) {
	r.normalisers[normaliser.Type()] = normaliser
}

// Normalise dispatches the column to the normaliser registered for its
// type. Columns with no registered normaliser pass through unchanged
// with an empty result.
func (r *Registry) Normalise(ctx context.Context, column *domain.Column) (*driven.NormaliseResult, error) {
	if column == nil {
		return nil, domain.ErrInvalidInput
	}

	normaliser, ok := r.normalisers[column.Type]
	if !ok {
		return &driven.NormaliseResult{}, nil
	}
	return normaliser.Normalise(ctx, column)
}

// SupportedTypes returns the column types that have a registered
// normaliser, sorted for stable output.
func (r *Registry) SupportedTypes() []domain.ColumnType {
	types := make([]domain.ColumnType, 0, len(r.normalisers))
	for columnType := range r.normalisers {
		types = append(types, columnType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
