package normalisers

import (
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/normalisers/temporal"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/normalisers/text"
)

// RegisterDefaults registers the built-in normalisers with the
// registry. Call this during application initialisation.
func RegisterDefaults(r *Registry, settings domain.CleanSettings) {
	r.Register(temporal.New(settings.DateLayouts))
	r.Register(text.New())
}

// DefaultRegistry builds the registry used by the standard cleaning
// pipeline: a temporal and a textual normaliser. Numeric columns have
// no normaliser and pass through unchanged.
func DefaultRegistry(settings domain.CleanSettings) *Registry {
	registry := NewRegistry()
	RegisterDefaults(registry, settings)
	return registry
}
