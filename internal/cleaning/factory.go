package cleaning

import (
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driven/storage/csvfile"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/normalisers"
)

// Ensure Factory implements the interface.
var _ driven.CleanFactory = (*Factory)(nil)

// Factory assembles the loader and pipeline for a cleaning run from its
// settings.
type Factory struct{}

// NewFactory creates a clean factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Loader returns a CSV loader that treats the settings' missing tokens
// as missing values.
func (f *Factory) Loader(settings domain.CleanSettings) driven.TableLoader {
	return csvfile.NewLoader(settings.MissingTokens)
}

// Pipeline returns the standard pipeline for the settings, with the
// default normaliser registry.
func (f *Factory) Pipeline(settings domain.CleanSettings) driven.CleanPipeline {
	return NewDefaultPipeline(settings, normalisers.DefaultRegistry(settings))
}
