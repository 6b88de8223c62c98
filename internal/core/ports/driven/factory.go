package driven

import (
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// CleanFactory builds the per-run pieces of a cleaning run. Loaders and
// pipelines depend on run settings (missing tokens, date layouts,
// thresholds), so both are built fresh for each run rather than once at
// startup. Settings edited in a long-lived session then apply to the
// next run.
type CleanFactory interface {
	// Loader returns a table loader configured for the given settings.
	Loader(settings domain.CleanSettings) TableLoader

	// Pipeline returns a cleaning pipeline configured for the given
	// settings.
	Pipeline(settings domain.CleanSettings) CleanPipeline
}
