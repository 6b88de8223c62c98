package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure CleanerService implements the interface.
var _ driving.CleanerService = (*CleanerService)(nil)

// CleanerService orchestrates cleaning runs: it loads a CSV file, runs
// the pipeline over it, writes the cleaned table next to the source and
// records the run in history.
type CleanerService struct {
	factory   driven.CleanFactory
	writer    driven.TableWriter
	workspace driven.Workspace
	settings  driving.SettingsService
	runStore  driven.RunStore
}

// NewCleanerService creates a new cleaner service.
// The runStore is optional - if nil, runs are not recorded.
func NewCleanerService(
	factory driven.CleanFactory,
	writer driven.TableWriter,
	workspace driven.Workspace,
	settings driving.SettingsService,
	runStore driven.RunStore,
) *CleanerService {
	return &CleanerService{
		factory:   factory,
		writer:    writer,
		workspace: workspace,
		settings:  settings,
		runStore:  runStore,
	}
}

// Clean runs the full cleaning pipeline over the file at path.
func (s *CleanerService) Clean(ctx context.Context, path string) (*domain.CleanReport, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", domain.ErrInvalidInput)
	}

	// 1. Resolve the settings for this run
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	logger.Info("Cleaning %s", path)
	started := time.Now()

	// 2. Load the source table
	table, err := s.factory.Loader(*settings).Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}

	// 3. Run the cleaning stages
	report, err := s.factory.Pipeline(*settings).Run(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	// 4. Write the cleaned table next to the source
	outputPath := domain.OutputPath(path, settings.OutputSuffix)
	if err := s.writer.Write(ctx, table, outputPath); err != nil {
		return nil, fmt.Errorf("write table: %w", err)
	}

	// 5. Fill in the run metadata
	report.ID = uuid.NewString()
	report.SourcePath = path
	report.OutputPath = outputPath
	report.StartedAt = started
	report.Duration = time.Since(started)

	// 6. Record the run. The cleaned file already exists at this point,
	// so a history failure downgrades to a warning rather than failing
	// the run.
	if s.historyEnabled(settings) {
		if err := s.runStore.Save(ctx, report); err != nil {
			logger.Warn("Recording run %s: %v", report.ID, err)
		}
	}

	logger.Info("Cleaned %s: %d rows in, %d rows out, %d values coerced",
		path, report.RowsIn, report.RowsOut, report.CoercedMissing())
	return report, nil
}

// Files returns the CSV files available in the workspace.
func (s *CleanerService) Files(ctx context.Context) ([]domain.FileInfo, error) {
	files, err := s.workspace.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspace: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no CSV files in %s", domain.ErrNoFiles, s.workspace.Dir())
	}
	return files, nil
}

// Watch streams workspace file events until ctx is cancelled.
func (s *CleanerService) Watch(ctx context.Context) (<-chan domain.FileEvent, error) {
	return s.workspace.Watch(ctx)
}

// historyEnabled reports whether this run should be recorded.
func (s *CleanerService) historyEnabled(settings *domain.CleanSettings) bool {
	return s.runStore != nil && settings.HistoryEnabled
}
