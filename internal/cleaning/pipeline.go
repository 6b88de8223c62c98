package cleaning

import (
	"context"
	"fmt"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.CleanPipeline = (*Pipeline)(nil)

// Pipeline chains cleaning stages and runs them in order over one
// table. It implements the CleanPipeline interface.
type Pipeline struct {
	stages []driven.Stage
}

// NewPipeline creates a pipeline with the given stages. Stages are
// executed in the order provided.
func NewPipeline(stages ...driven.Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// NewDefaultPipeline builds the standard pipeline for the given
// settings and registry: classify, normalise, prune, dedupe.
func NewDefaultPipeline(settings domain.CleanSettings, registry driven.NormaliserRegistry) *Pipeline {
	classifier := NewClassifier(FromSettings(settings)...)
	return NewPipeline(
		NewClassifyStage(classifier),
		NewNormaliseStage(registry, settings.ExcludeColumns),
		NewPruneStage(),
		NewDedupeStage(),
	)
}

// Run applies all stages in order and returns the report of what
// changed. The table is mutated in place.
func (p *Pipeline) Run(ctx context.Context, table *domain.Table) (*domain.CleanReport, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil: %w", domain.ErrInvalidInput)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	report := &domain.CleanReport{
		RowsIn: table.RowCount(),
	}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Debug("running stage %s", stage.Name())
		if err := stage.Apply(ctx, table, report); err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}

	report.RowsOut = table.RowCount()
	return report, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}
