package cleaning

import (
	"context"
	"regexp"
	"strings"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/normalisers/temporal"
)

// numericPattern matches integers and floating-point numbers with an
// optional sign and an optional exponent.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Classifier assigns a column type to a column by sampling its present
// values. Missing values never participate in classification.
type Classifier struct {
	temporalThreshold float64
	numericThreshold  float64
	sampleSize        int
	layouts           []string
	nameHints         []string
}

// Option configures the classifier.
type Option func(*Classifier)

// WithTemporalThreshold sets the fraction of sampled values that must
// parse as dates (strictly exceeded) for a column to tag temporal.
func WithTemporalThreshold(threshold float64) Option {
	return func(c *Classifier) {
		if threshold > 0 && threshold <= 1 {
			c.temporalThreshold = threshold
		}
	}
}

// WithNumericThreshold sets the fraction of sampled values that must
// parse as numbers (met or exceeded) for a column to tag numeric.
func WithNumericThreshold(threshold float64) Option {
	return func(c *Classifier) {
		if threshold > 0 && threshold <= 1 {
			c.numericThreshold = threshold
		}
	}
}

// WithSampleSize caps how many present values are inspected per column.
// Zero inspects every present value.
func WithSampleSize(size int) Option {
	return func(c *Classifier) {
		if size >= 0 {
			c.sampleSize = size
		}
	}
}

// WithDateLayouts sets the accepted date layouts, tried in order.
func WithDateLayouts(layouts []string) Option {
	return func(c *Classifier) {
		if len(layouts) > 0 {
			c.layouts = layouts
		}
	}
}

// WithNameHints sets the column-name substrings that bias a column
// towards temporal.
func WithNameHints(hints []string) Option {
	return func(c *Classifier) {
		c.nameHints = hints
	}
}

// NewClassifier creates a classifier with the given options applied
// over the defaults.
func NewClassifier(opts ...Option) *Classifier {
	defaults := domain.DefaultCleanSettings()
	c := &Classifier{
		temporalThreshold: defaults.TemporalThreshold,
		numericThreshold:  defaults.NumericThreshold,
		sampleSize:        defaults.SampleSize,
		layouts:           defaults.DateLayouts,
		nameHints:         defaults.NameHints,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FromSettings returns the options matching the given settings.
func FromSettings(settings domain.CleanSettings) []Option {
	return []Option{
		WithTemporalThreshold(settings.TemporalThreshold),
		WithNumericThreshold(settings.NumericThreshold),
		WithSampleSize(settings.SampleSize),
		WithDateLayouts(settings.DateLayouts),
		WithNameHints(settings.NameHints),
	}
}

// Classify returns exactly one type for the column. Classification is
// deterministic: the same column always yields the same tag.
//
// Temporal is checked before numeric so date-like numbers such as
// "20230101" tag as temporal rather than numeric. A column whose name
// carries a temporal hint tags temporal as long as at least one sampled
// value parses as a date. Columns with no present values tag textual.
func (c *Classifier) Classify(column *domain.Column) domain.ColumnType {
	values := c.sample(column)
	if len(values) == 0 {
		return domain.ColumnTypeTextual
	}

	temporalMatches := 0
	numericMatches := 0
	for _, value := range values {
		if _, ok := temporal.ParseAny(c.layouts, value); ok {
			temporalMatches++
		}
		if numericPattern.MatchString(value) {
			numericMatches++
		}
	}

	if c.hasNameHint(column.Name) && temporalMatches > 0 {
		return domain.ColumnTypeTemporal
	}

	total := float64(len(values))
	if float64(temporalMatches)/total > c.temporalThreshold {
		return domain.ColumnTypeTemporal
	}
	if float64(numericMatches)/total >= c.numericThreshold {
		return domain.ColumnTypeNumeric
	}
	return domain.ColumnTypeTextual
}

// sample returns up to sampleSize present values from the column, in
// order.
func (c *Classifier) sample(column *domain.Column) []string {
	values := column.PresentValues()
	if c.sampleSize > 0 && len(values) > c.sampleSize {
		values = values[:c.sampleSize]
	}
	return values
}

// hasNameHint reports whether the column name contains any of the
// temporal name hints, case-insensitively.
func (c *Classifier) hasNameHint(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range c.nameHints {
		if hint != "" && strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Ensure ClassifyStage implements the interface.
var _ driven.Stage = (*ClassifyStage)(nil)

// ClassifyStage tags every column with its classified type and records
// the tags on the report.
type ClassifyStage struct {
	classifier *Classifier
}

// NewClassifyStage creates the classification stage.
func NewClassifyStage(classifier *Classifier) *ClassifyStage {
	return &ClassifyStage{classifier: classifier}
}

// Name returns the stage name.
func (s *ClassifyStage) Name() string {
	return "classify"
}

// Apply classifies each column in header order. Columns named in the
// report line up with the table's columns.
func (s *ClassifyStage) Apply(_ context.Context, table *domain.Table, report *domain.CleanReport) error {
	for i := range table.Columns {
		column := &table.Columns[i]
		column.Type = s.classifier.Classify(column)
		report.Columns = append(report.Columns, domain.ColumnReport{
			Name: column.Name,
			Type: column.Type,
		})
		logger.Debug("classified column %q as %s", column.Name, column.Type)
	}
	return nil
}
