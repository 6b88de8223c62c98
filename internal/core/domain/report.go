package domain

import "time"

// ColumnReport records what happened to one column during a run.
type ColumnReport struct {
	// Name is the column's header label.
	Name string

	// Type is the tag the classifier assigned.
	Type ColumnType

	// CoercedMissing counts values the temporal normaliser replaced
	// with missing because they parsed under no accepted layout. Zero
	// for non-temporal columns.
	CoercedMissing int
}

// CleanReport is the observable outcome of one cleaning run. It is
// returned to the caller for display and, when history is enabled,
// persisted as the run's record.
type CleanReport struct {
	// ID uniquely identifies the run.
	ID string

	// SourcePath is the file that was cleaned.
	SourcePath string

	// OutputPath is where the cleaned table was written.
	OutputPath string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration

	// RowsIn is the row count of the loaded table.
	RowsIn int

	// RowsOut is the row count of the written table.
	RowsOut int

	// EmptyRowsDropped counts rows removed because every cell was
	// missing.
	EmptyRowsDropped int

	// DuplicateRowsDropped counts rows removed as exact duplicates of
	// an earlier row.
	DuplicateRowsDropped int

	// Columns holds one entry per column in header order.
	Columns []ColumnReport
}

// RowsDropped returns the total number of rows removed. The row count
// invariant holds: RowsOut == RowsIn - RowsDropped().
func (r *CleanReport) RowsDropped() int {
	return r.EmptyRowsDropped + r.DuplicateRowsDropped
}

// CoercedMissing returns the total number of values the temporal
// normaliser converted to missing across all columns.
func (r *CleanReport) CoercedMissing() int {
	total := 0
	for _, col := range r.Columns {
		total += col.CoercedMissing
	}
	return total
}

// ColumnsOfType returns the names of columns tagged with the given type.
func (r *CleanReport) ColumnsOfType(t ColumnType) []string {
	var names []string
	for _, col := range r.Columns {
		if col.Type == t {
			names = append(names, col.Name)
		}
	}
	return names
}
