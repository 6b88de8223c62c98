package domain

import "fmt"

// Cell is a single value in a table: either a present scalar or missing.
// Present cells carry a non-empty, whitespace-trimmed string; the loader
// guarantees that invariant, so the zero Cell is a present empty value
// only in tests that construct tables by hand.
type Cell struct {
	// Value is the scalar content. Empty when the cell is missing.
	Value string

	// Missing marks the cell as having no value.
	Missing bool
}

// NewCell returns a present cell holding value.
func NewCell(value string) Cell {
	return Cell{Value: value}
}

// MissingCell returns a missing cell.
func MissingCell() Cell {
	return Cell{Missing: true}
}

// IsMissing returns true if the cell has no value.
func (c Cell) IsMissing() bool {
	return c.Missing
}

// Equal reports whether two cells are equal under the row-equality rule:
// missing equals missing, present cells compare by value.
func (c Cell) Equal(other Cell) bool {
	if c.Missing || other.Missing {
		return c.Missing && other.Missing
	}
	return c.Value == other.Value
}

// Column is a named, ordered sequence of cells. After classification it
// carries exactly one ColumnType tag, immutable for the rest of the run.
type Column struct {
	// Name is the header label, unique within its table.
	Name string

	// Type is the inferred column type. Empty until classification.
	Type ColumnType

	// Cells are the column's values in row order.
	Cells []Cell
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Cells)
}

// PresentValues returns the values of all non-missing cells in order.
// Missing cells do not participate in classification.
func (c *Column) PresentValues() []string {
	values := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Missing {
			values = append(values, cell.Value)
		}
	}
	return values
}

// Table is an ordered sequence of named columns aligned by row index.
// It is built once per run by the loader, mutated in place by the
// cleaning pipeline, and handed to the writer. No identity survives
// across runs.
type Table struct {
	// Columns are the table's columns in header order.
	Columns []Column
}

// RowCount returns the number of rows. All columns have equal length;
// an empty table has zero rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnNames returns the header labels in column order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the column with the given name, or nil if absent.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Row returns the tuple of cells at index i across all columns.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.Columns))
	for j := range t.Columns {
		row[j] = t.Columns[j].Cells[i]
	}
	return row
}

// KeepRows retains only the rows where keep[i] is true, compacting every
// column in place and preserving relative order. It returns the number
// of rows dropped. The keep mask must cover every row.
func (t *Table) KeepRows(keep []bool) int {
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	dropped := t.RowCount() - kept

	for j := range t.Columns {
		cells := t.Columns[j].Cells
		compacted := cells[:0]
		for i, k := range keep {
			if k {
				compacted = append(compacted, cells[i])
			}
		}
		t.Columns[j].Cells = compacted
	}
	return dropped
}

// Validate checks the table invariants: every column has the same
// length and column names are unique. Violations wrap ErrInvalidInput.
func (t *Table) Validate() error {
	seen := make(map[string]struct{}, len(t.Columns))
	for i := range t.Columns {
		name := t.Columns[i].Name
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate column name %q", ErrInvalidInput, name)
		}
		seen[name] = struct{}{}

		if len(t.Columns[i].Cells) != t.RowCount() {
			return fmt.Errorf("%w: column %q has %d cells, expected %d",
				ErrInvalidInput, name, len(t.Columns[i].Cells), t.RowCount())
		}
	}
	return nil
}
