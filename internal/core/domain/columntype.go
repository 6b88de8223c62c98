package domain

const unknownDescription = "Unknown"

// ColumnType is the inferred semantic tag of a column.
type ColumnType string

// Available column types.
const (
	// ColumnTypeTemporal marks a column whose values predominantly
	// represent dates or timestamps.
	ColumnTypeTemporal ColumnType = "temporal"

	// ColumnTypeNumeric marks a column whose values predominantly
	// parse as numbers.
	ColumnTypeNumeric ColumnType = "numeric"

	// ColumnTypeTextual marks a column of free-form text. It is also
	// the fallback tag when neither check passes.
	ColumnTypeTextual ColumnType = "textual"
)

// IsValid returns true if the column type is recognised.
func (t ColumnType) IsValid() bool {
	switch t {
	case ColumnTypeTemporal, ColumnTypeNumeric, ColumnTypeTextual:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ColumnType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t ColumnType) Description() string {
	switch t {
	case ColumnTypeTemporal:
		return "Temporal (dates and timestamps)"
	case ColumnTypeNumeric:
		return "Numeric (integers and decimals)"
	case ColumnTypeTextual:
		return "Textual (free-form text)"
	default:
		return unknownDescription
	}
}

// AllColumnTypes returns all recognised column types.
func AllColumnTypes() []ColumnType {
	return []ColumnType{
		ColumnTypeTemporal,
		ColumnTypeNumeric,
		ColumnTypeTextual,
	}
}
