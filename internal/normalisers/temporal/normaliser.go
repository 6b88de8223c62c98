package temporal

import (
	"context"
	"time"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ColumnNormaliser = (*Normaliser)(nil)

// Normaliser rewrites temporal columns into the canonical timestamp format.
type Normaliser struct {
	layouts []string
}

// New creates a temporal normaliser that accepts the given layouts,
// tried in order. An empty list falls back to the default layouts.
func New(layouts []string) *Normaliser {
	if len(layouts) == 0 {
		layouts = domain.DefaultDateLayouts()
	}
	return &Normaliser{layouts: layouts}
}

// Type returns the column type this normaliser handles.
func (n *Normaliser) Type() domain.ColumnType {
	return domain.ColumnTypeTemporal
}

// Normalise replaces every present cell with its parsed timestamp
// rendered in domain.CanonicalTimeLayout. Cells that parse under none
// of the accepted layouts become missing; the count of such conversions
// is returned so callers can log it. Malformed values never fail the
// column.
func (n *Normaliser) Normalise(_ context.Context, column *domain.Column) (*driven.NormaliseResult, error) {
	if column == nil {
		return nil, domain.ErrInvalidInput
	}

	result := &driven.NormaliseResult{}
	for i := range column.Cells {
		cell := &column.Cells[i]
		if cell.Missing {
			continue
		}

		parsed, ok := ParseAny(n.layouts, cell.Value)
		if !ok {
			*cell = domain.MissingCell()
			result.CoercedMissing++
			continue
		}
		cell.Value = parsed.Format(domain.CanonicalTimeLayout)
	}

	return result, nil
}

// ParseAny parses value against the layouts in order and returns the
// first match. Layout order is the tie-break for ambiguous values such
// as "01/06/2023".
func ParseAny(layouts []string, value string) (time.Time, bool) {
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
