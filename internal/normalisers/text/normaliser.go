package text

import (
	"context"
	"strings"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ColumnNormaliser = (*Normaliser)(nil)

// Normaliser canonicalises textual columns.
type Normaliser struct{}

// New creates a new text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Type returns the column type this normaliser handles.
func (n *Normaliser) Type() domain.ColumnType {
	return domain.ColumnTypeTextual
}

// Normalise rewrites every present cell as its canonical text form.
// Missing cells pass through unchanged. The operation has no failure
// modes and is idempotent, so CoercedMissing is always zero.
func (n *Normaliser) Normalise(_ context.Context, column *domain.Column) (*driven.NormaliseResult, error) {
	if column == nil {
		return nil, domain.ErrInvalidInput
	}

	for i := range column.Cells {
		cell := &column.Cells[i]
		if cell.Missing {
			continue
		}
		cell.Value = Canonical(cell.Value)
	}

	return &driven.NormaliseResult{}, nil
}

// Canonical returns value with leading and trailing whitespace
// stripped, runs of internal whitespace collapsed to a single space,
// and all characters lowercased.
func Canonical(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
