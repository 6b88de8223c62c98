package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

const (
	// progressBatch is how many rows between progress log checks.
	progressBatch = 10000

	// progressRate caps progress log lines per second.
	progressRate = 2
)

// Ensure Loader implements the interface.
var _ driven.TableLoader = (*Loader)(nil)

// Loader reads CSV files into domain tables.
type Loader struct {
	missingTokens map[string]struct{}
	progress      *rate.Limiter
}

// NewLoader creates a loader that treats the given tokens as missing
// values, compared case-insensitively after trimming. An empty list
// falls back to the default tokens.
func NewLoader(missingTokens []string) *Loader {
	if len(missingTokens) == 0 {
		missingTokens = domain.DefaultMissingTokens()
	}

	tokens := make(map[string]struct{}, len(missingTokens))
	for _, token := range missingTokens {
		tokens[strings.ToLower(token)] = struct{}{}
	}
	return &Loader{
		missingTokens: tokens,
		progress:      rate.NewLimiter(rate.Limit(progressRate), 1),
	}
}

// Load reads the CSV file at path into a table. The first record is the
// header; every following record becomes one row. Ragged records, an
// empty file and unreadable files all fail with an error wrapping
// domain.ErrLoad.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrLoad, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrLoad, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %w", domain.ErrLoad, path, err)
	}

	table := &domain.Table{Columns: make([]domain.Column, len(header))}
	for i, name := range columnNames(header) {
		table.Columns[i] = domain.Column{Name: name}
	}

	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", domain.ErrLoad, path, err)
		}

		for i, raw := range record {
			table.Columns[i].Cells = append(table.Columns[i].Cells, l.toCell(raw))
		}
		rows++

		if rows%progressBatch == 0 && l.progress.Allow() {
			logger.Debug("loading %s: %d rows", path, rows)
		}
	}

	logger.Debug("loaded %s: %d rows, %d columns", path, rows, table.ColumnCount())
	return table, nil
}

// toCell converts a raw CSV field to a cell. Values are trimmed; empty
// results and recognised missing tokens become missing cells.
func (l *Loader) toCell(raw string) domain.Cell {
	value := strings.TrimSpace(raw)
	if value == "" {
		return domain.MissingCell()
	}
	if _, ok := l.missingTokens[strings.ToLower(value)]; ok {
		return domain.MissingCell()
	}
	return domain.NewCell(value)
}

// columnNames cleans the header: the leading BOM is stripped, blank
// names become positional column_N labels and repeated names get a
// numeric suffix so every column name is unique.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]struct{}, len(header))

	for i, raw := range header {
		if i == 0 {
			raw = strings.TrimPrefix(raw, utf8BOM)
		}

		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		if _, ok := used[name]; ok {
			base := name
			for n := 2; ; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
				if _, ok := used[name]; !ok {
					break
				}
			}
		}
		used[name] = struct{}{}
		names[i] = name
	}
	return names
}
