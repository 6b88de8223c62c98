package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or updates a run report.
func (s *runStore) Save(ctx context.Context, report *domain.CleanReport) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}

	columnsJSON, err := json.Marshal(report.Columns)
	if err != nil {
		return fmt.Errorf("marshalling columns: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs
			(id, source_path, output_path, started_at, duration_ms,
			 rows_in, rows_out, empty_rows_dropped, duplicate_rows_dropped, columns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_path = excluded.source_path,
			output_path = excluded.output_path,
			started_at = excluded.started_at,
			duration_ms = excluded.duration_ms,
			rows_in = excluded.rows_in,
			rows_out = excluded.rows_out,
			empty_rows_dropped = excluded.empty_rows_dropped,
			duplicate_rows_dropped = excluded.duplicate_rows_dropped,
			columns = excluded.columns
	`, report.ID, report.SourcePath, report.OutputPath, report.StartedAt.UTC(),
		report.Duration.Milliseconds(), report.RowsIn, report.RowsOut,
		report.EmptyRowsDropped, report.DuplicateRowsDropped, string(columnsJSON))

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run report by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.CleanReport, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_path, output_path, started_at, duration_ms,
		       rows_in, rows_out, empty_rows_dropped, duplicate_rows_dropped, columns
		FROM runs WHERE id = ?
	`, id)

	return scanRun(row)
}

// List returns run reports ordered by start time, newest first.
// A limit of 0 returns all runs.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.CleanReport, error) {
	query := `
		SELECT id, source_path, output_path, started_at, duration_ms,
		       rows_in, rows_out, empty_rows_dropped, duplicate_rows_dropped, columns
		FROM runs ORDER BY started_at DESC, id
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var reports []domain.CleanReport //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanRunRows(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return reports, nil
}

// Clear removes all run reports and returns how many were removed.
func (s *runStore) Clear(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clearing runs: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting removed runs: %w", err)
	}
	return int(removed), nil
}

// scanRun scans a single run row.
func scanRun(row *sql.Row) (*domain.CleanReport, error) {
	var report domain.CleanReport
	var startedAt sql.NullTime
	var durationMS int64
	var columnsJSON string

	if err := row.Scan(&report.ID, &report.SourcePath, &report.OutputPath,
		&startedAt, &durationMS, &report.RowsIn, &report.RowsOut,
		&report.EmptyRowsDropped, &report.DuplicateRowsDropped, &columnsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if startedAt.Valid {
		report.StartedAt = startedAt.Time
	}
	report.Duration = time.Duration(durationMS) * time.Millisecond

	if columnsJSON != "" {
		if err := json.Unmarshal([]byte(columnsJSON), &report.Columns); err != nil {
			return nil, fmt.Errorf("unmarshaling columns: %w", err)
		}
	}

	return &report, nil
}

// scanRunRows scans a run from *sql.Rows.
func scanRunRows(rows *sql.Rows) (*domain.CleanReport, error) {
	var report domain.CleanReport
	var startedAt sql.NullTime
	var durationMS int64
	var columnsJSON string

	if err := rows.Scan(&report.ID, &report.SourcePath, &report.OutputPath,
		&startedAt, &durationMS, &report.RowsIn, &report.RowsOut,
		&report.EmptyRowsDropped, &report.DuplicateRowsDropped, &columnsJSON); err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if startedAt.Valid {
		report.StartedAt = startedAt.Time
	}
	report.Duration = time.Duration(durationMS) * time.Millisecond

	if columnsJSON != "" {
		if err := json.Unmarshal([]byte(columnsJSON), &report.Columns); err != nil {
			return nil, fmt.Errorf("unmarshaling columns: %w", err)
		}
	}

	return &report, nil
}
