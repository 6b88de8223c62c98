package cleaning

import (
	"context"
	"testing"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

func TestPruneStage_Name(t *testing.T) {
	s := NewPruneStage()
	if s.Name() != "prune" {
		t.Errorf("expected name 'prune', got '%s'", s.Name())
	}
}

func TestPruneStage_Apply(t *testing.T) {
	table := &domain.Table{
		Columns: []domain.Column{
			{Name: "a", Cells: []domain.Cell{
				domain.NewCell("1"),
				domain.MissingCell(),
				domain.NewCell("3"),
				domain.MissingCell(),
			}},
			{Name: "b", Cells: []domain.Cell{
				domain.NewCell("x"),
				domain.MissingCell(),
				domain.MissingCell(),
				domain.MissingCell(),
			}},
		},
	}
	report := &domain.CleanReport{}

	s := NewPruneStage()
	if err := s.Apply(context.Background(), table, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rows 1 and 3 were all-missing; row 2 keeps its partial missing cell.
	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	if report.EmptyRowsDropped != 2 {
		t.Errorf("expected 2 empty rows dropped, got %d", report.EmptyRowsDropped)
	}
	if table.Columns[0].Cells[1].Value != "3" {
		t.Errorf("expected row order preserved, got %q", table.Columns[0].Cells[1].Value)
	}
	if !table.Columns[1].Cells[1].Missing {
		t.Error("expected partial missing cell preserved")
	}
}

func TestPruneStage_NoEmptyRows(t *testing.T) {
	table := &domain.Table{
		Columns: []domain.Column{
			{Name: "a", Cells: present("1", "2")},
		},
	}
	report := &domain.CleanReport{}

	s := NewPruneStage()
	if err := s.Apply(context.Background(), table, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", table.RowCount())
	}
	if report.EmptyRowsDropped != 0 {
		t.Errorf("expected 0 empty rows dropped, got %d", report.EmptyRowsDropped)
	}
}

func TestPruneStage_EmptyTable(t *testing.T) {
	table := &domain.Table{Columns: []domain.Column{{Name: "a"}}}
	report := &domain.CleanReport{}

	s := NewPruneStage()
	if err := s.Apply(context.Background(), table, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.EmptyRowsDropped != 0 {
		t.Errorf("expected 0 empty rows dropped, got %d", report.EmptyRowsDropped)
	}
}
