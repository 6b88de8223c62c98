package list

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

func sampleFiles() []domain.FileInfo {
	modTime := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	return []domain.FileInfo{
		{Path: "/data/customers.csv", Name: "customers.csv", Size: 512, ModTime: modTime},
		{Path: "/data/orders.csv", Name: "orders.csv", Size: 4096, ModTime: modTime},
		{Path: "/data/sales.csv", Name: "sales.csv", Size: 3 * 1024 * 1024, ModTime: modTime},
	}
}

func TestNewFileList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewFileList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewFileList_NilStyles(t *testing.T) {
	list := NewFileList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestFileList_Init(t *testing.T) {
	list := NewFileList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestFileList_SetFiles(t *testing.T) {
	list := NewFileList(nil)
	files := sampleFiles()

	list.SetFiles(files)

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestFileList_SetFiles_KeepsSelectionInRange(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())
	list.SetSelected(2)

	// Refresh with a shorter listing, selection falls back to the top
	list.SetFiles(sampleFiles()[:1])

	assert.Equal(t, 0, list.Selected())
}

func TestFileList_SetFiles_PreservesSelection(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())
	list.SetSelected(1)

	// Watcher-triggered refresh should not yank the cursor back
	list.SetFiles(sampleFiles())

	assert.Equal(t, 1, list.Selected())
}

func TestFileList_Files(t *testing.T) {
	list := NewFileList(nil)
	files := sampleFiles()
	list.SetFiles(files)

	got := list.Files()

	assert.Equal(t, files, got)
}

func TestFileList_SetSelected_Valid(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	list.SetSelected(2)

	assert.Equal(t, 2, list.Selected())
}

func TestFileList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	list.SetSelected(99)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestFileList_SetSelected_Negative(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestFileList_SelectedFile(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	file := list.SelectedFile()

	require.NotNil(t, file)
	assert.Equal(t, "customers.csv", file.Name)
}

func TestFileList_SelectedFile_Empty(t *testing.T) {
	list := NewFileList(nil)

	file := list.SelectedFile()

	assert.Nil(t, file)
}

func TestFileList_MoveDown(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	list.MoveDown()
	assert.Equal(t, 1, list.Selected())

	list.MoveDown()
	assert.Equal(t, 2, list.Selected())

	// At boundary
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())
}

func TestFileList_MoveUp(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())
	list.SetSelected(2)

	list.MoveUp()
	assert.Equal(t, 1, list.Selected())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	// At boundary
	list.MoveUp()
	assert.Equal(t, 0, list.Selected())
}

func TestFileList_Update_Navigation(t *testing.T) {
	list := NewFileList(nil)
	list.SetFiles(sampleFiles())

	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, list.Selected())

	list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, list.Selected())
}

func TestFileList_View_Empty(t *testing.T) {
	list := NewFileList(nil)

	view := list.View()

	assert.Contains(t, view, "No CSV files")
}

func TestFileList_View_WithFiles(t *testing.T) {
	list := NewFileList(nil)
	list.SetDimensions(80, 20)
	list.SetFiles(sampleFiles())

	view := list.View()

	assert.Contains(t, view, "Files (3)")
	assert.Contains(t, view, "customers.csv")
	assert.Contains(t, view, "orders.csv")
	assert.Contains(t, view, "sales.csv")
	assert.Contains(t, view, ">") // Selection indicator
}

func TestFileList_View_ShowsSizeAndTime(t *testing.T) {
	list := NewFileList(nil)
	list.SetDimensions(80, 20)
	list.SetFiles(sampleFiles())

	view := list.View()

	assert.Contains(t, view, "512 B")
	assert.Contains(t, view, "4.0 KB")
	assert.Contains(t, view, "3.0 MB")
	assert.Contains(t, view, "2024-03-15 09:30")
}

func TestFileList_View_ScrollsToSelection(t *testing.T) {
	list := NewFileList(nil)
	list.SetDimensions(80, 6) // room for two visible entries

	files := make([]domain.FileInfo, 10)
	for i := range files {
		files[i] = domain.FileInfo{Name: "file" + strings.Repeat("x", i) + ".csv"}
	}
	list.SetFiles(files)
	list.SetSelected(9)

	view := list.View()

	assert.Contains(t, view, "filexxxxxxxxx.csv")
}

func TestFileList_SetDimensions(t *testing.T) {
	list := NewFileList(nil)

	list.SetDimensions(120, 40)

	assert.Equal(t, 120, list.Width())
	assert.Equal(t, 40, list.Height())
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 900, "900 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"fractional", 1536, "1.5 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanSize(tt.bytes))
		})
	}
}
