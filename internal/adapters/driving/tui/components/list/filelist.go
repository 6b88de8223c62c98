// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// FileList displays workspace files in a navigable list.
type FileList struct {
	files    []domain.FileInfo
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFileList creates a new file list component.
func NewFileList(s *styles.Styles) *FileList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FileList{
		files:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the file list.
func (f *FileList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (f *FileList) Update(msg tea.Msg) (*FileList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			f.MoveUp()
		case tea.KeyDown:
			f.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			f.MoveUp()
		case "j":
			f.MoveDown()
		}
	}
	return f, nil
}

// View renders the file list.
func (f *FileList) View() string {
	if len(f.files) == 0 {
		return f.styles.Muted.Render("No CSV files in workspace")
	}

	lines := make([]string, 0, len(f.files)+2)

	// Header
	header := f.styles.Subtitle.Render(fmt.Sprintf("Files (%d)", len(f.files)))
	lines = append(lines, header, "")

	// Calculate visible range based on height, one line per file
	visibleCount := f.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if f.selected >= visibleCount {
		start = f.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(f.files) {
		end = len(f.files)
	}

	for i := start; i < end; i++ {
		line := f.renderFile(i, &f.files[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderFile formats a single file with size and modification time.
func (f *FileList) renderFile(index int, file *domain.FileInfo) string {
	// Indicator for selected item
	indicator := "  "
	if index == f.selected {
		indicator = "> "
	}

	name := file.Name
	if name == "" {
		name = file.Path
	}

	// Truncate name if too long
	maxNameLen := f.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	size := humanSize(file.Size)
	modified := file.ModTime.Format("2006-01-02 15:04")

	if index == f.selected {
		return f.styles.Selected.Render(
			fmt.Sprintf("%s%-*s  %8s  %s", indicator, maxNameLen, name, size, modified),
		)
	}

	return f.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
		f.styles.Muted.Render(fmt.Sprintf("%8s  %s", size, modified))
}

// humanSize renders a byte count with a binary unit suffix.
func humanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// SetFiles updates the file list.
func (f *FileList) SetFiles(files []domain.FileInfo) {
	f.files = files
	if f.selected >= len(files) {
		f.selected = 0
	}
}

// Files returns the current files.
func (f *FileList) Files() []domain.FileInfo {
	return f.files
}

// Selected returns the index of the selected file.
func (f *FileList) Selected() int {
	return f.selected
}

// SetSelected sets the selected index.
func (f *FileList) SetSelected(index int) {
	if index >= 0 && index < len(f.files) {
		f.selected = index
	}
}

// SelectedFile returns the currently selected file, or nil if none.
func (f *FileList) SelectedFile() *domain.FileInfo {
	if len(f.files) == 0 || f.selected < 0 || f.selected >= len(f.files) {
		return nil
	}
	return &f.files[f.selected]
}

// MoveUp moves selection up.
func (f *FileList) MoveUp() {
	if f.selected > 0 {
		f.selected--
	}
}

// MoveDown moves selection down.
func (f *FileList) MoveDown() {
	if f.selected < len(f.files)-1 {
		f.selected++
	}
}

// SetDimensions sets the component dimensions.
func (f *FileList) SetDimensions(width, height int) {
	f.width = width
	f.height = height
}

// Width returns the current width.
func (f *FileList) Width() int {
	return f.width
}

// Height returns the current height.
func (f *FileList) Height() int {
	return f.height
}

// Count returns the number of files.
func (f *FileList) Count() int {
	return len(f.files)
}

// IsEmpty returns whether the list is empty.
func (f *FileList) IsEmpty() bool {
	return len(f.files) == 0
}
