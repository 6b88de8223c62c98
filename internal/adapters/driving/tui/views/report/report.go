// Package report provides the clean report view component for the TUI.
package report

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/messages"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// View is the clean report view.
type View struct {
	styles *styles.Styles

	run          *domain.CleanReport
	returnView   messages.ViewType
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new report view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		returnView: messages.ViewMenu,
	}
}

// SetRun sets the cleaning run to display.
func (v *View) SetRun(run domain.CleanReport) {
	v.run = &run
	v.scrollOffset = 0
	v.err = nil
}

// SetReturn sets the view esc navigates back to. The report is reachable
// from both the picker and the history list.
func (v *View) SetReturn(view messages.ViewType) {
	v.returnView = view
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		maxOffset := v.maxScrollOffset()
		if v.scrollOffset < maxOffset {
			v.scrollOffset++
		}
	case "esc":
		target := v.returnView
		return v, func() tea.Msg {
			return messages.ViewChanged{View: target}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	lines := v.buildContent()
	maxOffset := len(lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.run == nil {
		return nil
	}

	var lines []string

	// Run summary
	lines = append(lines,
		v.formatField("Source", v.run.SourcePath),
		v.formatField("Output", v.run.OutputPath))

	if !v.run.StartedAt.IsZero() {
		lines = append(lines, v.formatField("Started", v.run.StartedAt.Format("2006-01-02 15:04:05")))
	}
	if v.run.Duration > 0 {
		lines = append(lines, v.formatField("Duration", v.run.Duration.String()))
	}

	// Row accounting
	lines = append(lines,
		"",
		v.formatField("Rows in", fmt.Sprintf("%d", v.run.RowsIn)),
		v.formatField("Rows out", fmt.Sprintf("%d", v.run.RowsOut)),
		v.formatField("Empty", fmt.Sprintf("%d dropped", v.run.EmptyRowsDropped)),
		v.formatField("Duplicates", fmt.Sprintf("%d dropped", v.run.DuplicateRowsDropped)))

	if coerced := v.run.CoercedMissing(); coerced > 0 {
		lines = append(lines, v.formatField("Coerced", fmt.Sprintf("%d values set missing", coerced)))
	}

	// Column section
	if len(v.run.Columns) > 0 {
		lines = append(lines, "", "Columns:")
		for _, col := range v.run.Columns {
			line := fmt.Sprintf("  %s: %s", col.Name, col.Type)
			if col.CoercedMissing > 0 {
				line += fmt.Sprintf(" (%d coerced)", col.CoercedMissing)
			}
			lines = append(lines, line)
		}
	}

	return lines
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}

// View renders the report view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	b.WriteString(v.styles.Title.Render("Clean Report"))
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// No run
	if v.run == nil {
		b.WriteString(v.styles.Muted.Render("No cleaning run to display"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Content
	lines := v.buildContent()
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visibleLines; i++ {
		line := lines[i]

		// Style based on content
		//nolint:nestif // View rendering requires nested conditional styling
		if strings.HasPrefix(line, "Columns:") {
			b.WriteString(v.styles.Subtitle.Render(line))
		} else if strings.HasPrefix(line, "  ") {
			// Column name-type
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				b.WriteString(v.styles.Muted.Render(parts[0] + ":"))
				b.WriteString(v.styles.Normal.Render(parts[1]))
			} else {
				b.WriteString(v.styles.Muted.Render(line))
			}
		} else if strings.Contains(line, ":") {
			// Field label-value
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				b.WriteString(v.styles.Subtitle.Render(parts[0] + ":"))
				b.WriteString(v.styles.Normal.Render(parts[1]))
			} else {
				b.WriteString(v.styles.Normal.Render(line))
			}
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(lines) > visibleLines {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visibleLines, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Run returns the currently displayed run.
func (v *View) Run() *domain.CleanReport {
	return v.run
}

// Return returns the view esc navigates back to.
func (v *View) Return() messages.ViewType {
	return v.returnView
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset clears the displayed run.
func (v *View) Reset() {
	v.run = nil
	v.returnView = messages.ViewMenu
	v.scrollOffset = 0
	v.err = nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
