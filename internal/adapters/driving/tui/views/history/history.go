// Package history provides the run history view component for the TUI.
package history

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/messages"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// ActionOption represents a history action.
type ActionOption int

const (
	ActionShowReport ActionOption = iota
	ActionClearHistory
	ActionCancel
)

// View is the run history view.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService

	runs         []domain.CleanReport
	selected     int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	showingMenu  bool
	menuSelected ActionOption
	scrollOffset int
}

// NewView creates a new history view.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		historyService: historyService,
		runs:           []domain.CleanReport{},
	}
}

// Init loads the recorded runs.
func (v *View) Init() tea.Cmd {
	return v.loadRuns()
}

// loadRuns returns a command that loads all recorded runs.
func (v *View) loadRuns() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.RunsLoaded{Err: fmt.Errorf("history service not available")}
		}

		v.loading = true
		runs, err := v.historyService.List(context.Background(), 0)
		return messages.RunsLoaded{Runs: runs, Err: err}
	}
}

// clearHistory returns a command that removes all recorded runs.
func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.HistoryCleared{Err: fmt.Errorf("history service not available")}
		}

		removed, err := v.historyService.Clear(context.Background())
		return messages.HistoryCleared{Removed: removed, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.showingMenu {
			return v.handleMenuKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.RunsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.runs = msg.Runs
			v.err = nil
			// A reload can shrink the list under the cursor
			if v.selected >= len(v.runs) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Reload runs after clearing
		cmd := v.loadRuns()
		return v, cmd

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.runs)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if len(v.runs) > 0 {
			v.showingMenu = true
			v.menuSelected = ActionShowReport
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "r":
		// Reload runs
		v.loading = true
		cmd := v.loadRuns()
		return v, cmd
	case "x":
		cmd := v.clearHistory()
		return v, cmd
	}

	return v, nil
}

// handleMenuKeyMsg handles key presses in action menu mode.
func (v *View) handleMenuKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.menuSelected > ActionShowReport {
			v.menuSelected--
		}
	case "down", "j":
		if v.menuSelected < ActionCancel {
			v.menuSelected++
		}
	case "enter":
		return v.handleMenuSelect()
	case "esc":
		v.showingMenu = false
	}

	return v, nil
}

// handleMenuSelect handles selection of an action.
func (v *View) handleMenuSelect() (*View, tea.Cmd) {
	if v.selected >= len(v.runs) {
		v.showingMenu = false
		return v, nil
	}

	run := v.runs[v.selected]

	switch v.menuSelected {
	case ActionShowReport:
		v.showingMenu = false
		return v, func() tea.Msg {
			return messages.RunSelected{Run: run}
		}
	case ActionClearHistory:
		v.showingMenu = false
		cmd := v.clearHistory()
		return v, cmd
	case ActionCancel:
		v.showingMenu = false
	}

	return v, nil
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := fmt.Sprintf("History (%d)", len(v.runs))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading history..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty state
	if len(v.runs) == 0 {
		b.WriteString(v.styles.Muted.Render("No cleaning runs recorded."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Action menu overlay
	if v.showingMenu {
		b.WriteString(v.renderActionMenu())
		return b.String()
	}

	// Run list
	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.runs) && i < v.scrollOffset+visibleItems; i++ {
		line := v.renderRun(i, &v.runs[i])
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(v.runs) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.runs)),
			len(v.runs))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderRun renders a single run line.
func (v *View) renderRun(index int, run *domain.CleanReport) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := filepath.Base(run.SourcePath)
	if name == "." || name == "" {
		name = run.ID
	}

	// Truncate name if needed
	maxNameLen := v.width/2 - 4
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	started := run.StartedAt.Format("2006-01-02 15:04")
	summary := fmt.Sprintf("%d in, %d out", run.RowsIn, run.RowsOut)

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s  %s", indicator, maxNameLen, name, started, summary))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxNameLen, name)) +
		v.styles.Muted.Render(fmt.Sprintf("%s  %s", started, summary))
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	var b strings.Builder

	// Show selected run context
	if v.selected < len(v.runs) {
		run := v.runs[v.selected]
		name := filepath.Base(run.SourcePath)
		if name == "." || name == "" {
			name = run.ID
		}
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Actions for: %s", name)))
		b.WriteString("\n\n")
	}

	// Menu options
	options := []struct {
		action ActionOption
		label  string
	}{
		{ActionShowReport, "Show Report"},
		{ActionClearHistory, "Clear History"},
		{ActionCancel, "Cancel"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.menuSelected == opt.action {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] cancel"))

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] actions  [r] reload  [x] clear  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Runs returns the current list of runs.
func (v *View) Runs() []domain.CleanReport {
	return v.runs
}

// SelectedIndex returns the currently selected run index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedRun returns the currently selected run.
func (v *View) SelectedRun() *domain.CleanReport {
	if v.selected < len(v.runs) {
		return &v.runs[v.selected]
	}
	return nil
}

// IsShowingMenu returns true if the action menu is visible.
func (v *View) IsShowingMenu() bool {
	return v.showingMenu
}

// IsLoading returns whether a history fetch is in flight.
func (v *View) IsLoading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset clears transient state before the view is re-entered.
func (v *View) Reset() {
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	v.loading = false
	v.showingMenu = false
}
