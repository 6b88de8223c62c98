// Package picker provides the workspace file picker view for the TUI.
package picker

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/components/list"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/components/status"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/keymap"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/messages"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// View represents the file picker with the workspace listing and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.FileList
	statusbar *status.Bar

	cleanerService driving.CleanerService
	ctx            context.Context

	width    int
	height   int
	ready    bool
	loading  bool
	cleaning bool
	err      error

	events     <-chan domain.FileEvent
	subscribed bool
}

// NewView creates a new picker view.
func NewView(s *styles.Styles, km *keymap.KeyMap, cleanerService driving.CleanerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		list:           list.NewFileList(s),
		statusbar:      status.NewBar(s, km),
		cleanerService: cleanerService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
		ready:          false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the workspace listing and starts the watch subscription.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadFiles(), v.subscribe())
}

// Update handles messages for the picker view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FilesLoaded:
		v.handleFilesLoaded(msg)
		return v, nil

	case messages.WorkspaceChanged:
		// Refresh the listing and wait for the next event
		return v, tea.Batch(v.loadFiles(), v.subscribe())

	case messages.CleanCompleted:
		v.handleCleanCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.loading = false
		v.cleaning = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// A clean is running; hold further actions until it completes
	if v.cleaning {
		return v, nil
	}

	if msg.Type == tea.KeyEnter {
		return v, v.cleanSelected()
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "r":
		return v, v.loadFiles()
	}

	return v, nil
}

// loadFiles fetches the CSV listing from the workspace.
func (v *View) loadFiles() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.cleanerService == nil {
			return messages.ErrorOccurred{Err: ErrNoCleanerService}
		}

		files, err := v.cleanerService.Files(v.ctx)
		return messages.FilesLoaded{Files: files, Err: err}
	}
}

// subscribe starts the workspace watcher on first use and waits for the
// next filesystem event.
func (v *View) subscribe() tea.Cmd {
	if !v.subscribed {
		if v.cleanerService == nil {
			return nil
		}
		events, err := v.cleanerService.Watch(v.ctx)
		if err != nil || events == nil {
			return nil
		}
		v.events = events
		v.subscribed = true
	}

	events := v.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return messages.WorkspaceChanged{Event: event}
	}
}

// cleanSelected runs the cleaning pipeline on the selected file.
func (v *View) cleanSelected() tea.Cmd {
	file := v.list.SelectedFile()
	if file == nil {
		return nil
	}

	v.cleaning = true
	v.err = nil
	v.statusbar.SetState(status.StateCleaning)
	v.statusbar.SetMessage(file.Name)

	path := file.Path
	return func() tea.Msg {
		if v.cleanerService == nil {
			return messages.ErrorOccurred{Err: ErrNoCleanerService}
		}

		report, err := v.cleanerService.Clean(v.ctx, path)
		return messages.CleanCompleted{Report: report, Err: err}
	}
}

// handleFilesLoaded processes a finished workspace listing.
func (v *View) handleFilesLoaded(msg messages.FilesLoaded) {
	v.loading = false

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetFiles(msg.Files)
	v.statusbar.SetState(status.StateFiles)
	v.statusbar.SetFileCount(len(msg.Files))
	v.statusbar.SetMessage("")
}

// handleCleanCompleted processes a finished cleaning run.
func (v *View) handleCleanCompleted(msg messages.CleanCompleted) {
	v.cleaning = false

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.statusbar.SetState(status.StateFiles)
	v.statusbar.SetMessage("")
}

// View renders the picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	// Header
	header := v.styles.Title.Render("Clean Files")
	sections = append(sections, header, "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// File listing
	if v.loading {
		sections = append(sections, v.styles.Muted.Render("Loading files..."))
	} else {
		sections = append(sections, v.list.View())
	}

	// Status bar at bottom
	sections = append(sections, "")
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.list.SetDimensions(width, height-8) // Reserve space for header, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Files returns the current workspace listing.
func (v *View) Files() []domain.FileInfo {
	return v.list.Files()
}

// SelectedIndex returns the index of the selected file.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedFile returns the currently selected file.
func (v *View) SelectedFile() *domain.FileInfo {
	return v.list.SelectedFile()
}

// IsLoading returns whether a listing fetch is in flight.
func (v *View) IsLoading() bool {
	return v.loading
}

// IsCleaning returns whether a cleaning run is in flight.
func (v *View) IsCleaning() bool {
	return v.cleaning
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset clears transient state. The watch subscription survives so the
// listing keeps refreshing across view changes.
func (v *View) Reset() {
	v.loading = false
	v.cleaning = false
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
