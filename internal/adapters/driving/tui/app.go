package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/messages"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/styles"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/views/history"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/views/menu"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/views/picker"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/views/report"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/tui/views/settings"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// pickerView lists the workspace files available for cleaning.
	pickerView *picker.View

	// reportView shows the outcome of a cleaning run.
	reportView *report.View

	// historyView lists past cleaning runs.
	historyView *history.View

	// settingsView is the settings configuration view component.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	pickerView := picker.NewView(s, nil, ports.Cleaner)
	reportView := report.NewView(s)
	historyView := history.NewView(s, ports.History)
	settingsView := settings.NewView(s, ports.Settings)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menuView,
		pickerView:   pickerView,
		reportView:   reportView,
		historyView:  historyView,
		settingsView: settingsView,
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app. The picker shares it so its
// workspace watch stops when the app does.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pickerView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("csvclean - CSV Cleaning"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.pickerView.SetDimensions(msg.Width, msg.Height)
		a.reportView.SetDimensions(msg.Width, msg.Height)
		a.historyView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewPicker:
			a.pickerView, cmd = a.pickerView.Update(msg)
			a.err = a.pickerView.Err()
			return a, cmd

		case messages.ViewReport:
			a.reportView, cmd = a.reportView.Update(msg)
			return a, cmd

		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewPicker:
			a.pickerView.Reset()
			return a, a.pickerView.Init()
		case messages.ViewHistory:
			a.historyView.Reset()
			return a, a.historyView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewReport:
			// Other views don't need special initialisation. The report
			// view is entered with its run already set.
		}
		return a, nil

	case messages.FilesLoaded:
		a.pickerView, cmd = a.pickerView.Update(msg)
		return a, cmd

	case messages.WorkspaceChanged:
		// The picker keeps its listing fresh even while another view is
		// active, so returning to it never shows stale files.
		a.pickerView, cmd = a.pickerView.Update(msg)
		return a, cmd

	case messages.CleanCompleted:
		a.pickerView, cmd = a.pickerView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}
		if msg.Report != nil {
			a.reportView.SetRun(*msg.Report)
			a.reportView.SetReturn(messages.ViewPicker)
			a.currentView = messages.ViewReport
		}
		return a, cmd

	case messages.RunSelected:
		// Navigate from history to the run's report
		a.reportView.SetRun(msg.Run)
		a.reportView.SetReturn(messages.ViewHistory)
		a.currentView = messages.ViewReport
		return a, nil

	case messages.RunsLoaded, messages.HistoryCleared:
		// Forward to history view
		if a.currentView == messages.ViewHistory {
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd
		}

	case messages.SettingsLoaded, messages.SettingsSaved:
		// Forward to settings view
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewPicker:
			a.pickerView, cmd = a.pickerView.Update(msg)
		case messages.ViewReport:
			a.reportView, cmd = a.reportView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewPicker:
		a.pickerView, cmd = a.pickerView.Update(msg)
	case messages.ViewReport:
		a.reportView, cmd = a.reportView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewPicker:
		return a.pickerView.View()
	case messages.ViewReport:
		return a.reportView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Files:
  j/k, ↑/↓    Navigate files
  enter       Clean selected file
  r           Reload listing

Report:
  j/k, ↑/↓    Scroll

History:
  j/k, ↑/↓    Navigate runs
  enter       Run actions
  r           Reload
  x           Clear history

Settings:
  j/k, ↑/↓    Navigate settings
  enter       Edit value

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Files returns the files currently listed by the picker.
func (a *App) Files() []domain.FileInfo {
	return a.pickerView.Files()
}

// SelectedIndex returns the currently selected file index.
func (a *App) SelectedIndex() int {
	return a.pickerView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also size the views so they render properly
	a.pickerView.SetDimensions(width, height)
	a.reportView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
