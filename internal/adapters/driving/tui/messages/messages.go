// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewPicker lists the workspace files available for cleaning.
	ViewPicker
	// ViewReport shows the outcome of a cleaning run.
	ViewReport
	// ViewHistory lists past cleaning runs.
	ViewHistory
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewPicker:
		return "picker"
	case ViewReport:
		return "report"
	case ViewHistory:
		return "history"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// FilesLoaded carries the workspace file listing from the service.
type FilesLoaded struct {
	Files []domain.FileInfo
	Err   error
}

// WorkspaceChanged carries a file change from the workspace watcher so
// the picker can refresh its listing.
type WorkspaceChanged struct {
	Event domain.FileEvent
}

// CleanCompleted carries the result of a cleaning run back to the model.
type CleanCompleted struct {
	Report *domain.CleanReport
	Err    error
}

// RunsLoaded carries the list of past runs from the history service.
type RunsLoaded struct {
	Runs []domain.CleanReport
	Err  error
}

// RunSelected signals a past run was selected for report view.
type RunSelected struct {
	Run domain.CleanReport
}

// HistoryCleared signals the run history was cleared.
type HistoryCleared struct {
	Removed int
	Err     error
}

// SettingsLoaded carries the cleaning settings.
type SettingsLoaded struct {
	Settings *domain.CleanSettings
	Err      error
}

// SettingsSaved signals a setting was saved.
type SettingsSaved struct {
	Key string
	Err error
}
