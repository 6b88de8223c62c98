// Package tui provides an interactive terminal user interface for csvclean.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Cleaner runs cleaning runs and lists workspace files.
	Cleaner driving.CleanerService

	// Settings manages cleaning settings.
	Settings driving.SettingsService

	// History provides access to past cleaning runs.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	cleaner driving.CleanerService,
	settings driving.SettingsService,
	history driving.HistoryService,
) *Ports {
	return &Ports{
		Cleaner:  cleaner,
		Settings: settings,
		History:  history,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Cleaner == nil {
		return ErrMissingCleanerService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
