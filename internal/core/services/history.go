package services

import (
	"context"
	"fmt"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides access to past cleaning runs.
type HistoryService struct {
	runStore driven.RunStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service.
// The runStore is optional - if nil, history reads return empty results.
// The settings service is consulted for the history.enabled switch and
// may be nil.
func NewHistoryService(runStore driven.RunStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		runStore: runStore,
		settings: settings,
	}
}

// List returns past runs ordered by start time, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.CleanReport, error) {
	if s.runStore == nil {
		return nil, nil
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit %d is negative", domain.ErrInvalidInput, limit)
	}
	return s.runStore.List(ctx, limit)
}

// Get retrieves one run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.CleanReport, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.Get(ctx, id)
}

// Clear removes all recorded runs and returns how many were removed.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.runStore == nil {
		return 0, nil
	}
	return s.runStore.Clear(ctx)
}

// Enabled reports whether run history is being recorded: a store must
// be wired and the history.enabled setting on.
func (s *HistoryService) Enabled() bool {
	if s.runStore == nil {
		return false
	}
	if s.settings == nil {
		return true
	}
	settings, err := s.settings.Get()
	if err != nil {
		return true
	}
	return settings.HistoryEnabled
}
