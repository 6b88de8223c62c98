package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.CleanReport
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.CleanReport),
	}
}

// Save stores or updates a run report.
func (s *RunStore) Save(_ context.Context, report *domain.CleanReport) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[report.ID] = *report
	return nil
}

// Get retrieves a run report by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.CleanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// List returns run reports ordered by start time, newest first.
// A limit of 0 returns all runs.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.CleanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.CleanReport, 0, len(s.runs))
	for _, report := range s.runs {
		result = append(result, report)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.After(result[j].StartedAt)
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all run reports and returns how many were removed.
func (s *RunStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := len(s.runs)
	s.runs = make(map[string]domain.CleanReport)
	return removed, nil
}
