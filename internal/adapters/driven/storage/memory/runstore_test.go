package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

func TestNewRunStore(t *testing.T) {
	store := NewRunStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.runs)
}

func TestRunStore_Save_Success(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	report := &domain.CleanReport{
		ID:                   "run-1",
		SourcePath:           "/data/sales.csv",
		OutputPath:           "/data/sales_cleaned.csv",
		StartedAt:            time.Now().UTC(),
		Duration:             2 * time.Second,
		RowsIn:               100,
		RowsOut:              95,
		EmptyRowsDropped:     3,
		DuplicateRowsDropped: 2,
		Columns: []domain.ColumnReport{
			{Name: "signup_date", Type: domain.ColumnTypeTemporal, CoercedMissing: 1},
			{Name: "amount", Type: domain.ColumnTypeNumeric},
		},
	}

	err := store.Save(ctx, report)
	require.NoError(t, err)

	// Verify it was saved
	saved, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", saved.ID)
	assert.Equal(t, "/data/sales.csv", saved.SourcePath)
	assert.Equal(t, 95, saved.RowsOut)
	assert.Equal(t, report.Columns, saved.Columns)
}

func TestRunStore_Save_Update(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	report1 := &domain.CleanReport{ID: "run-1", RowsIn: 10, RowsOut: 10}
	report2 := &domain.CleanReport{ID: "run-1", RowsIn: 10, RowsOut: 7}

	err := store.Save(ctx, report1)
	require.NoError(t, err)

	err = store.Save(ctx, report2)
	require.NoError(t, err)

	// Should have the updated values
	saved, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 7, saved.RowsOut)

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRunStore_Save_InvalidInput(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	err := store.Save(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Save(ctx, &domain.CleanReport{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	report, err := store.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, report)
}

func TestRunStore_List_NewestFirst(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	base := time.Now().UTC()
	reports := []*domain.CleanReport{
		{ID: "run-oldest", StartedAt: base.Add(-2 * time.Hour)},
		{ID: "run-newest", StartedAt: base},
		{ID: "run-middle", StartedAt: base.Add(-time.Hour)},
	}

	for _, report := range reports {
		err := store.Save(ctx, report)
		require.NoError(t, err)
	}

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "run-newest", list[0].ID)
	assert.Equal(t, "run-middle", list[1].ID)
	assert.Equal(t, "run-oldest", list[2].ID)
}

func TestRunStore_List_Limit(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		report := &domain.CleanReport{
			ID:        fmt.Sprintf("run-%d", i),
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		err := store.Save(ctx, report)
		require.NoError(t, err)
	}

	list, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "run-4", list[0].ID)
	assert.Equal(t, "run-3", list[1].ID)
}

func TestRunStore_List_Empty(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunStore_Clear(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := store.Save(ctx, &domain.CleanReport{ID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
	}

	removed, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Clearing again removes nothing
	removed, err = store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestRunStore_ConcurrentSaves(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			report := &domain.CleanReport{
				ID:        fmt.Sprintf("run-%d", id),
				StartedAt: time.Now().UTC(),
			}
			_ = store.Save(ctx, report)
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, numGoroutines)
}
