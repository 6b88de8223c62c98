package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create a temporary directory for the test database
	tempDir, err := os.MkdirTemp("", "csvclean-test-*")
	require.NoError(t, err)

	// Create store in temp directory
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Return cleanup function
	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// sampleReport builds a run report with realistic values.
func sampleReport(id string, startedAt time.Time) *domain.CleanReport {
	return &domain.CleanReport{
		ID:                   id,
		SourcePath:           "/data/sales.csv",
		OutputPath:           "/data/sales_cleaned.csv",
		StartedAt:            startedAt,
		Duration:             1500 * time.Millisecond,
		RowsIn:               120,
		RowsOut:              114,
		EmptyRowsDropped:     2,
		DuplicateRowsDropped: 4,
		Columns: []domain.ColumnReport{
			{Name: "signup_date", Type: domain.ColumnTypeTemporal, CoercedMissing: 1},
			{Name: "city", Type: domain.ColumnTypeTextual},
			{Name: "amount", Type: domain.ColumnTypeNumeric},
		},
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "csvclean-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "history.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "csvclean-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create store in a nested directory that doesn't exist yet
	nestedDir := filepath.Join(tempDir, "nested", "path", "to", "db")
	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify all directories were created
	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Verify schema_migrations table exists
	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Greater(t, count, 0, "should have at least one migration")

	// Verify the runs table exists
	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
		"runs",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists, "table runs should exist")
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Verify foreign keys are enabled
	var fkEnabled int
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	require.NoError(t, err)
	assert.Equal(t, 1, fkEnabled, "foreign keys should be enabled")
}

func TestStore_Close(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Close()
	assert.NoError(t, err)

	// Verify connection is closed
	err = store.db.Ping()
	assert.Error(t, err)
}

func TestStore_Path(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	path := store.Path()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "history.db")
	assert.FileExists(t, path)
}

func TestStore_RunStoreGetter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store.RunStore())
}

// ==================== RunStore Tests ====================

func TestRunStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	now := time.Now().UTC().Truncate(time.Second)
	report := sampleReport("run-1", now)

	// Save report
	err := runStore.Save(ctx, report)
	require.NoError(t, err)

	// Get report
	retrieved, err := runStore.Get(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)

	// Verify fields
	assert.Equal(t, report.ID, retrieved.ID)
	assert.Equal(t, report.SourcePath, retrieved.SourcePath)
	assert.Equal(t, report.OutputPath, retrieved.OutputPath)
	assert.True(t, report.StartedAt.Equal(retrieved.StartedAt))
	assert.Equal(t, report.Duration, retrieved.Duration)
	assert.Equal(t, report.RowsIn, retrieved.RowsIn)
	assert.Equal(t, report.RowsOut, retrieved.RowsOut)
	assert.Equal(t, report.EmptyRowsDropped, retrieved.EmptyRowsDropped)
	assert.Equal(t, report.DuplicateRowsDropped, retrieved.DuplicateRowsDropped)
	assert.Equal(t, report.Columns, retrieved.Columns)
}

func TestRunStore_SaveUpdate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	now := time.Now().UTC().Truncate(time.Second)
	report := sampleReport("run-1", now)

	// Save original
	err := runStore.Save(ctx, report)
	require.NoError(t, err)

	// Update and save again
	report.RowsOut = 100
	report.DuplicateRowsDropped = 18
	err = runStore.Save(ctx, report)
	require.NoError(t, err)

	// Verify update
	retrieved, err := runStore.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, retrieved.RowsOut)
	assert.Equal(t, 18, retrieved.DuplicateRowsDropped)

	// Still a single row
	all, err := runStore.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRunStore_Save_MissingID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	err := runStore.Save(ctx, &domain.CleanReport{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = runStore.Save(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	retrieved, err := runStore.Get(ctx, "non-existent-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, retrieved)
}

func TestRunStore_List_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	base := time.Now().UTC().Truncate(time.Second)

	// Save runs out of chronological order
	for _, run := range []struct {
		id     string
		offset time.Duration
	}{
		{"run-middle", -time.Hour},
		{"run-newest", 0},
		{"run-oldest", -2 * time.Hour},
	} {
		err := runStore.Save(ctx, sampleReport(run.id, base.Add(run.offset)))
		require.NoError(t, err)
	}

	reports, err := runStore.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "run-newest", reports[0].ID)
	assert.Equal(t, "run-middle", reports[1].ID)
	assert.Equal(t, "run-oldest", reports[2].ID)
}

func TestRunStore_List_Limit(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		report := sampleReport(fmt.Sprintf("run-%d", i), base.Add(time.Duration(i)*time.Minute))
		err := runStore.Save(ctx, report)
		require.NoError(t, err)
	}

	// Limit returns the newest runs only
	reports, err := runStore.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "run-4", reports[0].ID)
	assert.Equal(t, "run-3", reports[1].ID)

	// Zero limit returns everything
	reports, err = runStore.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, reports, 5)
}

func TestRunStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	reports, err := runStore.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestRunStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := runStore.Save(ctx, sampleReport(fmt.Sprintf("run-%d", i), base))
		require.NoError(t, err)
	}

	removed, err := runStore.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	reports, err := runStore.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// Clearing an empty store removes nothing
	removed, err = runStore.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestRunStore_EmptyColumns(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	report := sampleReport("run-1", time.Now().UTC().Truncate(time.Second))
	report.Columns = nil

	err := runStore.Save(ctx, report)
	require.NoError(t, err)

	retrieved, err := runStore.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Empty(t, retrieved.Columns)
}

func TestRunStore_InvalidJSON(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// Manually insert invalid JSON into the database
	now := time.Now().UTC()
	_, err := store.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_path, output_path, started_at, columns)
		VALUES (?, ?, ?, ?, ?)
	`, "run-1", "/data/a.csv", "/data/a_cleaned.csv", now, "invalid-json")
	require.NoError(t, err)

	runStore := store.RunStore()

	// Attempting to get the run should fail due to invalid JSON
	_, err = runStore.Get(ctx, "run-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

// ==================== Error Handling Tests ====================

func TestStore_ContextCancellation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	// Create a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runStore := store.RunStore()
	report := sampleReport("run-1", time.Now().UTC())

	// Operations with cancelled context should fail
	err := runStore.Save(ctx, report)
	assert.Error(t, err)
}

// ==================== Concurrent Access Tests ====================

func TestStore_ConcurrentWrites(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	runStore := store.RunStore()

	// Launch multiple goroutines writing to the store
	const numGoroutines = 10
	done := make(chan error, numGoroutines)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			report := sampleReport(fmt.Sprintf("run-%d", id), base)
			done <- runStore.Save(ctx, report)
		}(i)
	}

	// Wait for all goroutines to complete
	for i := 0; i < numGoroutines; i++ {
		err := <-done
		assert.NoError(t, err)
	}

	// Verify all runs were saved
	reports, err := runStore.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, reports, numGoroutines)
}

// ==================== Migration Tests ====================

func TestStore_MigrationIdempotency(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "csvclean-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create store (runs migrations)
	store1, err := NewStore(tempDir)
	require.NoError(t, err)

	// Check migration version
	var version1 int
	err = store1.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version1)
	require.NoError(t, err)

	// Check migration count
	var count1 int
	err = store1.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count1)
	require.NoError(t, err)

	// Close and reopen (should not run migrations again)
	err = store1.Close()
	require.NoError(t, err)

	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	// Check migration version is the same
	var version2 int
	err = store2.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version2)
	require.NoError(t, err)
	assert.Equal(t, version1, version2)

	var count2 int
	err = store2.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count2)
	require.NoError(t, err)
	assert.Equal(t, count1, count2)
}

func TestStore_PersistenceAcrossReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "csvclean-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Save a run and close the store
	store1, err := NewStore(tempDir)
	require.NoError(t, err)

	report := sampleReport("run-1", now)
	err = store1.RunStore().Save(ctx, report)
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	// Reopen and verify the run survived
	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	retrieved, err := store2.RunStore().Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, retrieved.ID)
	assert.True(t, report.StartedAt.Equal(retrieved.StartedAt))
	assert.Equal(t, report.Columns, retrieved.Columns)
}
