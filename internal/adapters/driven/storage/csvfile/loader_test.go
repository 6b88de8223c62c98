package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
)

// writeCSV drops a fixture file into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	t.Run("default tokens", func(t *testing.T) {
		loader := NewLoader(nil)
		require.NotNil(t, loader)
		assert.NotEmpty(t, loader.missingTokens)
	})

	t.Run("custom tokens lowercased", func(t *testing.T) {
		loader := NewLoader([]string{"MISSING"})
		_, ok := loader.missingTokens["missing"]
		assert.True(t, ok)
	})
}

func TestLoader_Load_Success(t *testing.T) {
	path := writeCSV(t, "people.csv", "name,age,joined\nAlice, 30 ,2023-01-05\nBob,NA,\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, []string{"name", "age", "joined"}, table.ColumnNames())
	assert.Equal(t, 2, table.RowCount())

	// " 30 " is trimmed, "NA" and the empty field are missing.
	assert.Equal(t, domain.NewCell("30"), table.Column("age").Cells[0])
	assert.True(t, table.Column("age").Cells[1].Missing)
	assert.True(t, table.Column("joined").Cells[1].Missing)
	assert.Equal(t, "Alice", table.Column("name").Cells[0].Value)

	require.NoError(t, table.Validate())
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader(nil)

	table, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoader_Load_RaggedRows(t *testing.T) {
	path := writeCSV(t, "ragged.csv", "a,b\n1,2\n3\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestLoader_Load_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "header.csv", "a,b,c\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, 0, table.RowCount())
}

func TestLoader_Load_BOMHeader(t *testing.T) {
	path := writeCSV(t, "bom.csv", "\uFEFFname,age\nAlice,30\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, table.ColumnNames())
}

func TestLoader_Load_HeaderHygiene(t *testing.T) {
	path := writeCSV(t, "headers.csv", ",name,name\n1,2,3\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"column_1", "name", "name_2"}, table.ColumnNames())
	require.NoError(t, table.Validate())
}

func TestLoader_Load_MissingTokensCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "tokens.csv", "v\nNaN\nNULL\nn/a\nNone\nreal\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	column := table.Column("v")
	for i := 0; i < 4; i++ {
		assert.True(t, column.Cells[i].Missing, "row %d should be missing", i)
	}
	assert.Equal(t, "real", column.Cells[4].Value)
}

func TestLoader_Load_QuotedFields(t *testing.T) {
	path := writeCSV(t, "quoted.csv", "a,b\n\"x, y\",\"line\nbreak\"\n")

	loader := NewLoader(nil)
	table, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "x, y", table.Column("a").Cells[0].Value)
	assert.Equal(t, "line\nbreak", table.Column("b").Cells[0].Value)
}

func TestLoader_Load_Cancelled(t *testing.T) {
	path := writeCSV(t, "big.csv", "a\n1\n2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(nil)
	_, err := loader.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColumnNames(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{
			name:   "clean header",
			header: []string{"a", "b"},
			want:   []string{"a", "b"},
		},
		{
			name:   "blank names",
			header: []string{"", "  ", "c"},
			want:   []string{"column_1", "column_2", "c"},
		},
		{
			name:   "duplicates numbered",
			header: []string{"a", "a", "a"},
			want:   []string{"a", "a_2", "a_3"},
		},
		{
			name:   "suffix collision avoided",
			header: []string{"a_2", "a", "a"},
			want:   []string{"a_2", "a", "a_3"},
		},
		{
			name:   "whitespace trimmed",
			header: []string{" name ", "age"},
			want:   []string{"name", "age"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, columnNames(tc.header))
		})
	}
}

func TestLoaderInterfaceCompliance(t *testing.T) {
	var _ driven.TableLoader = (*Loader)(nil)
}
