package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexbi-engine/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { _ = Close() })
}

func sampleDataset(id string) *model.Dataset {
	return &model.Dataset{
		ID:      id,
		Name:    "sales.csv",
		Columns: []string{"Region", "Sales"},
		Rows: []model.Row{
			{"Region": model.ParseCell("North"), "Sales": model.ParseCell("100")},
			{"Region": model.ParseCell("South"), "Sales": model.ParseCell("50")},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestSaveAndGetDataset(t *testing.T) {
	initTestDB(t)

	ds := sampleDataset("ds-1")
	require.NoError(t, SaveDataset(ds))

	got, err := GetDataset("ds-1")
	require.NoError(t, err)
	assert.Equal(t, ds.Columns, got.Columns)
	require.Len(t, got.Rows, 2)

	v, ok := got.Rows[0]["Sales"].Number()
	require.True(t, ok, "typed values survive the JSON round trip")
	assert.Equal(t, 100.0, v)
}

func TestListDatasets(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveDataset(sampleDataset("ds-1")))
	require.NoError(t, SaveDataset(sampleDataset("ds-2")))

	list, err := ListDatasets()
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, list[0]["rowCount"])
}

func TestDeleteDataset(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveDataset(sampleDataset("ds-1")))
	require.NoError(t, DeleteDataset("ds-1"))

	_, err := GetDataset("ds-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, DeleteDataset("ds-1"), sql.ErrNoRows)
}

func TestProfileRoundTrip(t *testing.T) {
	initTestDB(t)

	profiles := map[string]model.ColumnProfile{
		"Sales": {
			Column:  "Sales",
			Type:    "numeric",
			Numeric: &model.NumericSummary{Mean: 75, Sum: 150, Count: 2, Min: 50, Max: 100, Range: 50},
		},
	}
	require.NoError(t, SaveProfile("ds-1", profiles))

	got, err := GetProfile("ds-1")
	require.NoError(t, err)
	require.NotNil(t, got["Sales"].Numeric)
	assert.Equal(t, 150.0, got["Sales"].Numeric.Sum)
}

func TestGetProfileMissingIsNil(t *testing.T) {
	initTestDB(t)

	got, err := GetProfile("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRunsHistory(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveRun("run-1", "ds-1", "aggregate", map[string]interface{}{"group": "Region"}))
	require.NoError(t, SaveRun("run-2", "ds-1", "chart", map[string]interface{}{"type": "bar"}))

	runs, err := ListRuns("ds-1")
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
