package engine

import (
	"testing"

	"flexbi-engine/internal/model"
)

// newDataset builds an immutable dataset from raw cell strings, resolving
// each cell exactly as ingestion does.
func newDataset(t *testing.T, columns []string, rows [][]string) *model.Dataset {
	t.Helper()

	ds := &model.Dataset{ID: "test", Name: "test", Columns: columns}
	for _, raw := range rows {
		row := make(model.Row, len(columns))
		for i, col := range columns {
			if i < len(raw) {
				row[col] = model.ParseCell(raw[i])
			} else {
				row[col] = model.Value{Kind: model.KindEmpty}
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

// salesDataset is the canonical Region/Sales fixture used across tests.
func salesDataset(t *testing.T) *model.Dataset {
	t.Helper()
	return newDataset(t,
		[]string{"Region", "Sales"},
		[][]string{
			{"North", "100"},
			{"South", "50"},
			{"North", "30"},
		},
	)
}
