// Package ingest turns uploaded tabular files into immutable Datasets with
// every cell resolved once into the typed value union. CSV and Excel are
// supported; the engine itself never re-parses cell strings.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"flexbi-engine/internal/model"
)

// FromFile reads a local CSV or XLSX file into a Dataset.
func FromFile(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f, filepath.Base(path))
}

// FromReader dispatches on the file name's extension.
func FromReader(r io.Reader, name string) (*model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv":
		return ReadCSV(r, name)
	case ".xlsx", ".xlsm":
		return ReadExcel(r, name)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", name)
	}
}

// newDataset assembles the immutable dataset from cleaned headers and raw
// cell strings. Records with fewer cells than headers pad with empty values
// so every record's keys stay a subset of the declared columns.
func newDataset(name string, headers []string, records [][]string) *model.Dataset {
	ds := &model.Dataset{
		ID:        uuid.New().String(),
		Name:      name,
		Columns:   headers,
		CreatedAt: time.Now().UTC(),
	}
	for _, rec := range records {
		row := make(model.Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = model.ParseCell(rec[i])
			} else {
				row[h] = model.Value{Kind: model.KindEmpty}
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

// cleanHeader trims whitespace and strips stray quotes exported by some
// spreadsheet tools.
func cleanHeader(h string) string {
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}

func cleanHeaders(raw []string) []string {
	out := make([]string, 0, len(raw))
	for i, h := range raw {
		c := cleanHeader(h)
		if c == "" {
			c = fmt.Sprintf("Column %d", i+1)
		}
		out = append(out, c)
	}
	return out
}
