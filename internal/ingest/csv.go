package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"flexbi-engine/internal/model"
)

// ReadCSV reads an entire CSV stream into a Dataset. LazyQuotes tolerates
// the malformed quoting common in hand-edited exports; ragged records are
// accepted and padded to the header width.
func ReadCSV(r io.Reader, name string) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rawHeader, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv %s: empty file", name)
		}
		return nil, fmt.Errorf("csv %s: read header: %w", name, err)
	}
	headers := cleanHeaders(rawHeader)

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv %s: read row %d: %w", name, len(records)+2, err)
		}
		records = append(records, append([]string(nil), rec...))
	}

	return newDataset(name, headers, records), nil
}
