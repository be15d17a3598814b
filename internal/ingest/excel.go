package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"flexbi-engine/internal/model"
)

// ReadExcel reads the first sheet of an XLSX workbook into a Dataset. The
// first row is the header; excelize returns formatted cell strings, so
// numbers resolve through the same ParseCell path as CSV cells.
func ReadExcel(r io.Reader, name string) (*model.Dataset, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx %s: open: %w", name, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s: workbook has no sheets", name)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx %s: read sheet %q: %w", name, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx %s: sheet %q is empty", name, sheets[0])
	}

	headers := cleanHeaders(rows[0])
	return newDataset(name, headers, rows[1:]), nil
}
