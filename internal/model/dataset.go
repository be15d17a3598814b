package model

import (
	"strconv"
	"strings"
	"time"
)

// ValueKind tags the resolved type of a single cell.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindNumber
	KindText
)

// Value is a cell resolved once at ingestion time. Raw always keeps the
// original string so identifier keys and group labels round-trip unchanged.
type Value struct {
	Kind ValueKind `json:"kind"`
	Num  float64   `json:"num,omitempty"`
	Raw  string    `json:"raw,omitempty"`
}

// ParseCell resolves a raw cell string into a tagged Value.
// "null"/"undefined" markers from exported spreadsheets count as empty.
func ParseCell(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{Kind: KindEmpty}
	}
	switch strings.ToLower(s) {
	case "null", "undefined", "nan", "n/a":
		return Value{Kind: KindEmpty}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Kind: KindNumber, Num: f, Raw: s}
	}
	return Value{Kind: KindText, Raw: s}
}

// IsEmpty reports whether the cell carries no value.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// Number returns the numeric value and whether the cell holds one.
func (v Value) Number() (float64, bool) {
	if v.Kind == KindNumber {
		return v.Num, true
	}
	return 0, false
}

// String returns the raw textual form of the cell ("" when empty).
func (v Value) String() string { return v.Raw }

// Row maps a column name to its resolved cell value.
type Row map[string]Value

// Dataset is an immutable snapshot of an uploaded table: ordered column
// names plus ordered records. Nothing mutates a Dataset after ingestion;
// filters and re-uploads produce a new Dataset with a new ID.
type Dataset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Columns   []string  `json:"columns"`
	Rows      []Row     `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// RowCount returns the number of records.
func (d *Dataset) RowCount() int { return len(d.Rows) }

// Cell returns the value at (row, column); empty when the row has no key.
func (d *Dataset) Cell(row int, column string) Value {
	if row < 0 || row >= len(d.Rows) {
		return Value{Kind: KindEmpty}
	}
	return d.Rows[row][column]
}

// HasColumn reports whether the column is declared.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all values of one column in record order.
func (d *Dataset) Column(name string) []Value {
	out := make([]Value, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r[name]
	}
	return out
}
