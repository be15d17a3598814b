package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexbi-engine/internal/model"
)

func TestReadCSVTypedCells(t *testing.T) {
	in := strings.NewReader(`"Region", Sales ,Notes
North,100,steady
South,50,
East,abc,dip
`)

	ds, err := ReadCSV(in, "sales.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Region", "Sales", "Notes"}, ds.Columns)
	require.Len(t, ds.Rows, 3)
	assert.NotEmpty(t, ds.ID)

	v, ok := ds.Rows[0]["Sales"].Number()
	require.True(t, ok)
	assert.Equal(t, 100.0, v)

	assert.Equal(t, model.KindText, ds.Rows[2]["Sales"].Kind)
	assert.True(t, ds.Rows[1]["Notes"].IsEmpty())
}

func TestReadCSVRaggedRowsPadded(t *testing.T) {
	in := strings.NewReader("A,B,C\n1,2\n")

	ds, err := ReadCSV(in, "ragged.csv")
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.True(t, ds.Rows[0]["C"].IsEmpty())
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), "empty.csv")
	assert.Error(t, err)
}

func TestReadCSVBlankHeaderNamed(t *testing.T) {
	in := strings.NewReader("Region,,Sales\nNorth,x,1\n")

	ds, err := ReadCSV(in, "blank.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Region", "Column 2", "Sales"}, ds.Columns)
}

func TestFromReaderRejectsUnknownExtension(t *testing.T) {
	_, err := FromReader(strings.NewReader("x"), "notes.txt")
	assert.Error(t, err)
}
