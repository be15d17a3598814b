package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestIdentifierAndMeasure(t *testing.T) {
	ds := newDataset(t,
		[]string{"Roll No", "City", "Marks"},
		[][]string{
			{"1", "Chennai", "90"},
			{"2", "Salem", "80"},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "Roll No", s.X, "identifier beats location for X")
	assert.Equal(t, "Marks", s.Y, "value-pattern numeric beats plain numeric for Y")
}

func TestSuggestLocationOverCategorical(t *testing.T) {
	ds := newDataset(t,
		[]string{"Product", "City", "Revenue"},
		[][]string{
			{"Soap", "Chennai", "90"},
			{"Oil", "Salem", "80"},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "City", s.X)
	assert.Equal(t, "Revenue", s.Y)
}

func TestSuggestValuePatternPreferred(t *testing.T) {
	ds := newDataset(t,
		[]string{"Region", "Headcount", "Score"},
		[][]string{
			{"North", "12", "88"},
			{"South", "15", "91"},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "Score", s.Y, "Score matches a value pattern, Headcount does not")
}

func TestSuggestFallbacks(t *testing.T) {
	// Nothing classifies: two sparse text columns.
	ds := newDataset(t,
		[]string{"Alpha", "Beta"},
		[][]string{
			{"x", ""},
			{"", ""},
			{"", ""},
			{"", ""},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "Alpha", s.X, "falls back to first declared column")
	assert.Equal(t, "Beta", s.Y, "falls back to second declared column")
}

func TestSuggestNeverPicksIdentifierYWhenMeasureExists(t *testing.T) {
	ds := newDataset(t,
		[]string{"Roll No", "Serial", "Total Sales"},
		[][]string{
			{"1", "101", "40"},
			{"2", "102", "60"},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "Roll No", s.X)
	assert.Equal(t, "Total Sales", s.Y)
	assert.False(t, IsIdentifierName(s.Y))
}

func TestSuggestIdentifierYFallbackWithoutReplacement(t *testing.T) {
	// Both columns are identifier-like text; the second-column fallback is
	// identifier-like and no non-identifier numeric exists to swap in.
	ds := newDataset(t,
		[]string{"Student", "Serial"},
		[][]string{
			{"Asha", "S-1"},
			{"Ravi", "S-2"},
		},
	)
	class := Classify(ds, DefaultThresholds())

	s := Suggest(ds.Columns, class)
	assert.Equal(t, "Student", s.X)
	assert.Equal(t, "Serial", s.Y)
}
