package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexbi-engine/internal/model"
)

func TestAggregateGroupAndSum(t *testing.T) {
	res := Aggregate(salesDataset(t), "Region", "Sales", 0)

	require.True(t, res.Grouped)
	require.Equal(t, []model.AggRow{
		{Key: "North", Value: 130},
		{Key: "South", Value: 50},
	}, res.Rows)
}

func TestAggregateSumMatchesSource(t *testing.T) {
	ds := newDataset(t,
		[]string{"Region", "Sales"},
		[][]string{
			{"North", "100"},
			{"South", "50"},
			{"", "999"},      // empty key skipped
			{"North", "abc"}, // non-numeric value skipped
			{"East", "20"},
		},
	)

	res := Aggregate(ds, "Region", "Sales", 0)

	var total float64
	for _, r := range res.Rows {
		total += r.Value
	}
	// Equals the source sum restricted to rows with a non-empty key and a
	// valid number: 100 + 50 + 20.
	assert.InDelta(t, 170.0, total, 1e-9)
}

func TestAggregateIdentifierNeverSums(t *testing.T) {
	ds := newDataset(t,
		[]string{"RollNo", "Marks"},
		[][]string{
			{"3", "70"},
			{"1", "90"},
			{"2", "80"},
		},
	)

	res := Aggregate(ds, "RollNo", "Marks", 0)

	require.False(t, res.Grouped)
	// One output row per valid input row, sorted numerically by key.
	require.Equal(t, []model.AggRow{
		{Key: "1", Value: 90},
		{Key: "2", Value: 80},
		{Key: "3", Value: 70},
	}, res.Rows)
}

func TestAggregateIdentifierLexicographicFallback(t *testing.T) {
	ds := newDataset(t,
		[]string{"Serial", "Score"},
		[][]string{
			{"S-10", "5"},
			{"S-2", "7"},
			{"S-1", "9"},
		},
	)

	res := Aggregate(ds, "Serial", "Score", 0)

	// "S-10" sorts before "S-2" by string comparison.
	require.Equal(t, []string{"S-1", "S-10", "S-2"}, keysOf(res.Rows))
}

func TestAggregateIdentifierRowCountEqualsValidRows(t *testing.T) {
	ds := newDataset(t,
		[]string{"RollNo", "Marks"},
		[][]string{
			{"1", "90"},
			{"2", ""},   // missing value dropped
			{"", "80"},  // missing key dropped
			{"3", "70"},
			{"1", "60"}, // duplicate keys do not collapse
		},
	)

	res := Aggregate(ds, "RollNo", "Marks", 0)
	assert.Len(t, res.Rows, 3)
}

func TestAggregateTopN(t *testing.T) {
	ds := newDataset(t,
		[]string{"Region", "Sales"},
		[][]string{
			{"A", "10"}, {"B", "40"}, {"C", "30"}, {"D", "20"},
		},
	)

	res := Aggregate(ds, "Region", "Sales", 2)
	require.Equal(t, []model.AggRow{
		{Key: "B", Value: 40},
		{Key: "C", Value: 30},
	}, res.Rows)
}

func TestAggregateDeterministicTies(t *testing.T) {
	ds := newDataset(t,
		[]string{"Region", "Sales"},
		[][]string{
			{"B", "10"}, {"A", "10"}, {"C", "10"},
		},
	)

	first := Aggregate(ds, "Region", "Sales", 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Rows, Aggregate(ds, "Region", "Sales", 0).Rows)
	}
	assert.Equal(t, []string{"A", "B", "C"}, keysOf(first.Rows))
}

func keysOf(rows []model.AggRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Key
	}
	return out
}
