package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexbi-engine/internal/model"
)

func TestProfileNumericSummary(t *testing.T) {
	ds := newDataset(t,
		[]string{"Sales"},
		[][]string{{"100"}, {"50"}, {"30"}, {"20"}},
	)

	profiles := Profile(ds)
	p, ok := profiles["Sales"]
	require.True(t, ok)
	require.Equal(t, "numeric", p.Type)
	require.NotNil(t, p.Numeric)

	assert.InDelta(t, 200.0, p.Numeric.Sum, 1e-9)
	assert.InDelta(t, 50.0, p.Numeric.Mean, 1e-9)
	// Even count: median is the midpoint of the two central values (30, 50).
	assert.InDelta(t, 40.0, p.Numeric.Median, 1e-9)
	assert.InDelta(t, 20.0, p.Numeric.Min, 1e-9)
	assert.InDelta(t, 100.0, p.Numeric.Max, 1e-9)
	assert.InDelta(t, 80.0, p.Numeric.Range, 1e-9)
	// Population std: sqrt(mean((x-50)^2)) = sqrt((2500+0+400+900)/4).
	assert.InDelta(t, 30.822070014844883, p.Numeric.StdDev, 1e-9)
}

func TestProfileMeanEqualsSumOverCount(t *testing.T) {
	ds := newDataset(t,
		[]string{"Amount"},
		[][]string{{"12.5"}, {"7.5"}, {""}, {"30"}},
	)

	p := Profile(ds)["Amount"]
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 3, p.Numeric.Count)
	assert.InDelta(t, p.Numeric.Sum/float64(p.Numeric.Count), p.Numeric.Mean, 1e-9)
	assert.Equal(t, 1, p.Missing)
}

func TestProfileCategoricalTopValues(t *testing.T) {
	ds := newDataset(t,
		[]string{"Region"},
		[][]string{
			{"North"}, {"South"}, {"North"}, {"East"},
			{"West"}, {"South"}, {"North"}, {""},
			{"null"}, {"Center"}, {"Delta"}, {"Echo"},
		},
	)

	p := Profile(ds)["Region"]
	require.Equal(t, "categorical", p.Type)

	// "null" counts as missing alongside the empty cell.
	assert.Equal(t, 2, p.Missing)
	assert.InDelta(t, 16.67, p.MissingPct, 1e-9)
	assert.Equal(t, 7, p.Unique)
	assert.Equal(t, "North", p.MostCommon)

	require.Len(t, p.TopValues, 5)
	assert.Equal(t, model.ValueCount{Value: "North", Count: 3}, p.TopValues[0])
	assert.Equal(t, model.ValueCount{Value: "South", Count: 2}, p.TopValues[1])
	// Frequency ties keep first-encountered order.
	assert.Equal(t, "East", p.TopValues[2].Value)
	assert.Equal(t, "West", p.TopValues[3].Value)
	assert.Equal(t, "Center", p.TopValues[4].Value)
}

func TestProfileMixedColumnIsNumeric(t *testing.T) {
	// Any parseable number makes the profiler tag a column numeric, even when
	// the classifier would call it categorical for axis purposes.
	ds := newDataset(t,
		[]string{"Mixed"},
		[][]string{{"a"}, {"b"}, {"c"}, {"4"}},
	)

	p := Profile(ds)["Mixed"]
	assert.Equal(t, "numeric", p.Type)
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 1, p.Numeric.Count)
}

func TestProfileEmptyDataset(t *testing.T) {
	ds := newDataset(t, []string{"A", "B"}, nil)
	assert.Empty(t, Profile(ds))
}
