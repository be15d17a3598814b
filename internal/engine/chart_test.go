package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexbi-engine/internal/model"
)

func TestBindBarAggregates(t *testing.T) {
	ds := salesDataset(t)
	class := Classify(ds, DefaultThresholds())

	spec, err := Bind(ds, class, model.ChartBar, "Region", "Sales", 0)
	require.NoError(t, err)
	require.Equal(t, []model.AggRow{
		{Key: "North", Value: 130},
		{Key: "South", Value: 50},
	}, spec.Rows)
}

func TestBindUnknownColumnIsNoData(t *testing.T) {
	ds := salesDataset(t)
	class := Classify(ds, DefaultThresholds())

	_, err := Bind(ds, class, model.ChartBar, "Region", "Profit", 0)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBindScatterRequiresNumericAxes(t *testing.T) {
	ds := salesDataset(t)
	class := Classify(ds, DefaultThresholds())

	// Region is categorical: the binder refuses rather than guessing a
	// substitute column.
	_, err := Bind(ds, class, model.ChartScatter, "Region", "Sales", 0)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBindScatterDropsInvalidRows(t *testing.T) {
	ds := newDataset(t,
		[]string{"Price", "Qty"},
		[][]string{
			{"10", "2"},
			{"x", "3"},
			{"30", ""},
			{"40", "4"},
		},
	)
	class := Classify(ds, Thresholds{NumericRatio: 0.5, CategoricalRatio: 0.3})

	spec, err := Bind(ds, class, model.ChartScatter, "Price", "Qty", 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Point{{X: 10, Y: 2}, {X: 40, Y: 4}}, spec.Points)
}

func TestBindRadarCapsGroups(t *testing.T) {
	var rows [][]string
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{fmt.Sprintf("G%02d", i), fmt.Sprintf("%d", 100-i)})
	}
	ds := newDataset(t, []string{"Group", "Value"}, rows)
	class := Classify(ds, DefaultThresholds())

	spec, err := Bind(ds, class, model.ChartRadar, "Group", "Value", 0)
	require.NoError(t, err)
	assert.Len(t, spec.Rows, 8)
	// Post-sort cap: the largest sums survive.
	assert.Equal(t, "G00", spec.Rows[0].Key)
}

func TestHistogramBinning(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bins, err := Histogram(values)
	require.NoError(t, err)
	require.Len(t, bins, 10)

	assert.Equal(t, "0.0-1.0", bins[0].Label)
	assert.Equal(t, "9.0-10.0", bins[9].Label)

	// The maximum value is clamped into the last bin instead of overflowing.
	assert.Equal(t, 2, bins[9].Count)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(values), total)
}

func TestHistogramConstantColumn(t *testing.T) {
	bins, err := Histogram([]float64{5, 5, 5})
	require.NoError(t, err)
	require.Len(t, bins, 10)
	assert.Equal(t, 3, bins[0].Count)
}

func TestHistogramEmpty(t *testing.T) {
	_, err := Histogram(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBoxPlotFloorIndexedQuartiles(t *testing.T) {
	box, err := BoxPlot([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	// floor(10*.25)=2 -> 3, floor(10*.5)=5 -> 6, floor(10*.75)=7 -> 8.
	assert.Equal(t, 1.0, box.Min)
	assert.Equal(t, 3.0, box.Q1)
	assert.Equal(t, 6.0, box.Q2)
	assert.Equal(t, 8.0, box.Q3)
	assert.Equal(t, 10.0, box.Max)
}

func TestBoxPlotOrderingInvariant(t *testing.T) {
	box, err := BoxPlot([]float64{42, 3, 17, 8, 23, 15, 4})
	require.NoError(t, err)

	assert.LessOrEqual(t, box.Min, box.Q1)
	assert.LessOrEqual(t, box.Q1, box.Q2)
	assert.LessOrEqual(t, box.Q2, box.Q3)
	assert.LessOrEqual(t, box.Q3, box.Max)
}

func TestBoxPlotEmpty(t *testing.T) {
	_, err := BoxPlot(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
