package engine

import (
	"fmt"
	"math"
	"sort"

	"flexbi-engine/internal/model"
)

const (
	histogramBins = 10
	radarGroupCap = 8
)

// Bind validates the column selection against the chart type's axis-role
// constraints and produces the derived series for rendering.
//
// bar/pie/line/area/radar/composed accept any column pairing (users may
// visualize unconventional pairings on purpose) and go through Aggregate.
// scatter/histogram/box require numeric axis columns. When filtering leaves
// zero valid rows, Bind returns ErrNoData so the caller can tell "computed
// empty" apart from "not yet computed".
func Bind(ds *model.Dataset, class map[string]model.Classification, chartType model.ChartType, xCol, yCol string, topN int) (*model.ChartSpec, error) {
	spec := &model.ChartSpec{Type: chartType, XColumn: xCol, YColumn: yCol}

	switch chartType {
	case model.ChartBar, model.ChartPie, model.ChartLine, model.ChartArea, model.ChartComposed:
		if !ds.HasColumn(xCol) || !ds.HasColumn(yCol) {
			return nil, ErrNoData
		}
		agg := Aggregate(ds, xCol, yCol, topN)
		if len(agg.Rows) == 0 {
			return nil, ErrNoData
		}
		spec.Rows = agg.Rows
		return spec, nil

	case model.ChartRadar:
		if !ds.HasColumn(xCol) || !ds.HasColumn(yCol) {
			return nil, ErrNoData
		}
		agg := Aggregate(ds, xCol, yCol, 0)
		if len(agg.Rows) == 0 {
			return nil, ErrNoData
		}
		// A radar with dozens of spokes is unreadable; keep the first
		// eight post-sort groups.
		if len(agg.Rows) > radarGroupCap {
			agg.Rows = agg.Rows[:radarGroupCap]
		}
		spec.Rows = agg.Rows
		return spec, nil

	case model.ChartScatter:
		if !numericAxis(class, xCol) || !numericAxis(class, yCol) {
			return nil, ErrNoData
		}
		for _, row := range ds.Rows {
			x, okX := row[xCol].Number()
			y, okY := row[yCol].Number()
			if !okX || !okY {
				continue
			}
			spec.Points = append(spec.Points, model.Point{X: x, Y: y})
		}
		if len(spec.Points) == 0 {
			return nil, ErrNoData
		}
		return spec, nil

	case model.ChartHistogram:
		if !numericAxis(class, xCol) {
			return nil, ErrNoData
		}
		bins, err := Histogram(numericColumn(ds, xCol))
		if err != nil {
			return nil, err
		}
		spec.Bins = bins
		return spec, nil

	case model.ChartBox:
		if !numericAxis(class, xCol) {
			return nil, ErrNoData
		}
		box, err := BoxPlot(numericColumn(ds, xCol))
		if err != nil {
			return nil, err
		}
		spec.Box = box
		return spec, nil
	}

	return nil, fmt.Errorf("unsupported chart type: %s", chartType)
}

func numericAxis(class map[string]model.Classification, col string) bool {
	c, ok := class[col]
	return ok && c.Numeric
}

func numericColumn(ds *model.Dataset, col string) []float64 {
	var nums []float64
	for _, row := range ds.Rows {
		if n, ok := row[col].Number(); ok {
			nums = append(nums, n)
		}
	}
	return nums
}

// Histogram divides [min, max] into exactly ten equal-width bins. Membership
// is floor((v-min)/binSize), clamped to the last bin so the maximum value is
// absorbed rather than overflowing.
func Histogram(values []float64) ([]model.HistogramBin, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	binSize := (max - min) / histogramBins
	bins := make([]model.HistogramBin, histogramBins)
	for i := range bins {
		lo := min + float64(i)*binSize
		hi := lo + binSize
		bins[i] = model.HistogramBin{
			Label: fmt.Sprintf("%.1f-%.1f", lo, hi),
			Lower: lo,
			Upper: hi,
		}
	}

	for _, v := range values {
		idx := 0
		if binSize > 0 {
			idx = int(math.Floor((v - min) / binSize))
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
		}
		bins[idx].Count++
	}
	return bins, nil
}

// BoxPlot summarizes values with floor-indexed quartiles: the sorted array
// is read at floor(n*0.25), floor(n*0.5), floor(n*0.75). This is not the
// interpolated quartile convention; downstream consumers expect these exact
// indices, so do not change it.
func BoxPlot(values []float64) (*model.BoxSummary, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	return &model.BoxSummary{
		Min:   sorted[0],
		Q1:    sorted[int(math.Floor(float64(n)*0.25))],
		Q2:    sorted[int(math.Floor(float64(n)*0.5))],
		Q3:    sorted[int(math.Floor(float64(n)*0.75))],
		Max:   sorted[n-1],
		Count: n,
	}, nil
}
