package model

// ChartType enumerates the supported chart kinds.
type ChartType string

const (
	ChartBar       ChartType = "bar"
	ChartPie       ChartType = "pie"
	ChartLine      ChartType = "line"
	ChartArea      ChartType = "area"
	ChartScatter   ChartType = "scatter"
	ChartRadar     ChartType = "radar"
	ChartComposed  ChartType = "composed"
	ChartHistogram ChartType = "histogram"
	ChartBox       ChartType = "box"
)

// AggRow is one output row of an aggregation: the grouping key and the
// summed (or raw, for identifier keys) value.
type AggRow struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// AggregationResult is an ordered sequence of aggregation rows.
// Grouped is false when the group column is identifier-like and rows were
// emitted one per record instead of being collapsed.
type AggregationResult struct {
	GroupColumn string   `json:"group_column"`
	ValueColumn string   `json:"value_column"`
	Grouped     bool     `json:"grouped"`
	Rows        []AggRow `json:"rows"`
}

// Point is one (x, y) pair of a scatter series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HistogramBin is one of the ten equal-width bins.
type HistogramBin struct {
	Label string  `json:"label"` // "<lower>-<upper>", one decimal place
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// BoxSummary is the five-number summary using floor-indexed quartiles.
type BoxSummary struct {
	Min   float64 `json:"min"`
	Q1    float64 `json:"q1"`
	Q2    float64 `json:"q2"`
	Q3    float64 `json:"q3"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// ChartSpec is the rendering payload handed to the charting collaborator.
// Exactly one of Rows/Points/Bins/Box is populated, matching Type.
type ChartSpec struct {
	Type    ChartType      `json:"type"`
	XColumn string         `json:"x_column"`
	YColumn string         `json:"y_column,omitempty"`
	Rows    []AggRow       `json:"rows,omitempty"`
	Points  []Point        `json:"points,omitempty"`
	Bins    []HistogramBin `json:"bins,omitempty"`
	Box     *BoxSummary    `json:"box,omitempty"`
}
