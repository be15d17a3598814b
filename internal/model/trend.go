package model

// TrendResult is a naive linear fit over a series' positional index.
type TrendResult struct {
	Slope         float64 `json:"slope"`
	Intercept     float64 `json:"intercept"`
	NextProjected float64 `json:"next_projected"`
	Points        int     `json:"points"`
}

// CorrelationPair is the Pearson coefficient between two numeric columns.
type CorrelationPair struct {
	ColumnA     string  `json:"column_a"`
	ColumnB     string  `json:"column_b"`
	Coefficient float64 `json:"coefficient"`
}

// ForecastPoint is one projected value, optionally dated when the remote
// forecasting service supplied calendar-aware output.
type ForecastPoint struct {
	Date  string  `json:"date,omitempty"`
	Value float64 `json:"value"`
}

// ForecastResult carries projected points plus which method produced them:
// "remote" for the external endpoint, "linear" for the local fallback.
type ForecastResult struct {
	Method string          `json:"method"`
	Points []ForecastPoint `json:"points"`
}
