package engine

import (
	"math"

	"flexbi-engine/internal/model"
)

// FitTrend fits ordinary least squares over (index, value) pairs where the
// x value is the 0-based position in the series, not a timestamp. This is a
// deliberately naive linear projection for pre-populating the analytics
// panel; seasonality-aware forecasting lives behind the remote endpoint.
func FitTrend(values []float64) (model.TrendResult, error) {
	n := len(values)
	if n < 2 {
		return model.TrendResult{}, ErrInsufficientData
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	return model.TrendResult{
		Slope:         slope,
		Intercept:     intercept,
		NextProjected: slope*fn + intercept,
		Points:        n,
	}, nil
}

// Project extrapolates the fitted line for the given number of future steps.
func Project(t model.TrendResult, steps int) []float64 {
	out := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		x := float64(t.Points + i)
		out = append(out, t.Slope*x+t.Intercept)
	}
	return out
}

// Correlate computes the Pearson coefficient over paired values. Series of
// different lengths are compared over the shorter prefix. A series with zero
// variance returns 0 rather than NaN.
func Correlate(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}
	a, b = a[:n], b[:n]

	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
	}
	meanA, meanB := sumA/float64(n), sumB/float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

// CorrelationPairs computes pairwise Pearson coefficients across every
// numeric-profiled column, pairing only rows where both cells hold numbers.
func CorrelationPairs(ds *model.Dataset, profiles map[string]model.ColumnProfile) []model.CorrelationPair {
	var numericCols []string
	for _, col := range ds.Columns {
		if p, ok := profiles[col]; ok && p.Type == "numeric" {
			numericCols = append(numericCols, col)
		}
	}

	var pairs []model.CorrelationPair
	for i := 0; i < len(numericCols); i++ {
		for j := i + 1; j < len(numericCols); j++ {
			colA, colB := numericCols[i], numericCols[j]
			var a, b []float64
			for _, row := range ds.Rows {
				x, okX := row[colA].Number()
				y, okY := row[colB].Number()
				if !okX || !okY {
					continue
				}
				a = append(a, x)
				b = append(b, y)
			}
			pairs = append(pairs, model.CorrelationPair{
				ColumnA:     colA,
				ColumnB:     colB,
				Coefficient: Correlate(a, b),
			})
		}
	}
	return pairs
}
