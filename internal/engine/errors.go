package engine

import "errors"

// ErrNoData signals that filtering or an invalid axis selection left nothing
// to render. Callers show a "no data available" state; it is never fatal.
var ErrNoData = errors.New("no data available for the selected columns")

// ErrInsufficientData signals fewer points than a computation's minimum
// (trend fits need two, histograms and box plots need one valid value).
var ErrInsufficientData = errors.New("insufficient data points")
