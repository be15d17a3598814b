package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/model"
)

type forecastRequest struct {
	Column     string `json:"column"`
	DateColumn string `json:"date_column"`
	Periods    int    `json:"periods"`
}

// ForecastColumn projects future values for a numeric column
// @Summary Forecast a column
// @Description Project future values using the configured forecasting endpoint, falling back to a linear fit
// @Tags analysis
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param request body forecastRequest true "Forecast request"
// @Success 200 {object} map[string]interface{} "Forecast result"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 422 {object} map[string]interface{} "Fewer than two numeric values"
// @Router /datasets/{id}/forecast [post]
func ForecastColumn(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/forecast")
	if !ok {
		return
	}

	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Column == "" {
		http.Error(w, "A 'column' field is required", http.StatusBadRequest)
		return
	}
	if !ds.HasColumn(req.Column) {
		http.Error(w, "Unknown column", http.StatusBadRequest)
		return
	}
	if req.DateColumn != "" && !ds.HasColumn(req.DateColumn) {
		http.Error(w, "Unknown date column", http.StatusBadRequest)
		return
	}

	series := forecastSeries(ds, req.Column, req.DateColumn)
	result, err := forecaster.Forecast(r.Context(), series, req.Periods)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientData) {
			http.Error(w, "At least two numeric values are required to forecast", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Forecast failed", http.StatusInternalServerError)
		return
	}

	recordRun(ds.ID, "forecast", map[string]interface{}{
		"column":      req.Column,
		"date_column": req.DateColumn,
		"periods":     req.Periods,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"column":     req.Column,
		"forecast":   result,
	})
}

// forecastSeries pairs a value column's numeric cells with dates from the
// date column when one was named. Rows without a numeric value are skipped.
func forecastSeries(ds *model.Dataset, valueCol, dateCol string) []model.ForecastPoint {
	var series []model.ForecastPoint
	for i := 0; i < ds.RowCount(); i++ {
		n, ok := ds.Cell(i, valueCol).Number()
		if !ok {
			continue
		}
		p := model.ForecastPoint{Value: n}
		if dateCol != "" {
			p.Date = ds.Cell(i, dateCol).String()
		}
		series = append(series, p)
	}
	return series
}
