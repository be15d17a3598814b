package handler

import (
	"errors"
	"net/http"

	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/model"
	"flexbi-engine/internal/store"
	"flexbi-engine/pkg/utils"

	"github.com/google/uuid"
)

// GetProfile retrieves per-column statistics for a dataset
// @Summary Get dataset profile
// @Description Retrieve per-column statistics; served from the cached profile when available
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Column profiles"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/profile [get]
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/profile")
	if !ok {
		return
	}

	profiles, err := store.GetProfile(ds.ID)
	if err != nil {
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = engine.Profile(ds)
		if err := store.SaveProfile(ds.ID, profiles); err != nil {
			http.Error(w, "Failed to cache profile", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"profile":    profiles,
	})
}

// GetSuggestion recommends a default chart axis pairing
// @Summary Get axis suggestion
// @Description Recommend a default X/Y column pairing for charting
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Suggested axes"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/suggestion [get]
func GetSuggestion(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/suggestion")
	if !ok {
		return
	}

	class := engine.Classify(ds, thresholds)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"suggestion": engine.Suggest(ds.Columns, class),
	})
}

// GetAggregate groups a dataset by one column and sums another
// @Summary Aggregate a dataset
// @Description Group by one column and sum another; identifier group columns yield one row per record instead
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Param group query string true "Group column"
// @Param value query string true "Value column"
// @Param top_n query int false "Keep only the first N rows after sorting"
// @Success 200 {object} map[string]interface{} "Aggregation result"
// @Failure 400 {object} map[string]interface{} "Missing or unknown columns"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/aggregate [get]
func GetAggregate(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/aggregate")
	if !ok {
		return
	}

	groupCol := r.URL.Query().Get("group")
	valueCol := r.URL.Query().Get("value")
	if groupCol == "" || valueCol == "" {
		http.Error(w, "Query parameters 'group' and 'value' are required", http.StatusBadRequest)
		return
	}
	if !ds.HasColumn(groupCol) || !ds.HasColumn(valueCol) {
		http.Error(w, "Unknown group or value column", http.StatusBadRequest)
		return
	}
	topN := utils.ParsePositiveInt(r.URL.Query().Get("top_n"), defaultTopN)

	result := engine.Aggregate(ds, groupCol, valueCol, topN)
	recordRun(ds.ID, "aggregate", map[string]interface{}{
		"group": groupCol,
		"value": valueCol,
		"top_n": topN,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"result":     result,
	})
}

// GetChart binds a dataset onto a chart payload
// @Summary Bind a chart
// @Description Produce the data payload for a chart type from the dataset's columns
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Param type query string true "Chart type (bar, pie, line, area, scatter, radar, composed, histogram, box)"
// @Param x query string true "X axis column"
// @Param y query string false "Y axis column (unused for histogram and box)"
// @Param top_n query int false "Keep only the first N rows after sorting"
// @Success 200 {object} map[string]interface{} "Chart payload"
// @Failure 400 {object} map[string]interface{} "Bad chart request"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 422 {object} map[string]interface{} "No usable data for the requested chart"
// @Router /datasets/{id}/chart [get]
func GetChart(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/chart")
	if !ok {
		return
	}

	q := r.URL.Query()
	chartType := model.ChartType(q.Get("type"))
	xCol := q.Get("x")
	if chartType == "" || xCol == "" {
		http.Error(w, "Query parameters 'type' and 'x' are required", http.StatusBadRequest)
		return
	}
	topN := utils.ParsePositiveInt(q.Get("top_n"), defaultTopN)

	class := engine.Classify(ds, thresholds)
	spec, err := engine.Bind(ds, class, chartType, xCol, q.Get("y"), topN)
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			http.Error(w, "No usable data for the requested chart", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordRun(ds.ID, "chart", map[string]interface{}{
		"type":  string(chartType),
		"x":     xCol,
		"y":     q.Get("y"),
		"top_n": topN,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"chart":      spec,
	})
}

// GetTrend fits a linear trend over a numeric column
// @Summary Fit a trend
// @Description Fit a least-squares line over a numeric column's values in row order
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Param column query string true "Numeric column"
// @Success 200 {object} map[string]interface{} "Trend fit"
// @Failure 400 {object} map[string]interface{} "Missing or unknown column"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 422 {object} map[string]interface{} "Fewer than two numeric values"
// @Router /datasets/{id}/trend [get]
func GetTrend(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/trend")
	if !ok {
		return
	}

	col := r.URL.Query().Get("column")
	if col == "" {
		http.Error(w, "Query parameter 'column' is required", http.StatusBadRequest)
		return
	}
	if !ds.HasColumn(col) {
		http.Error(w, "Unknown column", http.StatusBadRequest)
		return
	}

	trend, err := engine.FitTrend(numericSeries(ds, col))
	if err != nil {
		http.Error(w, "At least two numeric values are required to fit a trend", http.StatusUnprocessableEntity)
		return
	}

	recordRun(ds.ID, "trend", map[string]interface{}{"column": col})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"column":     col,
		"trend":      trend,
	})
}

// GetCorrelations lists Pearson coefficients between numeric column pairs
// @Summary Get correlations
// @Description Compute the Pearson coefficient for every pair of numeric columns
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Correlation pairs"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/correlations [get]
func GetCorrelations(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/correlations")
	if !ok {
		return
	}

	profiles, err := store.GetProfile(ds.ID)
	if err != nil {
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = engine.Profile(ds)
	}

	pairs := engine.CorrelationPairs(ds, profiles)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"pairs":      pairs,
		"count":      len(pairs),
	})
}

// ListRuns retrieves the analysis history for a dataset
// @Summary List analysis runs
// @Description Retrieve recorded aggregation, chart, trend, forecast and export runs
// @Tags analysis
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Run history"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/runs")
	if !ok {
		return
	}

	runs, err := store.ListRuns(ds.ID)
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": ds.ID,
		"runs":       runs,
		"count":      len(runs),
	})
}

// numericSeries collects a column's numeric cells in row order.
func numericSeries(ds *model.Dataset, col string) []float64 {
	var out []float64
	for _, v := range ds.Column(col) {
		if n, ok := v.Number(); ok {
			out = append(out, n)
		}
	}
	return out
}

// recordRun stores one line of analysis history. A history write failure
// never fails the analysis itself.
func recordRun(datasetID, kind string, params map[string]interface{}) {
	_ = store.SaveRun(uuid.New().String(), datasetID, kind, params)
}
