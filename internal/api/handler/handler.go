package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"flexbi-engine/internal/config"
	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/forecast"
	"flexbi-engine/internal/model"
	"flexbi-engine/internal/store"
	"flexbi-engine/pkg/utils"
)

const datasetPrefix = "/api/v1/datasets/"

var (
	thresholds  = engine.DefaultThresholds()
	defaultTopN = 0
	outputs     = utils.NewOutputManager("output")
	forecaster  = forecast.NewClient("", 0)
)

// Configure wires the handlers to the loaded service configuration. Must be
// called before the router starts serving.
func Configure(cfg *config.Config) {
	thresholds = engine.Thresholds{
		NumericRatio:     cfg.Classifier.NumericRatio,
		CategoricalRatio: cfg.Classifier.CategoricalRatio,
	}
	defaultTopN = cfg.DefaultTopN
	outputs = utils.NewOutputManager(cfg.OutputDir)
	forecaster = forecast.NewClient(cfg.ForecastURL, cfg.ForecastTimeout)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// datasetIDFromPath slices the dataset ID out of /api/v1/datasets/{id}{suffix}.
func datasetIDFromPath(path, suffix string) string {
	if !strings.HasPrefix(path, datasetPrefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(datasetPrefix) : len(path)-len(suffix)]
}

// loadDataset fetches a stored dataset and writes the error response itself
// when the ID is missing or unknown.
func loadDataset(w http.ResponseWriter, r *http.Request, suffix string) (*model.Dataset, bool) {
	id := datasetIDFromPath(r.URL.Path, suffix)
	if id == "" {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return nil, false
	}

	ds, err := store.GetDataset(id)
	if err != nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return nil, false
	}
	return ds, true
}
