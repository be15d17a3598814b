package handler

import (
	"fmt"
	"net/http"

	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/ingest"
	"flexbi-engine/internal/store"
)

// UploadDataset ingests an uploaded spreadsheet and profiles it
// @Summary Upload a dataset
// @Description Upload a CSV or Excel file; the dataset is stored, classified and profiled in one pass
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV, TSV or Excel file"
// @Success 200 {object} map[string]interface{} "Dataset stored with profile and axis suggestion"
// @Failure 400 {object} map[string]interface{} "Missing or unreadable file"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [post]
func UploadDataset(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A file upload field named 'file' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ds, err := ingest.FromReader(file, header.Filename)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse file: %v", err), http.StatusBadRequest)
		return
	}

	if err := store.SaveDataset(ds); err != nil {
		http.Error(w, "Failed to save dataset", http.StatusInternalServerError)
		return
	}

	class := engine.Classify(ds, thresholds)
	profiles := engine.Profile(ds)
	if err := store.SaveProfile(ds.ID, profiles); err != nil {
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}
	suggestion := engine.Suggest(ds.Columns, class)

	fmt.Printf("📊 Dataset %s ingested: %d columns, %d rows\n", ds.ID, len(ds.Columns), ds.RowCount())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Dataset uploaded successfully!",
		"dataset_id":     ds.ID,
		"name":           ds.Name,
		"columns":        ds.Columns,
		"row_count":      ds.RowCount(),
		"classification": class,
		"profile":        profiles,
		"suggestion":     suggestion,
		"created_at":     ds.CreatedAt,
	})
}

// ListDatasets retrieves all stored datasets
// @Summary List datasets
// @Description Get all stored datasets, newest first
// @Tags datasets
// @Produce json
// @Success 200 {array} map[string]interface{} "List of datasets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [get]
func ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := store.ListDatasets()
	if err != nil {
		http.Error(w, "Failed to fetch datasets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, datasets)
}

// GetDataset retrieves a stored dataset with its rows
// @Summary Get dataset
// @Description Retrieve a stored dataset including parsed rows
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func GetDataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// GetColumns retrieves a dataset's columns with classification roles
// @Summary Get dataset columns
// @Description Retrieve column names and their classified roles
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Columns with roles"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/columns [get]
func GetColumns(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/columns")
	if !ok {
		return
	}
	class := engine.Classify(ds, thresholds)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":     ds.ID,
		"columns":        ds.Columns,
		"classification": class,
	})
}

// DeleteDataset removes a dataset and its cached profile
// @Summary Delete dataset
// @Description Delete a dataset, its cached profile and its analysis history
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset deleted"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets/{id} [delete]
func DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := datasetIDFromPath(r.URL.Path, "")
	if id == "" {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	if err := store.DeleteDataset(id); err != nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Dataset deleted successfully",
		"dataset_id": id,
	})
}
