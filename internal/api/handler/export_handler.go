package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/model"
)

type exportRequest struct {
	Group  string `json:"group"`
	Value  string `json:"value"`
	TopN   int    `json:"top_n"`
	Format string `json:"format"`
}

// ExportAggregation writes an aggregation result to a downloadable file
// @Summary Export an aggregation
// @Description Run an aggregation and write the result as CSV or JSON into the dataset's output directory
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param request body exportRequest true "Export request"
// @Success 200 {object} map[string]interface{} "Export written"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets/{id}/export [post]
func ExportAggregation(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, r, "/export")
	if !ok {
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Group == "" || req.Value == "" {
		http.Error(w, "Fields 'group' and 'value' are required", http.StatusBadRequest)
		return
	}
	if !ds.HasColumn(req.Group) || !ds.HasColumn(req.Value) {
		http.Error(w, "Unknown group or value column", http.StatusBadRequest)
		return
	}
	format := strings.ToLower(req.Format)
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		http.Error(w, "Format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	result := engine.Aggregate(ds, req.Group, req.Value, req.TopN)

	fileName := fmt.Sprintf("%s_by_%s.%s", req.Value, req.Group, format)
	filePath, err := outputs.GetOutputFilePath(ds.ID, fileName)
	if err != nil {
		http.Error(w, "Failed to prepare output directory", http.StatusInternalServerError)
		return
	}

	if err := writeExport(filePath, format, result); err != nil {
		http.Error(w, "Failed to write export file", http.StatusInternalServerError)
		return
	}

	size, _ := outputs.GetFileSize(filePath)
	fmt.Printf("📁 Exported %s (%d bytes) for dataset %s\n", fileName, size, ds.ID)

	recordRun(ds.ID, "export", map[string]interface{}{
		"group":  req.Group,
		"value":  req.Value,
		"top_n":  req.TopN,
		"format": format,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Export written successfully",
		"dataset_id":   ds.ID,
		"file_name":    fileName,
		"file_type":    outputs.GetFileType(fileName),
		"file_size":    size,
		"download_url": outputs.GetDownloadURL(ds.ID, fileName),
		"rows":         len(result.Rows),
	})
}

func writeExport(filePath, format string, result model.AggregationResult) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if format == "json" {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{result.GroupColumn, result.ValueColumn}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range result.Rows {
		value := strconv.FormatFloat(row.Value, 'f', -1, 64)
		if err := cw.Write([]string{row.Key, value}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DownloadFile serves an exported file
// @Summary Download an export
// @Description Download a previously exported file from a dataset's output directory
// @Tags exports
// @Produce application/octet-stream
// @Param datasetID path string true "Dataset ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 400 {object} map[string]interface{} "Invalid URL format"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{datasetID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{datasetID}/{filename}
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	datasetID := pathParts[3]
	fileName := filepath.Base(pathParts[4])

	filePath := filepath.Join(outputs.BaseOutputDir, datasetID, fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}
