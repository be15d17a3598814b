package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes exported files under per-dataset directories.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateDatasetOutputDir creates the output directory for a dataset's exports
func (om *OutputManager) CreateDatasetOutputDir(datasetID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, datasetID)

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create dataset output directory: %w", err)
	}

	return dir, nil
}

// GetOutputFilePath generates a full path for an exported file
func (om *OutputManager) GetOutputFilePath(datasetID, fileName string) (string, error) {
	dir, err := om.CreateDatasetOutputDir(datasetID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(fileName)

	return filepath.Join(dir, cleanFileName), nil
}

// GetDownloadURL generates a download URL for an exported file
func (om *OutputManager) GetDownloadURL(datasetID, fileName string) string {
	cleanFileName := filepath.Base(fileName)
	return fmt.Sprintf("/api/v1/download/%s/%s", datasetID, cleanFileName)
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xlsx", ".xls":
		return "excel"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
