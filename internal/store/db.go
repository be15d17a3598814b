package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"flexbi-engine/internal/model"
)

var db *sql.DB

// InitDB opens the SQLite database and creates tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT,
		columns TEXT,
		rows TEXT,
		row_count INTEGER,
		created_at DATETIME
	);
	`
	profileTable := `
	CREATE TABLE IF NOT EXISTS profiles (
		dataset_id TEXT PRIMARY KEY,
		profile TEXT,
		created_at DATETIME
	);
	`
	runTable := `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		id TEXT PRIMARY KEY,
		dataset_id TEXT,
		kind TEXT,
		params TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{datasetTable, profileTable, runTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveDataset stores an ingested dataset. Columns and rows are serialized
// as JSON; the dataset is immutable so the row is written once.
func SaveDataset(ds *model.Dataset) error {
	colsJSON, err := json.Marshal(ds.Columns)
	if err != nil {
		return err
	}
	rowsJSON, err := json.Marshal(ds.Rows)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO datasets (id, name, columns, rows, row_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ds.ID, ds.Name, colsJSON, rowsJSON, len(ds.Rows), ds.CreatedAt,
	)
	return err
}

// GetDataset fetches a full dataset by ID.
func GetDataset(id string) (*model.Dataset, error) {
	var name, colsJSON, rowsJSON string
	var createdAt time.Time

	err := db.QueryRow(`SELECT name, columns, rows, created_at FROM datasets WHERE id = ?`, id).
		Scan(&name, &colsJSON, &rowsJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{ID: id, Name: name, CreatedAt: createdAt}
	if err := json.Unmarshal([]byte(colsJSON), &ds.Columns); err != nil {
		return nil, fmt.Errorf("decode columns for %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(rowsJSON), &ds.Rows); err != nil {
		return nil, fmt.Errorf("decode rows for %s: %w", id, err)
	}
	return ds, nil
}

// ListDatasets returns basic info for all stored datasets, newest first.
func ListDatasets() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, name, row_count, created_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		var id, name string
		var rowCount int
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &rowCount, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, map[string]interface{}{
			"id":        id,
			"name":      name,
			"rowCount":  rowCount,
			"createdAt": createdAt,
		})
	}
	return out, rows.Err()
}

// DeleteDataset removes a dataset and its cached profile.
func DeleteDataset(id string) error {
	if _, err := db.Exec(`DELETE FROM profiles WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveProfile caches the computed column profiles for a dataset version.
// Re-uploads get new dataset IDs, so a profile row never goes stale.
func SaveProfile(datasetID string, profiles map[string]model.ColumnProfile) error {
	profJSON, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT OR REPLACE INTO profiles (dataset_id, profile, created_at) VALUES (?, ?, ?)`,
		datasetID, profJSON, time.Now().UTC(),
	)
	return err
}

// GetProfile returns the cached profiles for a dataset, or nil when absent.
func GetProfile(datasetID string) (map[string]model.ColumnProfile, error) {
	var profJSON string
	err := db.QueryRow(`SELECT profile FROM profiles WHERE dataset_id = ?`, datasetID).Scan(&profJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profiles map[string]model.ColumnProfile
	if err := json.Unmarshal([]byte(profJSON), &profiles); err != nil {
		return nil, fmt.Errorf("decode profile for %s: %w", datasetID, err)
	}
	return profiles, nil
}

// SaveRun records one analysis operation (aggregate, chart, trend, forecast)
// with its parameters for the activity log.
func SaveRun(runID, datasetID, kind string, params map[string]interface{}) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO analysis_runs (id, dataset_id, kind, params, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, datasetID, kind, paramsJSON, time.Now().UTC(),
	)
	return err
}

// ListRuns returns the analysis history of a dataset, newest first.
func ListRuns(datasetID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT id, kind, params, created_at FROM analysis_runs WHERE dataset_id = ? ORDER BY created_at DESC`,
		datasetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		var id, kind, paramsJSON string
		var createdAt time.Time
		if err := rows.Scan(&id, &kind, &paramsJSON, &createdAt); err != nil {
			return nil, err
		}
		var params map[string]interface{}
		if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
			params = map[string]interface{}{}
		}
		out = append(out, map[string]interface{}{
			"id":        id,
			"kind":      kind,
			"params":    params,
			"createdAt": createdAt,
		})
	}
	return out, rows.Err()
}
