package store

import (
	"database/sql"
	"errors"
	"time"

	"go-funnel-dashboard/internal/model"
	"go-funnel-dashboard/pkg/utils"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// ErrNotInitialized is returned when InitDB has not been called. The API
// treats run history as optional telemetry, so callers log and move on.
var ErrNotInitialized = errors.New("store: database not initialized")

// InitDB opens the sqlite database and creates the run-history tables.
// Only normalization telemetry is stored here; payloads and spec documents
// are never persisted.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		row_count INTEGER,
		column_count INTEGER,
		warning_count INTEGER,
		created_at DATETIME
	);
	`
	warningTable := `
	CREATE TABLE IF NOT EXISTS run_warnings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		code TEXT,
		column_name TEXT,
		message TEXT
	);
	`

	if _, err := db.Exec(runTable); err != nil {
		return err
	}
	if _, err := db.Exec(warningTable); err != nil {
		return err
	}

	return nil
}

// SaveRun records one normalization invocation together with its warnings.
func SaveRun(runID string, ds model.NormalizedDataset) error {
	if db == nil {
		return ErrNotInitialized
	}
	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO runs (id, row_count, column_count, warning_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, len(ds.Rows), len(ds.Columns), len(ds.Warnings), now)
	if err != nil {
		return err
	}

	for _, w := range ds.Warnings {
		_, err := db.Exec(
			`INSERT INTO run_warnings (run_id, code, column_name, message) VALUES (?, ?, ?, ?)`,
			runID, w.Code, w.Column, utils.Truncate(w.Message, 500))
		if err != nil {
			return err
		}
	}
	return nil
}

// ListRuns returns all recorded runs, newest first.
func ListRuns() ([]model.NormalizationRun, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query(
		`SELECT id, row_count, column_count, warning_count, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.NormalizationRun
	for rows.Next() {
		var r model.NormalizationRun
		if err := rows.Scan(&r.ID, &r.RowCount, &r.ColumnCount, &r.WarningCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches one run by ID.
func GetRun(runID string) (model.NormalizationRun, error) {
	var r model.NormalizationRun
	if db == nil {
		return r, ErrNotInitialized
	}
	err := db.QueryRow(
		`SELECT id, row_count, column_count, warning_count, created_at FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.RowCount, &r.ColumnCount, &r.WarningCount, &r.CreatedAt)
	return r, err
}

// GetRunWarnings returns the warnings recorded for a run.
func GetRunWarnings(runID string) ([]model.RunWarning, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query(
		`SELECT run_id, code, column_name, message FROM run_warnings WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []model.RunWarning
	for rows.Next() {
		var w model.RunWarning
		if err := rows.Scan(&w.RunID, &w.Code, &w.Column, &w.Message); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}
