package model

import "time"

// NormalizationRun is one recorded invocation of the normalizer.
// Only telemetry is stored, never the payload or the spec document.
type NormalizationRun struct {
	ID           string    `json:"id"`
	RowCount     int       `json:"rowCount"`
	ColumnCount  int       `json:"columnCount"`
	WarningCount int       `json:"warningCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RunWarning is a persisted NormalizationWarning tied to a run.
type RunWarning struct {
	RunID   string `json:"runId"`
	Code    string `json:"code"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}
