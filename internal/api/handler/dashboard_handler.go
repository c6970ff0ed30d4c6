package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"go-funnel-dashboard/internal/engine"
	"go-funnel-dashboard/internal/model"
	"go-funnel-dashboard/internal/spec"
	"go-funnel-dashboard/internal/store"

	"github.com/google/uuid"
)

// maxBodyBytes caps request bodies. Overridable from config at startup.
var maxBodyBytes int64 = 10 << 20

// SetMaxBodyBytes adjusts the request body cap for the POST endpoints.
func SetMaxBodyBytes(n int64) {
	if n > 0 {
		maxBodyBytes = n
	}
}

// NormalizeRequest is the body of POST /datasets/normalize.
type NormalizeRequest struct {
	Payload     interface{}              `json:"payload"`
	SpecColumns []model.ColumnDescriptor `json:"specColumns,omitempty"`
}

// NormalizeResponse wraps the dataset with its recorded run ID.
type NormalizeResponse struct {
	RunID   string                  `json:"runId"`
	Dataset model.NormalizedDataset `json:"dataset"`
}

// InferResponse carries both inference outputs.
type InferResponse struct {
	Spec     model.DashboardSpec          `json:"spec"`
	Template model.TemplateConfig         `json:"template"`
	Warnings []model.NormalizationWarning `json:"warnings"`
}

// NormalizeDataset normalizes a raw payload into a typed dataset
// @Summary Normalize a raw payload
// @Description Turn a loosely-typed tabular payload into a typed, sorted dataset with warnings and per-column stats
// @Tags datasets
// @Accept json
// @Produce json
// @Param request body handler.NormalizeRequest true "Raw payload plus optional column overrides"
// @Success 200 {object} handler.NormalizeResponse "Normalized dataset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /datasets/normalize [post]
func NormalizeDataset(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ds := engine.NormalizeDataset(req.Payload, req.SpecColumns)

	runID := uuid.New().String()
	if err := store.SaveRun(runID, ds); err != nil {
		// Persistence is telemetry only; the caller still gets the dataset.
		log.Printf("store: failed to save run %s: %v", runID, err)
	}

	writeJSON(w, NormalizeResponse{RunID: runID, Dataset: ds})
}

// ValidateSpec validates a dashboard spec document
// @Summary Validate a dashboard spec
// @Description Parse and validate a raw dashboard-spec JSON document; malformed entries are dropped, syntax errors reported
// @Tags specs
// @Accept json
// @Produce json
// @Param spec body object true "Dashboard spec document"
// @Success 200 {object} model.SpecValidation "Validation outcome"
// @Router /specs/validate [post]
func ValidateSpec(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, spec.ValidateSpecJSON(string(body)))
}

// InferSpec derives a dashboard spec from a raw payload
// @Summary Infer a dashboard spec
// @Description Normalize the payload, then derive a dashboard spec and template config from its columns
// @Tags specs
// @Accept json
// @Produce json
// @Param request body handler.NormalizeRequest true "Raw payload"
// @Success 200 {object} handler.InferResponse "Inferred spec and template"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /specs/infer [post]
func InferSpec(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ds := engine.NormalizeDataset(req.Payload, req.SpecColumns)

	names := make([]string, len(ds.Columns))
	for i, c := range ds.Columns {
		names[i] = c.Name
	}
	var sampleRow model.NormalizedRow
	if len(ds.Rows) > 0 {
		sampleRow = ds.Rows[0]
	}

	writeJSON(w, InferResponse{
		Spec:     spec.GenerateSpecFromData(names, sampleRow),
		Template: spec.GenerateTemplateConfig(names),
		Warnings: ds.Warnings,
	})
}

// ListRuns lists recorded normalization runs
// @Summary List normalization runs
// @Description Get all recorded normalization runs, newest first
// @Tags runs
// @Produce json
// @Success 200 {array} model.NormalizationRun "Run history"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []model.NormalizationRun{}
	}
	writeJSON(w, runs)
}

// GetRun fetches one normalization run
// @Summary Get a normalization run
// @Description Retrieve a single run's telemetry by ID
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.NormalizationRun "Run telemetry"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID := runIDFromPath(r.URL.Path, "")
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, run)
}

// GetRunWarnings fetches the warnings recorded for a run
// @Summary Get run warnings
// @Description Retrieve the normalization warnings persisted for a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run warnings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/warnings [get]
func GetRunWarnings(w http.ResponseWriter, r *http.Request) {
	runID := runIDFromPath(r.URL.Path, "/warnings")
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	warnings, err := store.GetRunWarnings(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve warnings", http.StatusInternalServerError)
		return
	}
	if warnings == nil {
		warnings = []model.RunWarning{}
	}
	writeJSON(w, map[string]interface{}{
		"run_id":   runID,
		"warnings": warnings,
		"count":    len(warnings),
	})
}

// runIDFromPath extracts the run ID segment from /api/v1/runs/{id}[suffix].
func runIDFromPath(path, suffix string) string {
	const prefix = "/api/v1/runs/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handler: failed to encode response: %v", err)
	}
}
