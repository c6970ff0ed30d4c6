package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-funnel-dashboard/internal/store"
	"go-funnel-dashboard/pkg/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "test.db")))

	r := router.New()
	RegisterRoutes(r)

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func TestNormalizeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"payload": {
			"columns": ["dia", "custo_total", "leads_total"],
			"data": [
				{"dia": "01/03/2024", "custo_total": "1.250,50", "leads_total": "10"}
			]
		}
	}`
	resp, out := postJSON(t, srv.URL+"/api/v1/datasets/normalize", body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out["runId"])

	ds, ok := out["dataset"].(map[string]interface{})
	require.True(t, ok)
	rows, ok := ds["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)

	row := rows[0].(map[string]interface{})
	assert.InDelta(t, 1250.50, row["custo_total"].(float64), 1e-9)
	assert.InDelta(t, 10, row["leads_total"].(float64), 1e-9)
}

func TestNormalizeEndpointPersistsRun(t *testing.T) {
	srv := newTestServer(t)

	_, out := postJSON(t, srv.URL+"/api/v1/datasets/normalize",
		`{"payload": {"data": [{"leads_total": "not a number"}]}}`)
	runID, _ := out["runId"].(string)
	require.NotEmpty(t, runID)

	resp, err := http.Get(srv.URL + "/api/v1/runs/" + runID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var run map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, runID, run["id"])
	assert.InDelta(t, 1, run["rowCount"].(float64), 1e-9)

	resp, err = http.Get(srv.URL + "/api/v1/runs/" + runID + "/warnings")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var warnings map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&warnings))
	// The unparseable leads_total above produced exactly one warning.
	assert.InDelta(t, 1, warnings["count"].(float64), 1e-9)
}

func TestNormalizeEndpointBadJSON(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/v1/datasets/normalize", "{nope")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateSpecEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, out := postJSON(t, srv.URL+"/api/v1/specs/validate", `{"version": 1, "title": "x"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["valid"])

	resp, out = postJSON(t, srv.URL+"/api/v1/specs/validate", `{not json`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, out["valid"])
	assert.NotEmpty(t, out["error"])
}

func TestInferSpecEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"payload": {
			"columns": ["dia", "custo_total", "leads_total", "entrada_total", "venda_total"],
			"data": [
				{"dia": "01/03/2024", "custo_total": "1.250,50", "leads_total": "10",
				 "entrada_total": "5", "venda_total": "2"}
			]
		}
	}`
	resp, out := postJSON(t, srv.URL+"/api/v1/specs/infer", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	inferred, ok := out["spec"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Dashboard de Funil", inferred["title"])
	funnel, ok := inferred["funnel"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, funnel["steps"].([]interface{}), 3)

	template, ok := out["template"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, template["tabs"], "Funil")
}

func TestListRunsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var runs []interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Empty(t, runs)

	postJSON(t, srv.URL+"/api/v1/datasets/normalize", `{"payload": {"data": [{"leads_total": "1"}]}}`)

	resp, err = http.Get(srv.URL + "/api/v1/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Len(t, runs, 1)
}

func TestGetRunNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/runs/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
