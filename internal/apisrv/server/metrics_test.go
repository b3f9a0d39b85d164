package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/metrics/health"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var status struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
	parseData(t, rr, &status)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "ok", status.Store)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	// Generate at least one counted request first.
	executeTestRequest(t, s, httptestRequest(http.MethodGet, "/metrics/health"))

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/metrics"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bizgrid_http_requests_total")
}

func TestVersion(t *testing.T) {
	s, _ := newTestServer(t)

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/version"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var rsp struct {
		ServerVersion string `json:"serverVersion"`
		ApiVersion    string `json:"apiVersion"`
	}
	parseData(t, rr, &rsp)
	assert.NotEmpty(t, rsp.ServerVersion)
	assert.Equal(t, "v1", rsp.ApiVersion)
}
