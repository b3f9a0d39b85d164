package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, map[string]any{
		"name":     "Globex",
		"industry": "manufacturing",
		"website":  "https://globex.example",
	})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	checkHeader(t, rr.Header())

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	parseData(t, rr, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Globex", created.Name)
	assert.Equal(t, "/accounts/"+created.ID, rr.Header().Get("Location"))

	// Read back with the owning tenant.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var fetched struct {
		Name     string `json:"name"`
		Industry string `json:"industry"`
	}
	parseData(t, rr, &fetched)
	assert.Equal(t, "Globex", fetched.Name)
	assert.Equal(t, "manufacturing", fetched.Industry)

	// The v2 alias serves the same resource.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/v2/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Delete, then the resource is gone.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodDelete, "/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAccountTenantRequired(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptestRequest(http.MethodPost, "/accounts")
	setRequestBodyAndHeader(t, req, map[string]any{"name": "Initech"})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
	env := parseEnvelope(t, rr)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "tenant_id")
	assert.Contains(t, env.Message, "required")

	// Empty value is the same failure as absence.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/00000000-0000-0000-0000-000000000000?tenant_id="))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAccountCreateValidation(t *testing.T) {
	s, _ := newTestServer(t)

	// Missing required field.
	req := httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, map[string]any{"industry": "retail"})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	// Unknown field rejected at the schema boundary.
	req = httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, map[string]any{"name": "Hooli", "shape": "wrong"})
	rr = executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	// Malformed tenant id.
	req = httptestRequest(http.MethodPost, "/accounts?tenant_id=nope")
	setRequestBodyAndHeader(t, req, map[string]any{"name": "Hooli"})
	rr = executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}

func TestAccountInvalidIdIsNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/not-a-uuid?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
}
