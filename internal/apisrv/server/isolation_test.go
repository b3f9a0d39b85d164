package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross-tenant access must be indistinguishable from a missing resource.
func TestTenantIsolation(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, map[string]any{"name": "Umbrella"})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	parseData(t, rr, &created)

	// Another tenant reading the resource gets a 404.
	crossRead := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/"+created.ID+"?tenant_id="+testTenantBeta))
	require.Equal(t, http.StatusNotFound, crossRead.Code, crossRead.Body.String())

	// The 404 body is identical to the one for an id that never existed, so
	// the response leaks nothing about existence.
	missingRead := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/11111111-2222-3333-4444-555555555555?tenant_id="+testTenantBeta))
	require.Equal(t, http.StatusNotFound, missingRead.Code)
	assert.Equal(t, missingRead.Body.String(), crossRead.Body.String())

	// A cross-tenant delete neither succeeds nor destroys the resource.
	crossDelete := executeTestRequest(t, s, httptestRequest(http.MethodDelete, "/accounts/"+created.ID+"?tenant_id="+testTenantBeta))
	assert.Equal(t, http.StatusNotFound, crossDelete.Code)

	stillThere := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusOK, stillThere.Code, stillThere.Body.String())
}

func TestTenantIsolationLists(t *testing.T) {
	s, _ := newTestServer(t)

	for _, tenant := range []string{testTenantAlpha, testTenantAlpha, testTenantBeta} {
		req := httptestRequest(http.MethodPost, "/leads?tenant_id="+tenant)
		setRequestBodyAndHeader(t, req, map[string]any{"name": "lead for " + tenant})
		rr := executeTestRequest(t, s, req)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	var listing struct {
		Leads []struct {
			TenantID string `json:"tenant_id"`
		} `json:"leads"`
		Total int `json:"total"`
	}
	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/leads?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	parseData(t, rr, &listing)
	assert.Equal(t, 2, listing.Total)
	for _, lead := range listing.Leads {
		assert.Equal(t, testTenantAlpha, lead.TenantID)
	}
}
