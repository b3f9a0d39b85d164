package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizgrid/bizgrid/internal/apisrv/auth"
)

type auditListing struct {
	Events []struct {
		ID         string `json:"id"`
		ActorID    string `json:"actor_id"`
		Action     string `json:"action"`
		EntityType string `json:"entity_type"`
		EntityID   string `json:"entity_id"`
		PrevHash   string `json:"prev_hash"`
		Hash       string `json:"hash"`
	} `json:"events"`
	Total int `json:"total"`
}

func listAuditEvents(t *testing.T, s *BizGridServer, query string) auditListing {
	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/audit-logs?"+query))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var listing auditListing
	parseData(t, rr, &listing)
	return listing
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, map[string]any{"name": "Audited Corp"})
	rr := executeTestRequest(t, s, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	parseData(t, rr, &created)

	rr = executeTestRequest(t, s, httptestRequest(http.MethodDelete, "/accounts/"+created.ID+"?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	listing := listAuditEvents(t, s, "tenant_id="+testTenantAlpha)
	require.Equal(t, 2, listing.Total)

	// Newest first: the delete precedes the create in the listing.
	assert.Equal(t, "delete", listing.Events[0].Action)
	assert.Equal(t, "create", listing.Events[1].Action)
	for _, e := range listing.Events {
		assert.Equal(t, "account", e.EntityType)
		assert.Equal(t, created.ID, e.EntityID)
		assert.Equal(t, "anonymous", e.ActorID)
		assert.NotEmpty(t, e.Hash)
	}

	// The chain links: the later event carries the earlier event's hash.
	assert.Equal(t, "", listing.Events[1].PrevHash)
	assert.Equal(t, listing.Events[1].Hash, listing.Events[0].PrevHash)
}

func TestAuditTrailFilters(t *testing.T) {
	s, _ := newTestServer(t)

	accountID := func() string {
		req := httptestRequest(http.MethodPost, "/accounts?tenant_id="+testTenantAlpha)
		setRequestBodyAndHeader(t, req, map[string]any{"name": "Filter Corp"})
		rr := executeTestRequest(t, s, req)
		require.Equal(t, http.StatusCreated, rr.Code)
		var created struct {
			ID string `json:"id"`
		}
		parseData(t, rr, &created)
		return created.ID
	}()
	createTestLead(t, s, testTenantAlpha, "filter lead")
	rr := executeTestRequest(t, s, httptestRequest(http.MethodDelete, "/accounts/"+accountID+"?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code)

	all := listAuditEvents(t, s, "tenant_id="+testTenantAlpha)
	require.Equal(t, 3, all.Total)

	byAction := listAuditEvents(t, s, "tenant_id="+testTenantAlpha+"&action=create")
	assert.Equal(t, 2, byAction.Total)

	byEntity := listAuditEvents(t, s, "tenant_id="+testTenantAlpha+"&entity_type=account")
	assert.Equal(t, 2, byEntity.Total)

	// Filters AND-combine.
	combined := listAuditEvents(t, s, "tenant_id="+testTenantAlpha+"&action=create&entity_type=lead")
	assert.Equal(t, 1, combined.Total)

	none := listAuditEvents(t, s, "tenant_id="+testTenantAlpha+"&action=delete&entity_type=lead")
	assert.Equal(t, 0, none.Total)

	// Time window that excludes everything.
	past := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)
	longPast := time.Now().Add(-1 * time.Hour).UTC().Format(time.RFC3339)
	windowed := listAuditEvents(t, s, "tenant_id="+testTenantAlpha+"&from="+past+"&to="+longPast)
	assert.Equal(t, 0, windowed.Total)

	// Malformed timestamps reject.
	bad := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/audit-logs?tenant_id="+testTenantAlpha+"&from=yesterday"))
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	// The trail is tenant-scoped like everything else.
	other := listAuditEvents(t, s, "tenant_id="+testTenantBeta)
	assert.Equal(t, 0, other.Total)
}

func TestAuditExportRequiresAdmin(t *testing.T) {
	s, _ := newTestServer(t)
	createTestLead(t, s, testTenantAlpha, "exported lead")

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/audit-logs/export?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusUnauthorized, rr.Code, rr.Body.String())

	token, err := auth.NewAdminToken("ops@example.com", time.Hour)
	require.Nil(t, err)

	req := httptestRequest(http.MethodGet, "/audit-logs/export?tenant_id="+testTenantAlpha)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	require.Len(t, lines, 2, "header plus one event")
	assert.Contains(t, lines[0], "event_id")
	assert.Contains(t, lines[1], testTenantAlpha)
}

func TestAuditPurgeRequiresAdmin(t *testing.T) {
	s, _ := newTestServer(t)
	createTestLead(t, s, testTenantAlpha, "purged lead")

	// No credentials.
	rr := executeTestRequest(t, s, httptestRequest(http.MethodDelete, "/audit-logs?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusUnauthorized, rr.Code, rr.Body.String())

	// Garbage token.
	req := httptestRequest(http.MethodDelete, "/audit-logs?tenant_id="+testTenantAlpha)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr = executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// The trail survived both attempts.
	assert.Equal(t, 1, listAuditEvents(t, s, "tenant_id="+testTenantAlpha).Total)

	token, err := auth.NewAdminToken("ops@example.com", time.Hour)
	require.Nil(t, err)
	req = httptestRequest(http.MethodDelete, "/audit-logs?tenant_id="+testTenantAlpha)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var purged struct {
		Purged int `json:"purged"`
	}
	parseData(t, rr, &purged)
	assert.Equal(t, 1, purged.Purged)

	assert.Equal(t, 0, listAuditEvents(t, s, "tenant_id="+testTenantAlpha).Total)
}
