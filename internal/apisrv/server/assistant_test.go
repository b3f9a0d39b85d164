package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/auth"
	"github.com/bizgrid/bizgrid/internal/apisrv/config"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
)

type chatRsp struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}

func postChat(t *testing.T, s *BizGridServer, body map[string]any) (*chatRsp, int, string) {
	req := httptestRequest(http.MethodPost, "/ai/chat?tenant_id="+testTenantAlpha)
	setRequestBodyAndHeader(t, req, body)
	rr := executeTestRequest(t, s, req)
	if rr.Code != http.StatusOK {
		return nil, rr.Code, rr.Body.String()
	}
	var rsp chatRsp
	parseData(t, rr, &rsp)
	return &rsp, rr.Code, rr.Body.String()
}

func TestAssistantListing(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()

	for _, name := range []string{"Sales Coach", "Support Triage"} {
		require.Nil(t, store.CreateAssistant(ctx, &models.Assistant{
			TenantID: apicommon.TenantId(testTenantAlpha),
			Name:     name,
			Model:    "gpt-4o-mini",
		}))
	}
	require.Nil(t, store.CreateAssistant(ctx, &models.Assistant{
		TenantID: apicommon.TenantId(testTenantBeta),
		Name:     "Beta Helper",
		Model:    "gpt-4o-mini",
	}))

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/ai/assistants?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var listing struct {
		Assistants []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Model string `json:"model"`
		} `json:"assistants"`
	}
	parseData(t, rr, &listing)
	require.Len(t, listing.Assistants, 2)
	names := []string{listing.Assistants[0].Name, listing.Assistants[1].Name}
	assert.ElementsMatch(t, []string{"Sales Coach", "Support Triage"}, names)
	for _, a := range listing.Assistants {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "gpt-4o-mini", a.Model)
	}

	// The other tenant sees only its own assistant.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/ai/assistants?tenant_id="+testTenantBeta))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	parseData(t, rr, &listing)
	require.Len(t, listing.Assistants, 1)
	assert.Equal(t, "Beta Helper", listing.Assistants[0].Name)
}

func TestChatConversationFlow(t *testing.T) {
	s, _ := newTestServer(t)

	first, code, body := postChat(t, s, map[string]any{"message": "hello"})
	require.Equal(t, http.StatusOK, code, body)
	require.NotEmpty(t, first.ConversationID)
	assert.NotEmpty(t, first.Reply)

	// Second turn continues the same conversation.
	second, code, body := postChat(t, s, map[string]any{
		"message":         "follow up",
		"conversation_id": first.ConversationID,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	// The conversation shows up in the tenant's listing.
	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/ai/conversations?tenant_id="+testTenantAlpha))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var listing struct {
		Conversations []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"conversations"`
	}
	parseData(t, rr, &listing)
	require.Len(t, listing.Conversations, 1)
	assert.Equal(t, first.ConversationID, listing.Conversations[0].ID)
	assert.Equal(t, "hello", listing.Conversations[0].Title)

	// But not in another tenant's.
	rr = executeTestRequest(t, s, httptestRequest(http.MethodGet, "/ai/conversations?tenant_id="+testTenantBeta))
	require.Equal(t, http.StatusOK, rr.Code)
	var other struct {
		Conversations []any `json:"conversations"`
	}
	parseData(t, rr, &other)
	assert.Empty(t, other.Conversations)
}

func TestChatValidation(t *testing.T) {
	s, _ := newTestServer(t)

	// message is required.
	_, code, body := postChat(t, s, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code, body)

	_, code, body = postChat(t, s, map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, code, body)

	// No tenant at all.
	req := httptestRequest(http.MethodPost, "/ai/chat")
	setRequestBodyAndHeader(t, req, map[string]any{"message": "hi"})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, parseEnvelope(t, rr).Message, "tenant_id")
}

func TestChatCrossTenantConversation(t *testing.T) {
	s, _ := newTestServer(t)

	first, code, body := postChat(t, s, map[string]any{"message": "mine"})
	require.Equal(t, http.StatusOK, code, body)

	// Another tenant resuming the conversation sees a 404, not a 403.
	req := httptestRequest(http.MethodPost, "/ai/chat?tenant_id="+testTenantBeta)
	setRequestBodyAndHeader(t, req, map[string]any{
		"message":         "not mine",
		"conversation_id": first.ConversationID,
	})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
}

func TestBrainTestRequiresInternalKey(t *testing.T) {
	s, _ := newTestServer(t)

	hash, err := apicommon.HashSecret("test-internal-key")
	require.NoError(t, err)
	prev := config.Config().InternalKeyHash
	config.Config().InternalKeyHash = hash
	t.Cleanup(func() { config.Config().InternalKeyHash = prev })

	req := httptestRequest(http.MethodPost, "/ai/brain-test")
	setRequestBodyAndHeader(t, req, map[string]any{})
	rr := executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code, rr.Body.String())

	req = httptestRequest(http.MethodPost, "/ai/brain-test")
	setRequestBodyAndHeader(t, req, map[string]any{})
	req.Header.Set("X-Internal-Key", "wrong-key")
	rr = executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code, rr.Body.String())

	req = httptestRequest(http.MethodPost, "/ai/brain-test")
	setRequestBodyAndHeader(t, req, map[string]any{})
	req.Header.Set("X-Internal-Key", "test-internal-key")
	rr = executeTestRequest(t, s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var rsp struct {
		Reply string `json:"reply"`
	}
	parseData(t, rr, &rsp)
	assert.NotEmpty(t, rsp.Reply)
}

func TestRealtimeRequiresCredentials(t *testing.T) {
	s, _ := newTestServer(t)

	rr := executeTestRequest(t, s, httptestRequest(http.MethodGet, "/ai/realtime?tenant_id="+testTenantAlpha))
	assert.Equal(t, http.StatusUnauthorized, rr.Code, rr.Body.String())

	// A valid token but no tenant still fails validation before the upgrade.
	token, terr := auth.NewAdminToken("ops@example.com", time.Hour)
	require.Nil(t, terr)
	req := httptestRequest(http.MethodGet, "/ai/realtime")
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeTestRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}
