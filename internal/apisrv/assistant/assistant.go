// Package assistant serves the AI routes. Listing is tenant-scoped like every
// other family; chat drives the model backend through the Responder interface
// and persists both sides of the exchange; the trigger and realtime endpoints
// carry their own credential gates on top of tenant scoping.
package assistant

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/audit"
	"github.com/bizgrid/bizgrid/internal/apisrv/auth"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/guard"
	"github.com/bizgrid/bizgrid/internal/apisrv/request"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

func listAssistants(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	assistants, dberr := db.DB(ctx).ListAssistants(ctx, tenantID)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"assistants": assistants,
		},
	}, nil
}

func listConversations(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	conversations, dberr := db.DB(ctx).ListConversations(ctx, tenantID)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"conversations": conversations,
		},
	}, nil
}

func chat(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req chatReq
	if err := request.DecodeBody(r, chatSchema, &req); err != nil {
		return nil, err
	}
	tenantID, err := request.TenantFromQueryOrBody(r.URL.Query(), req.TenantID)
	if err != nil {
		return nil, err
	}
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}

	store := db.DB(ctx)

	// Resume an existing conversation or open a new one. A conversation id
	// belonging to another tenant is indistinguishable from a missing one.
	var conversation *models.Conversation
	if req.ConversationID != "" {
		conversationID, perr := uuid.Parse(req.ConversationID)
		if perr != nil {
			return nil, guard.NotFound()
		}
		existing, dberr := store.GetConversationByID(ctx, conversationID)
		if dberr != nil {
			if errors.Is(dberr, dberror.ErrNotFound) {
				return nil, guard.NotFound()
			}
			return nil, dberr
		}
		if err := guard.CheckOwnership(ctx, existing.TenantID, tenantID); err != nil {
			return nil, err
		}
		conversation = existing
	} else {
		conversation = &models.Conversation{
			TenantID: tenantID,
			Title:    conversationTitle(req.Message),
		}
		if dberr := store.CreateConversation(ctx, conversation); dberr != nil {
			return nil, dberr
		}
		if _, err := audit.Record(ctx, audit.Entry{
			TenantID:   tenantID,
			Action:     models.AuditActionCreate,
			EntityType: "conversation",
			EntityID:   conversation.ConversationID.String(),
			After:      conversation,
		}); err != nil {
			return nil, err
		}
	}

	history, dberr := store.ListMessages(ctx, conversation.ConversationID)
	if dberr != nil {
		return nil, dberr
	}

	userMsg := &models.Message{
		ConversationID: conversation.ConversationID,
		TenantID:       tenantID,
		Role:           "user",
		Content:        req.Message,
	}
	if dberr := store.AddMessage(ctx, userMsg); dberr != nil {
		return nil, dberr
	}

	reply, rerr := responder.Respond(ctx, history, req.Message)
	if rerr != nil {
		log.Ctx(ctx).Error().Err(rerr).Msg("model backend failed")
		return nil, ErrModelUnavailable.Err(rerr)
	}

	assistantMsg := &models.Message{
		ConversationID: conversation.ConversationID,
		TenantID:       tenantID,
		Role:           "assistant",
		Content:        reply,
	}
	if dberr := store.AddMessage(ctx, assistantMsg); dberr != nil {
		return nil, dberr
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"conversation_id": conversation.ConversationID.String(),
			"reply":           reply,
		},
	}, nil
}

// brainTest exercises the model backend end to end. Server-to-server only;
// the internal key gate rejects everything else with 401.
func brainTest(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if err := auth.VerifyInternalKey(r); err != nil {
		return nil, err
	}
	reply, rerr := responder.Respond(ctx, nil, "ping")
	if rerr != nil {
		return nil, ErrModelUnavailable.Err(rerr)
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"reply": reply,
		},
	}, nil
}

const maxTitleLen = 64

func conversationTitle(message string) string {
	if len(message) <= maxTitleLen {
		return message
	}
	return message[:maxTitleLen]
}
