package memdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateAssistant(ctx context.Context, assistant *models.Assistant) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if assistant.AssistantID == uuid.Nil {
		assistant.AssistantID = uuid.New()
	}
	if assistant.CreatedAt.IsZero() {
		assistant.CreatedAt = time.Now().UTC()
	}
	s.assistants[assistant.AssistantID] = row[models.Assistant]{value: *assistant, seq: s.nextSeq()}
	return nil
}

func (s *Store) ListAssistants(ctx context.Context, tenantID apicommon.TenantId) ([]models.Assistant, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]row[models.Assistant], 0)
	for _, r := range s.assistants {
		if r.value.TenantID == tenantID {
			rows = append(rows, r)
		}
	}
	sortRows(rows, func(a models.Assistant) int64 { return a.CreatedAt.UnixNano() })
	values := make([]models.Assistant, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.value)
	}
	return values, nil
}

func (s *Store) CreateConversation(ctx context.Context, conversation *models.Conversation) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conversation.ConversationID == uuid.Nil {
		conversation.ConversationID = uuid.New()
	}
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now().UTC()
	}
	s.conversations[conversation.ConversationID] = row[models.Conversation]{value: *conversation, seq: s.nextSeq()}
	return nil
}

func (s *Store) GetConversationByID(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.conversations[conversationID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("conversation not found")
	}
	cp := r.value
	return &cp, nil
}

func (s *Store) ListConversations(ctx context.Context, tenantID apicommon.TenantId) ([]models.Conversation, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]row[models.Conversation], 0)
	for _, r := range s.conversations {
		if r.value.TenantID == tenantID {
			rows = append(rows, r)
		}
	}
	sortRows(rows, func(c models.Conversation) int64 { return c.CreatedAt.UnixNano() })
	values := make([]models.Conversation, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.value)
	}
	return values, nil
}

func (s *Store) AddMessage(ctx context.Context, message *models.Message) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message.MessageID == uuid.Nil {
		message.MessageID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	s.messages[message.MessageID] = row[models.Message]{value: *message, seq: s.nextSeq()}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]row[models.Message], 0)
	for _, r := range s.messages {
		if r.value.ConversationID == conversationID {
			rows = append(rows, r)
		}
	}
	// Messages read oldest first, unlike the listing endpoints.
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := rows[i].value.CreatedAt.UnixNano(), rows[j].value.CreatedAt.UnixNano()
		if ti != tj {
			return ti < tj
		}
		return rows[i].seq < rows[j].seq
	})
	values := make([]models.Message, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.value)
	}
	return values, nil
}
