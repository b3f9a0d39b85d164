package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateAssistant(ctx context.Context, assistant *models.Assistant) apperrors.Error {
	if assistant.AssistantID == uuid.Nil {
		assistant.AssistantID = uuid.New()
	}
	query := `
		INSERT INTO assistants (assistant_id, tenant_id, name, model, instructions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		assistant.AssistantID, assistant.TenantID, assistant.Name,
		assistant.Model, assistant.Instructions).
		Scan(&assistant.CreatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) ListAssistants(ctx context.Context, tenantID apicommon.TenantId) ([]models.Assistant, apperrors.Error) {
	query := `
		SELECT assistant_id, tenant_id, name, model, instructions, created_at
		FROM assistants
		WHERE tenant_id = $1
		ORDER BY created_at DESC, assistant_id DESC;
	`
	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer rows.Close()

	assistants := make([]models.Assistant, 0)
	for rows.Next() {
		var assistant models.Assistant
		if err := rows.Scan(&assistant.AssistantID, &assistant.TenantID, &assistant.Name,
			&assistant.Model, &assistant.Instructions, &assistant.CreatedAt); err != nil {
			return nil, classify(ctx, err)
		}
		assistants = append(assistants, assistant)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(ctx, err)
	}
	return assistants, nil
}

func (s *Store) CreateConversation(ctx context.Context, conversation *models.Conversation) apperrors.Error {
	if conversation.ConversationID == uuid.Nil {
		conversation.ConversationID = uuid.New()
	}
	query := `
		INSERT INTO conversations (conversation_id, tenant_id, assistant_id, title)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		conversation.ConversationID, conversation.TenantID,
		conversation.AssistantID, conversation.Title).
		Scan(&conversation.CreatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) GetConversationByID(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, apperrors.Error) {
	query := `
		SELECT conversation_id, tenant_id, assistant_id, title, created_at
		FROM conversations
		WHERE conversation_id = $1;
	`
	var conversation models.Conversation
	err := s.db.QueryRowContext(ctx, query, conversationID).Scan(
		&conversation.ConversationID, &conversation.TenantID,
		&conversation.AssistantID, &conversation.Title, &conversation.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("conversation not found")
		}
		return nil, classify(ctx, err)
	}
	return &conversation, nil
}

func (s *Store) ListConversations(ctx context.Context, tenantID apicommon.TenantId) ([]models.Conversation, apperrors.Error) {
	query := `
		SELECT conversation_id, tenant_id, assistant_id, title, created_at
		FROM conversations
		WHERE tenant_id = $1
		ORDER BY created_at DESC, conversation_id DESC;
	`
	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		var conversation models.Conversation
		if err := rows.Scan(&conversation.ConversationID, &conversation.TenantID,
			&conversation.AssistantID, &conversation.Title, &conversation.CreatedAt); err != nil {
			return nil, classify(ctx, err)
		}
		conversations = append(conversations, conversation)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(ctx, err)
	}
	return conversations, nil
}

func (s *Store) AddMessage(ctx context.Context, message *models.Message) apperrors.Error {
	if message.MessageID == uuid.Nil {
		message.MessageID = uuid.New()
	}
	query := `
		INSERT INTO messages (message_id, conversation_id, tenant_id, role, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		message.MessageID, message.ConversationID, message.TenantID,
		message.Role, message.Content).
		Scan(&message.CreatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, apperrors.Error) {
	query := `
		SELECT message_id, conversation_id, tenant_id, role, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, message_id ASC;
	`
	rows, err := s.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(&message.MessageID, &message.ConversationID, &message.TenantID,
			&message.Role, &message.Content, &message.CreatedAt); err != nil {
			return nil, classify(ctx, err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(ctx, err)
	}
	return messages, nil
}
