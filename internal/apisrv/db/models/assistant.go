package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
)

type Assistant struct {
	AssistantID  uuid.UUID          `db:"assistant_id" json:"id"`
	TenantID     apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	Name         string             `db:"name" json:"name"`
	Model        string             `db:"model" json:"model"`
	Instructions string             `db:"instructions" json:"instructions,omitempty"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}

type Conversation struct {
	ConversationID uuid.UUID          `db:"conversation_id" json:"id"`
	TenantID       apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	AssistantID    uuid.NullUUID      `db:"assistant_id" json:"assistant_id,omitempty"`
	Title          string             `db:"title" json:"title"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
}

type Message struct {
	MessageID      uuid.UUID          `db:"message_id" json:"id"`
	ConversationID uuid.UUID          `db:"conversation_id" json:"conversation_id"`
	TenantID       apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	Role           string             `db:"role" json:"role"`
	Content        string             `db:"content" json:"content"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
}
