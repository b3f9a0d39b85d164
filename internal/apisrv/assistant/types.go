package assistant

import "github.com/bizgrid/bizgrid/internal/apisrv/request"

type chatReq struct {
	TenantID       string `json:"tenant_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message" validate:"required,max=8192"`
}

var chatSchema = request.MustCompileSchema("assistant/chat", `{
	"type": "object",
	"properties": {
		"tenant_id":       {"type": "string"},
		"conversation_id": {"type": "string"},
		"message":         {"type": "string"}
	},
	"required": ["message"],
	"additionalProperties": false
}`)
