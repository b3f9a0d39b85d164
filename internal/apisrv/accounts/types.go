package accounts

import "github.com/bizgrid/bizgrid/internal/apisrv/request"

type createAccountReq struct {
	TenantID string `json:"tenant_id,omitempty"`
	Name     string `json:"name" validate:"required,max=256"`
	Industry string `json:"industry,omitempty" validate:"max=128"`
	Website  string `json:"website,omitempty" validate:"max=512"`
}

// Unknown-shape payloads are rejected here, at the decode boundary.
var createAccountSchema = request.MustCompileSchema("accounts/create", `{
	"type": "object",
	"properties": {
		"tenant_id": {"type": "string"},
		"name":      {"type": "string"},
		"industry":  {"type": "string"},
		"website":   {"type": "string"}
	},
	"required": ["name"],
	"additionalProperties": false
}`)
