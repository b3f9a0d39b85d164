package leads

import "github.com/bizgrid/bizgrid/internal/apisrv/request"

type createLeadReq struct {
	TenantID  string `json:"tenant_id,omitempty"`
	AccountID string `json:"account_id,omitempty" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,max=256"`
	Email     string `json:"email,omitempty" validate:"omitempty,email,max=256"`
	Phone     string `json:"phone,omitempty" validate:"max=64"`
	Source    string `json:"source,omitempty" validate:"max=128"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified converted lost"`
}

var createLeadSchema = request.MustCompileSchema("leads/create", `{
	"type": "object",
	"properties": {
		"tenant_id":  {"type": "string"},
		"account_id": {"type": "string"},
		"name":       {"type": "string"},
		"email":      {"type": "string"},
		"phone":      {"type": "string"},
		"source":     {"type": "string"},
		"status":     {"type": "string"}
	},
	"required": ["name"],
	"additionalProperties": false
}`)
