package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
)

/*
  Column    |           Type           | Nullable |      Default
------------+--------------------------+----------+--------------------
 lead_id    | uuid                     | not null | uuid_generate_v4()
 tenant_id  | character varying(64)    | not null |
 account_id | uuid                     |          |
 name       | character varying(256)   | not null |
 email      | character varying(256)   | not null | ''
 phone      | character varying(64)    | not null | ''
 source     | character varying(128)   | not null | ''
 status     | character varying(32)    | not null | 'new'
 created_at | timestamp with time zone | not null | now()
*/

type Lead struct {
	LeadID    uuid.UUID          `db:"lead_id" json:"id"`
	TenantID  apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	AccountID uuid.NullUUID      `db:"account_id" json:"account_id,omitempty"`
	Name      string             `db:"name" json:"name"`
	Email     string             `db:"email" json:"email,omitempty"`
	Phone     string             `db:"phone" json:"phone,omitempty"`
	Source    string             `db:"source" json:"source,omitempty"`
	Status    string             `db:"status" json:"status"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}
