package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
)

/*
  Column    |           Type           | Nullable |      Default
------------+--------------------------+----------+--------------------
 account_id | uuid                     | not null | uuid_generate_v4()
 tenant_id  | character varying(64)    | not null |
 name       | character varying(256)   | not null |
 industry   | character varying(128)   |          |
 website    | character varying(512)   |          |
 created_at | timestamp with time zone | not null | now()
 updated_at | timestamp with time zone | not null | now()
*/

// Account ids are globally unique across tenants; cross-tenant access is
// blocked by tenant comparison in the isolation guard, not by id namespacing.
type Account struct {
	AccountID uuid.UUID          `db:"account_id" json:"id"`
	TenantID  apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	Name      string             `db:"name" json:"name"`
	Industry  string             `db:"industry" json:"industry,omitempty"`
	Website   string             `db:"website" json:"website,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}
