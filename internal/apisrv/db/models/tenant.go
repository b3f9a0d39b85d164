package models

import (
	"time"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
)

/*
  Column    |           Type           | Nullable |      Default
------------+--------------------------+----------+-------------------
 tenant_id  | character varying(64)    | not null |
 name       | character varying(128)   | not null |
 created_at | timestamp with time zone | not null | now()
*/

type Tenant struct {
	TenantID  apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	Name      string             `db:"name" json:"name"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}
