package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
)

// Audit actions recorded by the recorder. Reads are not audited.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

/*
  Column      |           Type           | Nullable |      Default
--------------+--------------------------+----------+--------------------
 event_id     | uuid                     | not null |
 tenant_id    | character varying(64)    | not null |
 actor_id     | character varying(128)   | not null |
 action       | character varying(16)    | not null |
 entity_type  | character varying(64)    | not null |
 entity_id    | character varying(64)    | not null |
 before_state | jsonb                    |          |
 after_state  | jsonb                    |          |
 prev_hash    | character varying(64)    | not null |
 hash         | character varying(64)    | not null |
 created_at   | timestamp with time zone | not null | now()
*/

// AuditEvent is immutable once written. Hash chains events per tenant for
// tamper evidence: hash = sha256(canonical(payload, prev_hash)).
type AuditEvent struct {
	EventID     uuid.UUID          `db:"event_id" json:"id"`
	TenantID    apicommon.TenantId `db:"tenant_id" json:"tenant_id"`
	ActorID     string             `db:"actor_id" json:"actor_id"`
	Action      string             `db:"action" json:"action"`
	EntityType  string             `db:"entity_type" json:"entity_type"`
	EntityID    string             `db:"entity_id" json:"entity_id"`
	BeforeState json.RawMessage    `db:"before_state" json:"before_state,omitempty"`
	AfterState  json.RawMessage    `db:"after_state" json:"after_state,omitempty"`
	PrevHash    string             `db:"prev_hash" json:"prev_hash"`
	Hash        string             `db:"hash" json:"hash"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
}

// AuditFilter narrows audit queries. Set fields combine with logical AND.
type AuditFilter struct {
	Action     string
	EntityType string
	ActorID    string
	From       time.Time
	To         time.Time
}

// Matches reports whether the event satisfies every set filter field.
func (f AuditFilter) Matches(e *AuditEvent) bool {
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.ActorID != "" && e.ActorID != f.ActorID {
		return false
	}
	if !f.From.IsZero() && e.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.CreatedAt.After(f.To) {
		return false
	}
	return true
}
