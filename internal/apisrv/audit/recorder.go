// Package audit implements the audit trail. Every successful mutation across
// the tenant-scoped resource families appends exactly one immutable event,
// recorded synchronously before the mutating response returns. Events are
// hash-chained per tenant for tamper evidence and sensitive state fields are
// redacted before they are written.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/anand-gl/jsoncanonicalizer"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry describes a mutation to record. Before and After are the entity
// states around the mutation; either may be nil.
type Entry struct {
	TenantID   apicommon.TenantId
	Action     string
	EntityType string
	EntityID   string
	Before     any
	After      any
}

type hashPayload struct {
	TenantID   string              `json:"tenant_id"`
	ActorID    string              `json:"actor_id"`
	Action     string              `json:"action"`
	EntityType string              `json:"entity_type"`
	EntityID   string              `json:"entity_id"`
	Before     jsoniter.RawMessage `json:"before,omitempty"`
	After      jsoniter.RawMessage `json:"after,omitempty"`
	PrevHash   string              `json:"prev_hash"`
}

// Record appends one audit event for a committed mutation. The actor comes
// from the request context. A failed append is returned as an error so the
// caller can fail the outer operation; it is never swallowed.
func Record(ctx context.Context, entry Entry) (*models.AuditEvent, apperrors.Error) {
	store := db.DB(ctx)
	if store == nil {
		return nil, ErrRecordFailed
	}

	before, err := marshalState(entry.Before)
	if err != nil {
		return nil, ErrRecordFailed.Err(err)
	}
	after, err := marshalState(entry.After)
	if err != nil {
		return nil, ErrRecordFailed.Err(err)
	}

	prevHash, apperr := store.LastAuditHash(ctx, entry.TenantID)
	if apperr != nil {
		return nil, ErrRecordFailed.Err(apperr)
	}

	event := &models.AuditEvent{
		TenantID:    entry.TenantID,
		ActorID:     apicommon.ActorIdFromContext(ctx),
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		BeforeState: before,
		AfterState:  after,
		PrevHash:    prevHash,
	}
	hash, err := chainHash(event)
	if err != nil {
		return nil, ErrRecordFailed.Err(err)
	}
	event.Hash = hash

	if apperr := store.AppendAuditEvent(ctx, event); apperr != nil {
		log.Ctx(ctx).Error().Err(apperr).
			Str("entity_type", entry.EntityType).
			Str("entity_id", entry.EntityID).
			Msg("audit append failed")
		return nil, ErrRecordFailed.Err(apperr)
	}
	return event, nil
}

func marshalState(state any) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return Redact(raw), nil
}

// chainHash computes sha256 over the canonicalized payload including the
// previous hash, so any rewrite of history breaks every later link.
func chainHash(event *models.AuditEvent) (string, error) {
	raw, err := json.Marshal(hashPayload{
		TenantID:   event.TenantID.String(),
		ActorID:    event.ActorID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Before:     jsoniter.RawMessage(event.BeforeState),
		After:      jsoniter.RawMessage(event.AfterState),
		PrevHash:   event.PrevHash,
	})
	if err != nil {
		return "", err
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Verify walks a tenant's chain oldest-first and reports whether every link
// is intact. Used by support tooling, not exposed on tenant routes.
func Verify(events []models.AuditEvent) bool {
	prev := ""
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if e.PrevHash != prev {
			return false
		}
		hash, err := chainHash(&e)
		if err != nil || hash != e.Hash {
			return false
		}
		prev = e.Hash
	}
	return true
}
