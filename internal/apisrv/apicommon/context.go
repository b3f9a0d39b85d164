// Package apicommon provides context management and identifier utilities
// shared by the API service packages. Tenant and actor identity travel on the
// request context; handlers never read process-wide state for them.
package apicommon

import (
	"context"
	"regexp"
)

// TenantId is the opaque tenant identifier. Tenants are identified either by a
// UUID or by a short code of the form "T" followed by a nanoid.
type TenantId string

var tenantIdPattern = regexp.MustCompile(`^(T[A-Za-z0-9_-]{6,}|[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`)

// IsValid reports whether the tenant id is non-empty and well formed. The
// empty id is always invalid; presence is checked before format upstream.
func (t TenantId) IsValid() bool {
	return t != "" && tenantIdPattern.MatchString(string(t))
}

func (t TenantId) String() string {
	return string(t)
}

type ctxKeyType string

const (
	ctxTenantIdKey ctxKeyType = "BizTenantId"
	ctxActorKey    ctxKeyType = "BizActor"
	ctxTestKey     ctxKeyType = "BizTestContext"
)

// ActorContext identifies the authenticated caller. Admin is set only by a
// verified elevated token; tenant scoping alone never grants it.
type ActorContext struct {
	ActorID string
	Admin   bool
}

func SetTenantIdInContext(ctx context.Context, tenantId TenantId) context.Context {
	return context.WithValue(ctx, ctxTenantIdKey, tenantId)
}

func TenantIdFromContext(ctx context.Context) TenantId {
	if tenantId, ok := ctx.Value(ctxTenantIdKey).(TenantId); ok {
		return tenantId
	}
	return ""
}

func SetActorInContext(ctx context.Context, actor *ActorContext) context.Context {
	return context.WithValue(ctx, ctxActorKey, actor)
}

func ActorFromContext(ctx context.Context) *ActorContext {
	if actor, ok := ctx.Value(ctxActorKey).(*ActorContext); ok {
		return actor
	}
	return nil
}

// ActorIdFromContext returns the actor id or "anonymous" when the request
// carries no identity. Audit events always name an actor.
func ActorIdFromContext(ctx context.Context) string {
	if actor := ActorFromContext(ctx); actor != nil && actor.ActorID != "" {
		return actor.ActorID
	}
	return "anonymous"
}

func SetTestContext(ctx context.Context, isTest bool) context.Context {
	return context.WithValue(ctx, ctxTestKey, isTest)
}

func GetTestContext(ctx context.Context) bool {
	if isTest, ok := ctx.Value(ctxTestKey).(bool); ok {
		return isTest
	}
	return false
}
