// Package db defines the storage capability the API layer is built against.
// The interfaces are grouped per resource family; the postgresql and memdb
// packages provide implementations. Handlers obtain the store from the request
// context (see StoreCtx / DB), never from package globals.
package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/memdb"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/postgresql"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

type TenantManager interface {
	CreateTenant(ctx context.Context, tenant *models.Tenant) apperrors.Error
	GetTenant(ctx context.Context, tenantID apicommon.TenantId) (*models.Tenant, apperrors.Error)
	DeleteTenant(ctx context.Context, tenantID apicommon.TenantId) apperrors.Error
}

type AccountManager interface {
	CreateAccount(ctx context.Context, account *models.Account) apperrors.Error
	// GetAccountByID looks up by id alone; tenant ownership is decided by the
	// isolation guard, not by the query predicate.
	GetAccountByID(ctx context.Context, accountID uuid.UUID) (*models.Account, apperrors.Error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) apperrors.Error
	ListAccounts(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Account, int, apperrors.Error)
}

type LeadManager interface {
	CreateLead(ctx context.Context, lead *models.Lead) apperrors.Error
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (*models.Lead, apperrors.Error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) apperrors.Error
	ListLeads(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Lead, int, apperrors.Error)
}

type AssistantManager interface {
	CreateAssistant(ctx context.Context, assistant *models.Assistant) apperrors.Error
	ListAssistants(ctx context.Context, tenantID apicommon.TenantId) ([]models.Assistant, apperrors.Error)
	CreateConversation(ctx context.Context, conversation *models.Conversation) apperrors.Error
	GetConversationByID(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, apperrors.Error)
	ListConversations(ctx context.Context, tenantID apicommon.TenantId) ([]models.Conversation, apperrors.Error)
	AddMessage(ctx context.Context, message *models.Message) apperrors.Error
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, apperrors.Error)
}

type AuditManager interface {
	// AppendAuditEvent persists an event with its hash chain fields already
	// computed by the recorder. Events are never updated afterwards.
	AppendAuditEvent(ctx context.Context, event *models.AuditEvent) apperrors.Error
	// LastAuditHash returns the hash of the most recent event for the tenant,
	// or "" for an empty chain.
	LastAuditHash(ctx context.Context, tenantID apicommon.TenantId) (string, apperrors.Error)
	ListAuditEvents(ctx context.Context, tenantID apicommon.TenantId, filter models.AuditFilter, page pagination.Page) ([]models.AuditEvent, int, apperrors.Error)
	// PurgeAuditEvents removes a tenant's audit trail. Authorization is
	// enforced upstream; this is never reachable from tenant-scoped routes.
	PurgeAuditEvents(ctx context.Context, tenantID apicommon.TenantId) (int, apperrors.Error)
}

type Store interface {
	TenantManager
	AccountManager
	LeadManager
	AssistantManager
	AuditManager

	Ping(ctx context.Context) apperrors.Error
	Close()
}

type ctxStoreKeyType string

const ctxStoreKey ctxStoreKeyType = "BizStore"

// Init opens the store described by the DSN. An empty DSN selects the
// in-memory store, used in tests and single-process development.
func Init(ctx context.Context, dsn string) (Store, error) {
	if dsn == "" {
		log.Ctx(ctx).Info().Msg("no dsn configured, using in-memory store")
		return memdb.New(), nil
	}
	return postgresql.New(ctx, dsn)
}

// StoreCtx attaches a store to the context. Mounted once per request by the
// server middleware.
func StoreCtx(ctx context.Context, store Store) context.Context {
	return context.WithValue(ctx, ctxStoreKey, store)
}

// DB returns the store from the context, or nil if none was attached.
func DB(ctx context.Context) Store {
	if store, ok := ctx.Value(ctxStoreKey).(Store); ok {
		return store
	}
	log.Ctx(ctx).Error().Msg("unable to get store from context")
	return nil
}
