package memdb

import (
	"context"
	"time"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateTenant(ctx context.Context, tenant *models.Tenant) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[tenant.TenantID]; ok {
		return dberror.ErrAlreadyExists.Msg("tenant already exists")
	}
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = time.Now().UTC()
	}
	cp := *tenant
	s.tenants[tenant.TenantID] = &cp
	return nil
}

func (s *Store) GetTenant(ctx context.Context, tenantID apicommon.TenantId) (*models.Tenant, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tenant, ok := s.tenants[tenantID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("tenant not found")
	}
	cp := *tenant
	return &cp, nil
}

func (s *Store) DeleteTenant(ctx context.Context, tenantID apicommon.TenantId) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[tenantID]; !ok {
		return dberror.ErrNotFound.Msg("tenant not found")
	}
	delete(s.tenants, tenantID)
	return nil
}
