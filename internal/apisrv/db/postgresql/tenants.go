package postgresql

import (
	"context"
	"database/sql"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateTenant(ctx context.Context, tenant *models.Tenant) apperrors.Error {
	query := `
		INSERT INTO tenants (tenant_id, name)
		VALUES ($1, $2)
		ON CONFLICT (tenant_id) DO NOTHING
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query, tenant.TenantID, tenant.Name).Scan(&tenant.CreatedAt)
	if err == sql.ErrNoRows {
		return dberror.ErrAlreadyExists.Msg("tenant already exists")
	}
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) GetTenant(ctx context.Context, tenantID apicommon.TenantId) (*models.Tenant, apperrors.Error) {
	query := `
		SELECT tenant_id, name, created_at
		FROM tenants
		WHERE tenant_id = $1;
	`
	var tenant models.Tenant
	err := s.db.QueryRowContext(ctx, query, tenantID).Scan(&tenant.TenantID, &tenant.Name, &tenant.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("tenant not found")
		}
		return nil, classify(ctx, err)
	}
	return &tenant, nil
}

func (s *Store) DeleteTenant(ctx context.Context, tenantID apicommon.TenantId) apperrors.Error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE tenant_id = $1;`, tenantID)
	if err != nil {
		return classify(ctx, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("tenant not found")
	}
	return nil
}
