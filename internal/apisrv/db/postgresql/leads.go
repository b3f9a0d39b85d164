package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateLead(ctx context.Context, lead *models.Lead) apperrors.Error {
	if lead.LeadID == uuid.Nil {
		lead.LeadID = uuid.New()
	}
	if lead.Status == "" {
		lead.Status = "new"
	}
	query := `
		INSERT INTO leads (lead_id, tenant_id, account_id, name, email, phone, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		lead.LeadID, lead.TenantID, lead.AccountID, lead.Name,
		lead.Email, lead.Phone, lead.Source, lead.Status).
		Scan(&lead.CreatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) GetLeadByID(ctx context.Context, leadID uuid.UUID) (*models.Lead, apperrors.Error) {
	query := `
		SELECT lead_id, tenant_id, account_id, name, email, phone, source, status, created_at
		FROM leads
		WHERE lead_id = $1;
	`
	var lead models.Lead
	err := s.db.QueryRowContext(ctx, query, leadID).Scan(
		&lead.LeadID, &lead.TenantID, &lead.AccountID, &lead.Name,
		&lead.Email, &lead.Phone, &lead.Source, &lead.Status, &lead.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("lead not found")
		}
		return nil, classify(ctx, err)
	}
	return &lead, nil
}

func (s *Store) DeleteLead(ctx context.Context, leadID uuid.UUID) apperrors.Error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE lead_id = $1;`, leadID)
	if err != nil {
		return classify(ctx, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("lead not found")
	}
	return nil
}

func (s *Store) ListLeads(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Lead, int, apperrors.Error) {
	query := `
		SELECT lead_id, tenant_id, account_id, name, email, phone, source, status, created_at
		FROM leads
		WHERE tenant_id = $1
		ORDER BY created_at DESC, lead_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := s.db.QueryContext(ctx, query, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, classify(ctx, err)
	}
	defer rows.Close()

	leads := make([]models.Lead, 0)
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(&lead.LeadID, &lead.TenantID, &lead.AccountID, &lead.Name,
			&lead.Email, &lead.Phone, &lead.Source, &lead.Status, &lead.CreatedAt); err != nil {
			return nil, 0, classify(ctx, err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify(ctx, err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE tenant_id = $1;`, tenantID).Scan(&total); err != nil {
		return nil, 0, classify(ctx, err)
	}
	return leads, total, nil
}
