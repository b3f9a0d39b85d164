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

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) apperrors.Error {
	if account.AccountID == uuid.Nil {
		account.AccountID = uuid.New()
	}
	query := `
		INSERT INTO accounts (account_id, tenant_id, name, industry, website)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		account.AccountID, account.TenantID, account.Name, account.Industry, account.Website).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) GetAccountByID(ctx context.Context, accountID uuid.UUID) (*models.Account, apperrors.Error) {
	query := `
		SELECT account_id, tenant_id, name, industry, website, created_at, updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var account models.Account
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.AccountID, &account.TenantID, &account.Name,
		&account.Industry, &account.Website, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("account not found")
		}
		return nil, classify(ctx, err)
	}
	return &account, nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountID uuid.UUID) apperrors.Error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return classify(ctx, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("account not found")
	}
	return nil
}

func (s *Store) ListAccounts(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Account, int, apperrors.Error) {
	// Ordering must be total for windows to be deterministic; account_id
	// breaks created_at ties.
	query := `
		SELECT account_id, tenant_id, name, industry, website, created_at, updated_at
		FROM accounts
		WHERE tenant_id = $1
		ORDER BY created_at DESC, account_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := s.db.QueryContext(ctx, query, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, classify(ctx, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.AccountID, &account.TenantID, &account.Name,
			&account.Industry, &account.Website, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, 0, classify(ctx, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify(ctx, err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE tenant_id = $1;`, tenantID).Scan(&total); err != nil {
		return nil, 0, classify(ctx, err)
	}
	return accounts, total, nil
}
