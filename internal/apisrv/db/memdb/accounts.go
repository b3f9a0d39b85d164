package memdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.AccountID == uuid.Nil {
		account.AccountID = uuid.New()
	}
	if _, ok := s.accounts[account.AccountID]; ok {
		return dberror.ErrAlreadyExists.Msg("account already exists")
	}
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	s.accounts[account.AccountID] = row[models.Account]{value: *account, seq: s.nextSeq()}
	return nil
}

func (s *Store) GetAccountByID(ctx context.Context, accountID uuid.UUID) (*models.Account, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.accounts[accountID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("account not found")
	}
	cp := r.value
	return &cp, nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountID]; !ok {
		return dberror.ErrNotFound.Msg("account not found")
	}
	delete(s.accounts, accountID)
	return nil
}

func (s *Store) ListAccounts(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Account, int, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]row[models.Account], 0)
	for _, r := range s.accounts {
		if r.value.TenantID == tenantID {
			rows = append(rows, r)
		}
	}
	sortRows(rows, func(a models.Account) int64 { return a.CreatedAt.UnixNano() })
	items, total := window(rows, page)
	return items, total, nil
}
