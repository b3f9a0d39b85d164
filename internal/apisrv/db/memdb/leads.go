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

func (s *Store) CreateLead(ctx context.Context, lead *models.Lead) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNextLeadWrites > 0 {
		s.FailNextLeadWrites--
		return dberror.ErrTransient.Msg("statement timeout")
	}
	if lead.LeadID == uuid.Nil {
		lead.LeadID = uuid.New()
	}
	if _, ok := s.leads[lead.LeadID]; ok {
		return dberror.ErrAlreadyExists.Msg("lead already exists")
	}
	if lead.Status == "" {
		lead.Status = "new"
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	s.leads[lead.LeadID] = row[models.Lead]{value: *lead, seq: s.nextSeq()}
	return nil
}

func (s *Store) GetLeadByID(ctx context.Context, leadID uuid.UUID) (*models.Lead, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.leads[leadID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("lead not found")
	}
	cp := r.value
	return &cp, nil
}

func (s *Store) DeleteLead(ctx context.Context, leadID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[leadID]; !ok {
		return dberror.ErrNotFound.Msg("lead not found")
	}
	delete(s.leads, leadID)
	return nil
}

func (s *Store) ListLeads(ctx context.Context, tenantID apicommon.TenantId, page pagination.Page) ([]models.Lead, int, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]row[models.Lead], 0)
	for _, r := range s.leads {
		if r.value.TenantID == tenantID {
			rows = append(rows, r)
		}
	}
	sortRows(rows, func(l models.Lead) int64 { return l.CreatedAt.UnixNano() })
	items, total := window(rows, page)
	return items, total, nil
}
