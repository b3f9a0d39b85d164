package memdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func (s *Store) AppendAuditEvent(ctx context.Context, event *models.AuditEvent) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	s.auditEvents = append(s.auditEvents, *event)
	return nil
}

func (s *Store) LastAuditHash(ctx context.Context, tenantID apicommon.TenantId) (string, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.auditEvents) - 1; i >= 0; i-- {
		if s.auditEvents[i].TenantID == tenantID {
			return s.auditEvents[i].Hash, nil
		}
	}
	return "", nil
}

func (s *Store) ListAuditEvents(ctx context.Context, tenantID apicommon.TenantId, filter models.AuditFilter, page pagination.Page) ([]models.AuditEvent, int, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// auditEvents is append-only, so reverse slice order is newest first.
	matched := make([]models.AuditEvent, 0)
	for i := len(s.auditEvents) - 1; i >= 0; i-- {
		e := s.auditEvents[i]
		if e.TenantID != tenantID {
			continue
		}
		if !filter.Matches(&e) {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	return pagination.Window(matched, page), total, nil
}

func (s *Store) PurgeAuditEvents(ctx context.Context, tenantID apicommon.TenantId) (int, apperrors.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.auditEvents[:0]
	removed := 0
	for _, e := range s.auditEvents {
		if e.TenantID == tenantID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.auditEvents = kept
	return removed, nil
}
