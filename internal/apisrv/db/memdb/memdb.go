// Package memdb is the in-memory store used by tests and single-process
// development. It honors the same ordering contract as the postgresql store:
// created_at descending with insertion order as tiebreak, so repeated listings
// return identical windows absent intervening writes.
package memdb

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

type row[T any] struct {
	value T
	seq   uint64
}

type Store struct {
	mu            sync.RWMutex
	seq           uint64
	tenants       map[apicommon.TenantId]*models.Tenant
	accounts      map[uuid.UUID]row[models.Account]
	leads         map[uuid.UUID]row[models.Lead]
	assistants    map[uuid.UUID]row[models.Assistant]
	conversations map[uuid.UUID]row[models.Conversation]
	messages      map[uuid.UUID]row[models.Message]
	auditEvents   []models.AuditEvent

	// FailNextLeadWrites makes the next n lead inserts fail with ErrTransient,
	// exercising the caller's bounded retry.
	FailNextLeadWrites int
}

func New() *Store {
	return &Store{
		tenants:       make(map[apicommon.TenantId]*models.Tenant),
		accounts:      make(map[uuid.UUID]row[models.Account]),
		leads:         make(map[uuid.UUID]row[models.Lead]),
		assistants:    make(map[uuid.UUID]row[models.Assistant]),
		conversations: make(map[uuid.UUID]row[models.Conversation]),
		messages:      make(map[uuid.UUID]row[models.Message]),
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func (s *Store) Ping(ctx context.Context) apperrors.Error {
	return nil
}

func (s *Store) Close() {}

// sortRows orders rows by created-at descending, then insertion order
// descending. A stable total order keeps repeated windows identical.
func sortRows[T any](rows []row[T], createdAt func(T) int64) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i].value), createdAt(rows[j].value)
		if ti != tj {
			return ti > tj
		}
		return rows[i].seq > rows[j].seq
	})
}

func window[T any](rows []row[T], page pagination.Page) ([]T, int) {
	total := len(rows)
	values := make([]T, 0, total)
	for _, r := range rows {
		values = append(values, r.value)
	}
	return pagination.Window(values, page), total
}
