package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

func jsonbOrNull(raw []byte) pgtype.JSONB {
	if len(raw) == 0 {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}
}

func (s *Store) AppendAuditEvent(ctx context.Context, event *models.AuditEvent) apperrors.Error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	query := `
		INSERT INTO audit_events
			(event_id, tenant_id, actor_id, action, entity_type, entity_id,
			 before_state, after_state, prev_hash, hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at;
	`
	err := s.db.QueryRowContext(ctx, query,
		event.EventID, event.TenantID, event.ActorID, event.Action,
		event.EntityType, event.EntityID,
		jsonbOrNull(event.BeforeState), jsonbOrNull(event.AfterState),
		event.PrevHash, event.Hash).
		Scan(&event.CreatedAt)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (s *Store) LastAuditHash(ctx context.Context, tenantID apicommon.TenantId) (string, apperrors.Error) {
	query := `
		SELECT hash
		FROM audit_events
		WHERE tenant_id = $1
		ORDER BY created_at DESC, event_id DESC
		LIMIT 1;
	`
	var hash string
	err := s.db.QueryRowContext(ctx, query, tenantID).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", classify(ctx, err)
	}
	return hash, nil
}

// buildAuditPredicates renders the AND-combined filter clauses. $1 is always
// the tenant id; filter arguments follow.
func buildAuditPredicates(tenantID apicommon.TenantId, filter models.AuditFilter) (string, []any) {
	clauses := []string{"tenant_id = $1"}
	args := []any{tenantID}
	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if filter.Action != "" {
		add("action = $%d", filter.Action)
	}
	if filter.EntityType != "" {
		add("entity_type = $%d", filter.EntityType)
	}
	if filter.ActorID != "" {
		add("actor_id = $%d", filter.ActorID)
	}
	if !filter.From.IsZero() {
		add("created_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("created_at <= $%d", filter.To)
	}
	return strings.Join(clauses, " AND "), args
}

func (s *Store) ListAuditEvents(ctx context.Context, tenantID apicommon.TenantId, filter models.AuditFilter, page pagination.Page) ([]models.AuditEvent, int, apperrors.Error) {
	where, args := buildAuditPredicates(tenantID, filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM audit_events WHERE ` + where + `;`
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, classify(ctx, err)
	}

	query := fmt.Sprintf(`
		SELECT event_id, tenant_id, actor_id, action, entity_type, entity_id,
		       before_state, after_state, prev_hash, hash, created_at
		FROM audit_events
		WHERE %s
		ORDER BY created_at DESC, event_id DESC
		LIMIT NULLIF($%d, 0) OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(ctx, err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0)
	for rows.Next() {
		var event models.AuditEvent
		var before, after pgtype.JSONB
		if err := rows.Scan(&event.EventID, &event.TenantID, &event.ActorID,
			&event.Action, &event.EntityType, &event.EntityID,
			&before, &after, &event.PrevHash, &event.Hash, &event.CreatedAt); err != nil {
			return nil, 0, classify(ctx, err)
		}
		if before.Status == pgtype.Present {
			event.BeforeState = before.Bytes
		}
		if after.Status == pgtype.Present {
			event.AfterState = after.Bytes
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify(ctx, err)
	}
	return events, total, nil
}

func (s *Store) PurgeAuditEvents(ctx context.Context, tenantID apicommon.TenantId) (int, apperrors.Error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM audit_events WHERE tenant_id = $1;`, tenantID)
	if err != nil {
		return 0, classify(ctx, err)
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}
