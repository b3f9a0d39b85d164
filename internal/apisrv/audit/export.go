package audit

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
)

// ExportCSV serializes already-filtered events. Export is not a separate data
// source: callers run the same List query as the listing endpoint and hand
// the result here.
func ExportCSV(events []models.AuditEvent) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"event_id", "tenant_id", "actor_id", "action", "entity_type", "entity_id", "created_at", "hash"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range events {
		record := []string{
			e.EventID.String(),
			e.TenantID.String(),
			e.ActorID,
			e.Action,
			e.EntityType,
			e.EntityID,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.Hash,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
