// Package request is the validation layer. It parses raw query and body
// parameters into typed, normalized values or returns a validation error
// naming the offending field. Everything here is a pure function of its
// input; no I/O, no context reads.
package request

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/config"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

// TenantFromQuery extracts and validates the tenant_id query parameter.
// Absent and empty are the same failure: the id must never reach a lookup.
func TenantFromQuery(values url.Values) (apicommon.TenantId, apperrors.Error) {
	raw := values.Get("tenant_id")
	if raw == "" {
		return "", ErrTenantRequired
	}
	tenantID := apicommon.TenantId(raw)
	if !tenantID.IsValid() {
		return "", ErrInvalidTenantId
	}
	return tenantID, nil
}

// TenantFromQueryOrBody resolves the tenant id for mutations, preferring the
// query parameter over the body field. Both absent is a validation failure.
func TenantFromQueryOrBody(values url.Values, bodyTenant string) (apicommon.TenantId, apperrors.Error) {
	raw := values.Get("tenant_id")
	if raw == "" {
		raw = bodyTenant
	}
	if raw == "" {
		return "", ErrTenantRequired
	}
	tenantID := apicommon.TenantId(raw)
	if !tenantID.IsValid() {
		return "", ErrInvalidTenantId
	}
	return tenantID, nil
}

// ParsePage parses limit/offset. Omitted values take defaults; out-of-range
// limits clamp to the configured maximum (documented policy: clamp, never
// reject a too-large limit). Negative or non-numeric values reject.
func ParsePage(values url.Values) (pagination.Page, apperrors.Error) {
	page := pagination.Page{
		Limit: config.Config().DefaultPageLimit,
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return pagination.Page{}, ErrInvalidPage
		}
		page.Limit = limit
	}
	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return pagination.Page{}, ErrInvalidPage
		}
		page.Offset = offset
	}
	if page.Limit < 1 {
		page.Limit = 1
	}
	if max := config.Config().MaxPageLimit; page.Limit > max {
		page.Limit = max
	}
	return page, nil
}

// ParseResourceID parses a path segment as a resource id.
func ParseResourceID(raw string) (uuid.UUID, apperrors.Error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidId
	}
	return id, nil
}

// ParseAuditFilter parses the optional audit query filters. Set fields narrow
// the result (logical AND); unset fields are ignored.
func ParseAuditFilter(values url.Values) (models.AuditFilter, apperrors.Error) {
	filter := models.AuditFilter{
		Action:     values.Get("action"),
		EntityType: values.Get("entity_type"),
		ActorID:    values.Get("user_id"),
	}
	if raw := values.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.AuditFilter{}, ErrInvalidFilter.New("from must be RFC3339")
		}
		filter.From = t
	}
	if raw := values.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.AuditFilter{}, ErrInvalidFilter.New("to must be RFC3339")
		}
		filter.To = t
	}
	return filter, nil
}
