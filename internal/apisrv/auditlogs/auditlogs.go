// Package auditlogs exposes the audit trail. Listing and export are
// tenant-scoped reads over the same query path; purge is the one privileged
// operation in the API and never succeeds without an admin token.
package auditlogs

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/audit"
	"github.com/bizgrid/bizgrid/internal/apisrv/auth"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
	"github.com/bizgrid/bizgrid/internal/apisrv/request"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

func listAuditLogs(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	filter, err := request.ParseAuditFilter(r.URL.Query())
	if err != nil {
		return nil, err
	}
	page, err := request.ParsePage(r.URL.Query())
	if err != nil {
		return nil, err
	}

	events, total, dberr := db.DB(ctx).ListAuditEvents(ctx, tenantID, filter, page)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"events": events,
			"total":  total,
		},
	}, nil
}

// exportAuditLogs streams the filtered trail as CSV. Same filters, same query
// path as the list endpoint; only the serialization differs.
func exportAuditLogs(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	actor, autherr := auth.RequireAdmin(r)
	if autherr != nil {
		return nil, autherr
	}
	ctx = apicommon.SetActorInContext(ctx, actor)

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	filter, err := request.ParseAuditFilter(r.URL.Query())
	if err != nil {
		return nil, err
	}

	// Export is unpaginated: the whole filtered trail in one document.
	events, _, dberr := db.DB(ctx).ListAuditEvents(ctx, tenantID, filter, pagination.Page{})
	if dberr != nil {
		return nil, dberr
	}
	body, cerr := audit.ExportCSV(events)
	if cerr != nil {
		return nil, audit.ErrAuditError.Err(cerr)
	}
	return &httpx.Response{
		StatusCode:  http.StatusOK,
		ContentType: "text/csv",
		Raw:         body,
	}, nil
}

func purgeAuditLogs(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	actor, autherr := auth.RequireAdmin(r)
	if autherr != nil {
		return nil, autherr
	}
	ctx = apicommon.SetActorInContext(ctx, actor)

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	purged, dberr := db.DB(ctx).PurgeAuditEvents(ctx, tenantID)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"purged": purged,
		},
	}, nil
}
