// Package leads serves the lead resource family. The list endpoint is the
// canonical pagination surface: ordering is stable under concurrent inserts
// and the total reflects the whole tenant data set, not the returned window.
package leads

import (
	"errors"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/audit"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/guard"
	"github.com/bizgrid/bizgrid/internal/apisrv/request"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

// createAttempts bounds the write retry. One retry only; anything beyond that
// is the caller's problem.
const createAttempts = 2

func createLead(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req createLeadReq
	if err := request.DecodeBody(r, createLeadSchema, &req); err != nil {
		return nil, err
	}
	tenantID, err := request.TenantFromQueryOrBody(r.URL.Query(), req.TenantID)
	if err != nil {
		return nil, err
	}

	lead := &models.Lead{
		TenantID: tenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Source:   req.Source,
		Status:   req.Status,
	}
	if req.AccountID != "" {
		accountID, perr := uuid.Parse(req.AccountID)
		if perr != nil {
			return nil, request.ErrInvalidId
		}
		lead.AccountID = uuid.NullUUID{UUID: accountID, Valid: true}
	}
	if lead.Status == "" {
		lead.Status = "new"
	}

	rerr := retry.Do(
		func() error {
			return db.DB(ctx).CreateLead(ctx, lead)
		},
		retry.Attempts(createAttempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, dberror.ErrTransient)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n).Msg("retrying lead create after transient store error")
		}),
	)
	if rerr != nil {
		return nil, rerr
	}

	if _, err := audit.Record(ctx, audit.Entry{
		TenantID:   tenantID,
		Action:     models.AuditActionCreate,
		EntityType: "lead",
		EntityID:   lead.LeadID.String(),
		After:      lead,
	}); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/leads/" + lead.LeadID.String(),
		Response:   lead,
	}, nil
}

func getLead(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	leadID, err := request.ParseResourceID(chi.URLParam(r, "leadID"))
	if err != nil {
		return nil, guard.NotFound()
	}

	lead, dberr := db.DB(ctx).GetLeadByID(ctx, leadID)
	if dberr != nil {
		if errors.Is(dberr, dberror.ErrNotFound) {
			return nil, guard.NotFound()
		}
		return nil, dberr
	}
	if err := guard.CheckOwnership(ctx, lead.TenantID, tenantID); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   lead,
	}, nil
}

func deleteLead(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	leadID, err := request.ParseResourceID(chi.URLParam(r, "leadID"))
	if err != nil {
		return nil, guard.NotFound()
	}

	lead, dberr := db.DB(ctx).GetLeadByID(ctx, leadID)
	if dberr != nil {
		if errors.Is(dberr, dberror.ErrNotFound) {
			return nil, guard.NotFound()
		}
		return nil, dberr
	}
	if err := guard.CheckOwnership(ctx, lead.TenantID, tenantID); err != nil {
		return nil, err
	}

	if err := db.DB(ctx).DeleteLead(ctx, leadID); err != nil {
		return nil, err
	}
	if _, err := audit.Record(ctx, audit.Entry{
		TenantID:   tenantID,
		Action:     models.AuditActionDelete,
		EntityType: "lead",
		EntityID:   leadID.String(),
		Before:     lead,
	}); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"id": leadID.String()},
	}, nil
}

func listLeads(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	page, err := request.ParsePage(r.URL.Query())
	if err != nil {
		return nil, err
	}

	items, total, dberr := db.DB(ctx).ListLeads(ctx, tenantID, page)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"leads": items,
			"total": total,
		},
	}, nil
}
