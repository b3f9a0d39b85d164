// Package accounts serves the account resource family. Every id-addressed
// operation funnels through tenant validation and the isolation guard before
// touching the store; mutations append an audit event on the success path.
package accounts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizgrid/bizgrid/internal/apisrv/audit"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/guard"
	"github.com/bizgrid/bizgrid/internal/apisrv/request"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

func createAccount(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req createAccountReq
	if err := request.DecodeBody(r, createAccountSchema, &req); err != nil {
		return nil, err
	}
	tenantID, err := request.TenantFromQueryOrBody(r.URL.Query(), req.TenantID)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		TenantID: tenantID,
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
	}
	if err := db.DB(ctx).CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	if _, err := audit.Record(ctx, audit.Entry{
		TenantID:   tenantID,
		Action:     models.AuditActionCreate,
		EntityType: "account",
		EntityID:   account.AccountID.String(),
		After:      account,
	}); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/accounts/" + account.AccountID.String(),
		Response:   account,
	}, nil
}

func getAccount(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	accountID, err := request.ParseResourceID(chi.URLParam(r, "accountID"))
	if err != nil {
		return nil, guard.NotFound()
	}

	account, dberr := db.DB(ctx).GetAccountByID(ctx, accountID)
	if dberr != nil {
		if errors.Is(dberr, dberror.ErrNotFound) {
			return nil, guard.NotFound()
		}
		return nil, dberr
	}
	if err := guard.CheckOwnership(ctx, account.TenantID, tenantID); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   account,
	}, nil
}

func deleteAccount(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	accountID, err := request.ParseResourceID(chi.URLParam(r, "accountID"))
	if err != nil {
		return nil, guard.NotFound()
	}

	account, dberr := db.DB(ctx).GetAccountByID(ctx, accountID)
	if dberr != nil {
		if errors.Is(dberr, dberror.ErrNotFound) {
			return nil, guard.NotFound()
		}
		return nil, dberr
	}
	if err := guard.CheckOwnership(ctx, account.TenantID, tenantID); err != nil {
		return nil, err
	}

	if err := db.DB(ctx).DeleteAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if _, err := audit.Record(ctx, audit.Entry{
		TenantID:   tenantID,
		Action:     models.AuditActionDelete,
		EntityType: "account",
		EntityID:   accountID.String(),
		Before:     account,
	}); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"id": accountID.String()},
	}, nil
}

func listAccounts(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	tenantID, err := request.TenantFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	page, err := request.ParsePage(r.URL.Query())
	if err != nil {
		return nil, err
	}

	items, total, dberr := db.DB(ctx).ListAccounts(ctx, tenantID, page)
	if dberr != nil {
		return nil, dberr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: map[string]any{
			"accounts": items,
			"total":    total,
		},
	}, nil
}
