// Package guard enforces tenant isolation for id-addressed resources.
// Resources are looked up by id alone (the id space is global across
// tenants); ownership is decided here by comparing the stored tenant id with
// the caller's. A resource owned by another tenant is reported exactly like
// an absent one, so existence cannot be inferred across tenants from the
// status code.
package guard

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var (
	// ErrResourceNotFound covers both true absence and cross-tenant hits.
	// Always 404, never 403.
	ErrResourceNotFound apperrors.Error = apperrors.New("resource not found").SetStatusCode(http.StatusNotFound)
)

// CheckOwnership resolves visibility for an already-loaded resource. The
// caller's tenant id is validated upstream; this function never sees an empty
// one. No caching: ownership is re-checked on every call, so a reassigned
// resource is immediately consistent for subsequent requests.
func CheckOwnership(ctx context.Context, owner, caller apicommon.TenantId) apperrors.Error {
	if owner == caller {
		return nil
	}
	// Log the real cause; the client sees only the uniform not-found.
	log.Ctx(ctx).Warn().
		Str("owner_tenant", owner.String()).
		Str("caller_tenant", caller.String()).
		Msg("cross-tenant access blocked")
	return ErrResourceNotFound
}

// NotFound converts a store miss into the uniform not-found error.
func NotFound() apperrors.Error {
	return ErrResourceNotFound
}
