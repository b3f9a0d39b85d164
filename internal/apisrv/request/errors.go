package request

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var (
	ErrValidation apperrors.Error = apperrors.New("validation error").SetStatusCode(http.StatusBadRequest)

	// ErrTenantRequired is the externally observed contract for a missing or
	// empty tenant id; the message must contain "tenant_id" and "required".
	ErrTenantRequired  apperrors.Error = ErrValidation.New("tenant_id is required")
	ErrInvalidTenantId apperrors.Error = ErrValidation.New("tenant_id is malformed")
	ErrInvalidPage     apperrors.Error = ErrValidation.New("limit and offset must be non-negative integers")
	ErrInvalidBody     apperrors.Error = ErrValidation.New("invalid request body")
	ErrInvalidFilter   apperrors.Error = ErrValidation.New("invalid filter parameter")
	ErrInvalidId       apperrors.Error = ErrValidation.New("malformed resource id")
)
