package audit

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var (
	ErrAuditError apperrors.Error = apperrors.New("audit error").SetStatusCode(http.StatusInternalServerError)

	// ErrRecordFailed fails the outer mutation: a write without its audit
	// event must not silently succeed.
	ErrRecordFailed apperrors.Error = ErrAuditError.New("unable to record audit event")
)
