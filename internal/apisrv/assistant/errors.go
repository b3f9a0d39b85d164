package assistant

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var (
	ErrAssistant apperrors.Error = apperrors.New("assistant error").SetStatusCode(http.StatusInternalServerError)
)

var (
	ErrEmptyMessage     apperrors.Error = ErrAssistant.New("message is required").SetStatusCode(http.StatusBadRequest)
	ErrModelUnavailable apperrors.Error = ErrAssistant.New("model backend unavailable").SetStatusCode(http.StatusBadGateway)
)
