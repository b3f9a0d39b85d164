package auth

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

// Base auth error
var (
	ErrAuth apperrors.Error = apperrors.New("auth error").SetStatusCode(http.StatusInternalServerError)
)

// Authorization errors
var (
	ErrUnauthorized    apperrors.Error = ErrAuth.New("unauthorized access").SetStatusCode(http.StatusUnauthorized)
	ErrForbidden       apperrors.Error = ErrAuth.New("elevated authorization required").SetStatusCode(http.StatusForbidden)
	ErrMissingSecret   apperrors.Error = ErrAuth.New("missing internal authentication key").SetStatusCode(http.StatusUnauthorized)
	ErrInvalidSecret   apperrors.Error = ErrAuth.New("invalid internal authentication key").SetStatusCode(http.StatusUnauthorized)
	ErrTokenGeneration apperrors.Error = ErrAuth.New("failed to generate token").SetStatusCode(http.StatusInternalServerError)
)
