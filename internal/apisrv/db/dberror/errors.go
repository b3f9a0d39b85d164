package dberror

import (
	"net/http"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var (
	ErrDatabase      apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrAlreadyExists apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrNotFound      apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidInput  apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)

	// ErrTransient marks statement timeouts and lock contention. Callers may
	// retry once; it is never surfaced as success.
	ErrTransient apperrors.Error = ErrDatabase.New("transient store error").SetStatusCode(http.StatusInternalServerError)
)
