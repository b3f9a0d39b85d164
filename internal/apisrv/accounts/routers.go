package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

var accountHandlers = []httpx.ResponseHandlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/",
		Handler: createAccount,
	},
	{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: listAccounts,
	},
	{
		Method:  http.MethodGet,
		Path:    "/{accountID}",
		Handler: getAccount,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/{accountID}",
		Handler: deleteAccount,
	},
}

func Router() chi.Router {
	r := chi.NewRouter()
	for _, handler := range accountHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
	return r
}

// V2Router is the /v2/accounts alias. Reads only; the handler is shared with
// the v1 route so the two can never drift.
func V2Router() chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/{accountID}", httpx.WrapHttpRsp(getAccount))
	return r
}
