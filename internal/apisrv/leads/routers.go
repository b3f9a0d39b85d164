package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

var leadHandlers = []httpx.ResponseHandlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/",
		Handler: createLead,
	},
	{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: listLeads,
	},
	{
		Method:  http.MethodGet,
		Path:    "/{leadID}",
		Handler: getLead,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/{leadID}",
		Handler: deleteLead,
	},
}

func Router() chi.Router {
	r := chi.NewRouter()
	for _, handler := range leadHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
	return r
}
