package auditlogs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

var auditLogHandlers = []httpx.ResponseHandlerParam{
	{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: listAuditLogs,
	},
	{
		Method:  http.MethodGet,
		Path:    "/export",
		Handler: exportAuditLogs,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/",
		Handler: purgeAuditLogs,
	},
}

func Router() chi.Router {
	r := chi.NewRouter()
	for _, handler := range auditLogHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
	return r
}
