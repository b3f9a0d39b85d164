package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

var assistantHandlers = []httpx.ResponseHandlerParam{
	{
		Method:  http.MethodGet,
		Path:    "/assistants",
		Handler: listAssistants,
	},
	{
		Method:  http.MethodGet,
		Path:    "/conversations",
		Handler: listConversations,
	},
	{
		Method:  http.MethodPost,
		Path:    "/chat",
		Handler: chat,
	},
	{
		Method:  http.MethodPost,
		Path:    "/brain-test",
		Handler: brainTest,
	},
}

func Router() chi.Router {
	r := chi.NewRouter()
	for _, handler := range assistantHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
	r.Get("/realtime", realtime)
	return r
}
