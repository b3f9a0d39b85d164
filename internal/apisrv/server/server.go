// Package server assembles the HTTP surface: middleware stack, route family
// mounts, and the version route.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/accounts"
	"github.com/bizgrid/bizgrid/internal/apisrv/assistant"
	"github.com/bizgrid/bizgrid/internal/apisrv/auditlogs"
	"github.com/bizgrid/bizgrid/internal/apisrv/config"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/leads"
	"github.com/bizgrid/bizgrid/internal/apisrv/metricsvc"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
	"github.com/bizgrid/bizgrid/internal/common/logtrace"
	commonmiddleware "github.com/bizgrid/bizgrid/internal/common/middleware"
)

type BizGridServer struct {
	Router *chi.Mux
	store  db.Store
}

func CreateNewServer(store db.Store) (*BizGridServer, error) {
	if store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	s := &BizGridServer{
		Router: chi.NewRouter(),
		store:  store,
	}
	return s, nil
}

func (s *BizGridServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	s.Router.Use(metricsvc.RequestMetrics)
	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization", "X-Internal-Key"},
			MaxAge:         300,
		}))
	}
	s.Router.Route("/", s.mountResourceHandlers)
	if logtrace.IsTraceEnabled() {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			fmt.Printf("%s %s\n", method, route)
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			fmt.Printf("Logging err: %s\n", err.Error())
		}
	}
}

func (s *BizGridServer) mountResourceHandlers(r chi.Router) {
	r.Use(s.withStore)
	r.Mount("/accounts", accounts.Router())
	r.Mount("/v2/accounts", accounts.V2Router())
	r.Mount("/leads", leads.Router())
	r.Mount("/ai", assistant.Router())
	r.Mount("/audit-logs", auditlogs.Router())
	r.Mount("/metrics", metricsvc.Router())
	r.Get("/version", s.getVersion)
}

// withStore attaches the store to every request context. Handlers reach it
// through db.DB(ctx) and never through the server struct.
func (s *BizGridServer) withStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.StoreCtx(r.Context(), s.store)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *BizGridServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "BizGrid API Server: 0.1.0",
		ApiVersion:    "v1",
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}
