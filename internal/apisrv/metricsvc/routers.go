package metricsvc

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

func Router() chi.Router {
	r := chi.NewRouter()
	r.Handle("/", promhttp.Handler())
	r.Get("/health", httpx.WrapHttpRsp(health))
	return r
}
