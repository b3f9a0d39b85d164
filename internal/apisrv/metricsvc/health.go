package metricsvc

import (
	"net/http"

	"github.com/denisbrodbeck/machineid"

	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

type healthStatus struct {
	Status     string `json:"status"`
	InstanceID string `json:"instance_id,omitempty"`
	Store      string `json:"store"`
}

// health reports process liveness and store reachability. The instance id is
// stable per host, which makes multi-replica log correlation possible.
func health(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	status := healthStatus{Status: "ok", Store: "ok"}
	if id, err := machineid.ProtectedID("bizgrid"); err == nil {
		status.InstanceID = id
	}

	statusCode := http.StatusOK
	if store := db.DB(ctx); store == nil {
		status.Status = "degraded"
		status.Store = "unavailable"
		statusCode = http.StatusServiceUnavailable
	} else if err := store.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Store = "unreachable"
		statusCode = http.StatusServiceUnavailable
	}

	return &httpx.Response{
		StatusCode: statusCode,
		Response:   status,
	}, nil
}
