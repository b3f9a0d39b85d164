package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform response body. Success responses carry data, error
// responses carry a message; neither carries both.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// SendJsonRsp writes a success envelope. The optional location argument is set
// as the Location header for created resources.
func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, rsp any, location ...string) {
	body, err := json.Marshal(&Envelope{
		Status: StatusSuccess,
		Data:   rsp,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to serialize response")
		ErrApplicationError().Send(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if len(location) > 0 {
		w.Header().Set("Location", location[0])
	}
	w.WriteHeader(statusCode)
	w.Write(body)
}

// SendRawRsp writes a pre-serialized body, used for CSV export.
func SendRawRsp(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)
	w.Write(body)
}
