package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizgrid/bizgrid/internal/apisrv/db/memdb"
)

const (
	testTenantAlpha = "Talpha001"
	testTenantBeta  = "Tbeta0002"
)

func newTestServer(t *testing.T) (*BizGridServer, *memdb.Store) {
	store := memdb.New()
	s, err := CreateNewServer(store)
	require.NoError(t, err, "create new server")
	s.MountHandlers()
	return s, store
}

func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func executeTestRequest(t *testing.T, s *BizGridServer, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func parseEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "parse response envelope: %s", rr.Body.String())
	return env
}

func parseData(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	env := parseEnvelope(t, rr)
	require.Equal(t, "success", env.Status, "expected success envelope, got %s", rr.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out), "parse response data")
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data any) {
	var jsonData []byte
	if s, ok := data.(string); ok {
		require.True(t, json.Valid([]byte(s)), "body string is not valid json")
		jsonData = []byte(s)
	} else {
		var err error
		jsonData, err = json.Marshal(data)
		require.NoError(t, err, "marshal request body")
	}
	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

func checkHeader(t *testing.T, h http.Header) {
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.NotEmpty(t, h.Get("X-Bizgrid-Request-ID"), "no request id header")
}
