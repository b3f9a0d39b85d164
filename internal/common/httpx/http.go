// Package httpx carries the HTTP plumbing shared by all route families:
// request body decoding, the response envelope, and the handler wrapper that
// maps application errors to HTTP status codes.
package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetRequestData decodes a JSON request body into data. Only POST and PUT
// carry bodies in this API.
func GetRequestData(r *http.Request, data any) error {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return ErrReqMethodNotSupported()
	}
	if r.Body == nil {
		log.Ctx(r.Context()).Error().Msg("empty request body")
		return ErrUnableToParseReqData()
	}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return ErrUnableToParseReqData()
	}
	return nil
}

type Response struct {
	StatusCode  int
	Location    string // set for http.StatusCreated responses
	Response    any
	ContentType string
	Raw         []byte // pre-serialized body for non-JSON content types
}

type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler to http.HandlerFunc. Handler errors are
// mapped to the error envelope: httpx.Error and apperrors.Error carry their
// own status codes; anything else becomes a generic 500.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			if httperror, ok := err.(*Error); ok {
				httperror.Send(w)
			} else if appErr, ok := err.(apperrors.Error); ok {
				statusCode := appErr.StatusCode()
				if statusCode == 0 {
					statusCode = http.StatusInternalServerError
				}
				httperror := &Error{
					StatusCode:  statusCode,
					Description: appErr.ErrorAll(),
				}
				httperror.Send(w)
			} else {
				log.Ctx(r.Context()).Error().Err(err).Msg("unclassified handler error")
				ErrApplicationError().Send(w)
			}
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}
		if rsp.ContentType == "" {
			rsp.ContentType = "application/json"
		}
		var location []string
		if rsp.Location != "" {
			location = append(location, rsp.Location)
		}
		if rsp.ContentType == "application/json" {
			SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
		} else {
			SendRawRsp(w, rsp.StatusCode, rsp.ContentType, rsp.Raw)
		}
	})
}

type ResponseHandlerParam struct {
	Method  string
	Path    string
	Handler RequestHandler
}
