// Package apperrors defines the error type used across the service. Errors are
// chainable: a package declares a base sentinel and derives more specific
// errors from it with New, so errors.Is matches anywhere along the chain. Each
// error may carry the HTTP status code the boundary layer should map it to.
package apperrors

type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	MsgErr(msg string, err ...error) Error
	Msg(msg string) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetExpandError(expand bool) Error
	SetStatusCode(code int) Error
	StatusCode() int
}
