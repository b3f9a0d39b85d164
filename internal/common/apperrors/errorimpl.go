package apperrors

type appError struct {
	msg           string
	base          Error
	wrappedErrors []error
	statuscode    int
	expandError   bool
}

// New creates a root error with no base. Status code is unset until
// SetStatusCode is called; the boundary treats unset as 500.
func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}

func (e *appError) Error() string {
	return e.msg
}

// ErrorAll returns the message joined with all wrapped error messages when
// expansion is enabled. Expansion stays off for errors whose detail must not
// reach clients.
func (e *appError) ErrorAll() string {
	if !e.expandError || len(e.wrappedErrors) == 0 {
		return e.msg
	}
	msg := e.msg + ": "
	for i, err := range e.wrappedErrors {
		if i > 0 {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}

func (e *appError) Unwrap() []error {
	return e.wrappedErrors
}

// New derives a child error. The child inherits the status code and keeps a
// reference to its base so Is matches the whole chain.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		statuscode: e.statuscode,
		base:       e,
	}
}

// Msg, MsgErr, and Err derive a copy rather than mutating the receiver.
// Call sites invoke them on shared package-level sentinels, so mutation
// would race and leak wrapped errors across requests.
func (e *appError) Msg(msg string) Error {
	c := e.derive()
	c.msg = msg
	return c
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	c := e.derive()
	c.msg = msg
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) Err(err ...error) Error {
	c := e.derive()
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) derive() *appError {
	return &appError{
		msg:           e.msg,
		base:          e,
		wrappedErrors: append([]error(nil), e.wrappedErrors...),
		statuscode:    e.statuscode,
		expandError:   e.expandError,
	}
}

func (e *appError) Is(target error) bool {
	if e == target || e.base == target {
		return true
	}
	if e.base != nil && e.base.Is(target) {
		return true
	}
	for _, err := range e.wrappedErrors {
		if err == target {
			return true
		}
	}
	return false
}

func (e *appError) SetExpandError(expand bool) Error {
	e.expandError = expand
	return e
}

func (e *appError) SetStatusCode(code int) Error {
	e.statuscode = code
	return e
}

func (e *appError) StatusCode() int {
	return e.statuscode
}
