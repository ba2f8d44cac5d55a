package upstream

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse reports a response body that does not match the
// expected envelope or entity shape.
var ErrMalformedResponse = errors.New("malformed upstream response")

// TransportError is returned when a request never completed: the connection
// failed, timed out, or retries were exhausted without a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Rejected() bool { return false }

func (e *TransportError) UserMessage() string { return "" }

// RejectedError is returned when the platform answered but refused the
// request, either with a non-2xx status or with success=false.
type RejectedError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RejectedError) Rejected() bool { return true }

func (e *RejectedError) UserMessage() string { return e.Message }
