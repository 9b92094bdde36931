// Package errors holds the HTTP-facing error type returned by delivery layers.
package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code and message shown to clients.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. The message is returned to the client verbatim.
func NewHTTPError(statusCode int, message string) error {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ErrInternalServerError is the fallback for errors without an explicit mapping.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError unwraps err into an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
