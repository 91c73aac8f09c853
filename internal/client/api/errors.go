package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avelev/schoolguard/internal/common"
)

// RequestError is the uniform failure produced by the facade for both
// transport errors and non-2xx responses. Status is the HTTP status code,
// or 0 when the request never reached the server. Message is the
// backend's message field when the error body parses, otherwise a
// synthesized "HTTP error! status: <code>" string.
type RequestError struct {
	Status  int
	Message string
	cause   error
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap maps the error onto the shared sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *RequestError) Unwrap() error {
	switch e.Status {
	case 0:
		return common.ErrUnavailable
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return e.cause
	}
}

func newTransportError(err error) *RequestError {
	return &RequestError{Status: 0, Message: common.ErrUnavailable.Error(), cause: err}
}

func newStatusError(status int, message string) *RequestError {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &RequestError{Status: status, Message: message}
}

// StatusOf returns the HTTP status carried by err, or 0 if err does not
// wrap a *RequestError.
func StatusOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
