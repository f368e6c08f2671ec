// Package apierror defines the error signal business logic raises when a
// request cannot be served, and the fixed table of safe messages clients see.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a business-logic failure with a symbolic code and the HTTP status
// to answer with. Message and Err are for logs only.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = SafeDetail(e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s:%d] %s: %v", e.Code, e.Status, msg, e.Err)
	}
	return fmt.Sprintf("[%s:%d] %s", e.Code, e.Status, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error.
func New(code Code, status int) *Error {
	return &Error{Code: code, Status: status}
}

// Wrap creates an Error caused by err.
func Wrap(err error, code Code, status int) *Error {
	return &Error{Code: code, Status: status, Err: err}
}

// WithMessage attaches an internal message. It is logged, never sent.
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NotFound reports a missing resource (404).
func NotFound(err error) *Error {
	return Wrap(err, CodeNotFound, http.StatusNotFound)
}

// AlreadyExists reports a duplicate resource (409).
func AlreadyExists(err error) *Error {
	return Wrap(err, CodeAlreadyExists, http.StatusConflict)
}

// PayloadTooLarge reports a request body over the configured limit (413).
func PayloadTooLarge(err error) *Error {
	return Wrap(err, CodePayloadTooLarge, http.StatusRequestEntityTooLarge)
}
