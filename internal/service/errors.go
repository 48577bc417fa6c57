package service

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindTransport: the request never produced an HTTP response.
	KindTransport ErrorKind = iota + 1
	// KindServer: the backend answered with an error or report_error field,
	// or a non-2xx status.
	KindServer
	// KindShape: the response did not have the expected form.
	KindShape
	// KindValidation: local input was rejected before any request.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindShape:
		return "shape"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Status  int
	// Field is the response field the message came from, "error" or
	// "report_error", when the backend supplied one.
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil && e.Kind == KindTransport {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

func newTransportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Message: "Could not reach the CareerCraft service", Err: err}
}

func newShapeError(op, message string) *Error {
	return &Error{Kind: KindShape, Op: op, Message: message}
}

// KindOf returns the taxonomy kind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// UserMessage returns the text shown to the visitor for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsReportError reports whether the backend answered with report_error,
// which it does only after closing the interview session.
func IsReportError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Field == "report_error"
}
