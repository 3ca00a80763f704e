package atlassian

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies one failure class in the closed error taxonomy.
type Kind string

const (
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not found"
	KindInvalidInput     Kind = "invalid input"
	KindRateLimited      Kind = "rate limited"
	KindServerFailure    Kind = "server failure"
	KindGeneric          Kind = "generic"
	KindTransportFailure Kind = "transport failure"
	KindDecodeFailure    Kind = "decode failure"
)

// Error is the single error type surfaced by the transport and the codec.
// Callers branch on Kind; StatusCode is 0 for failures that never saw an
// HTTP status (transport and decode failures).
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Body       []byte
	cause      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// InvalidInput builds an invalid-input error for locally detected
// precondition failures (unknown issue type name, unknown transition, ...).
func InvalidInput(format string, args ...any) *Error {
	return &Error{
		Kind:       KindInvalidInput,
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, args...),
	}
}

// DecodeError wraps a malformed-payload failure, preserving the original
// parse error text for diagnosis.
func DecodeError(err error, body []byte) *Error {
	return &Error{
		Kind:    KindDecodeFailure,
		Message: err.Error(),
		Body:    body,
		cause:   err,
	}
}

// TransportError wraps a network-level failure with no HTTP status.
func TransportError(err error) *Error {
	return &Error{
		Kind:    KindTransportFailure,
		Message: err.Error(),
		cause:   err,
	}
}

// classify maps an unsuccessful HTTP status to its taxonomy kind.
// Authentication, permission and not-found checks take precedence over the
// generic 4xx fallback.
func classify(status int, body []byte) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, StatusCode: status, Message: "invalid credentials or expired token", Body: body}
	case status == http.StatusForbidden:
		return &Error{Kind: KindForbidden, StatusCode: status, Message: "insufficient permissions for this operation", Body: body}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: status, Message: "resource not found", Body: body}
	case status == http.StatusBadRequest:
		return &Error{Kind: KindInvalidInput, StatusCode: status, Message: messageFromBody(body, "bad request"), Body: body}
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, StatusCode: status, Message: "rate limit exceeded", Body: body}
	case status >= 500:
		return &Error{Kind: KindServerFailure, StatusCode: status, Message: fmt.Sprintf("server error: %d", status), Body: body}
	default:
		return &Error{Kind: KindGeneric, StatusCode: status, Message: messageFromBody(body, fmt.Sprintf("HTTP %d", status)), Body: body}
	}
}

// messageFromBody extracts human-readable messages from a Jira error body,
// joining entries under errorMessages with "; ". The fallback is used when
// the body is absent or unparseable.
func messageFromBody(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}

	var payload struct {
		ErrorMessages []string `json:"errorMessages"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.ErrorMessages) == 0 {
		return fallback
	}

	return strings.Join(payload.ErrorMessages, "; ")
}
