package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure
type Kind string

// Failure kinds used across all flow packages
const (
	// KindValidation means the caller supplied empty or malformed input;
	// the request never reached the identity provider
	KindValidation Kind = "VALIDATION"

	// KindUnauthorized means the identity provider rejected the credentials
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindNotFound means the referenced user does not exist
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict means the operation collided with existing state,
	// e.g. a duplicate registration
	KindConflict Kind = "CONFLICT"

	// KindRateLimited means the identity provider throttled the call
	KindRateLimited Kind = "RATE_LIMITED"

	// KindConfiguration means an admin-only flow was requested without
	// admin context, or the provider-side configuration is missing
	KindConfiguration Kind = "CONFIGURATION"

	// KindMalformed means a session token failed to decode
	KindMalformed Kind = "MALFORMED"

	// KindTimeout means the caller's deadline elapsed before the
	// identity provider answered
	KindTimeout Kind = "TIMEOUT"

	// KindUnknown is an uncategorized provider error; Detail keeps the
	// raw provider response for diagnostics
	KindUnknown Kind = "UNKNOWN"
)

// Error represents a structured flow failure with kind, message, and the
// raw provider detail when one exists
type Error struct {
	Kind    Kind   // failure classification
	Message string // human-readable error message
	Detail  string // raw provider error detail, if any
	Err     error  // wrapped underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail attaches the raw provider detail to the error
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// New creates a new Error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Newf creates a new Error with formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with kind and message
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Wrapf wraps an existing error with kind and formatted message
func Wrapf(err error, kind Kind, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsKind checks if an error has a specific kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind extracts the kind from an error
// Returns KindUnknown if the error is not a structured Error
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// HTTPStatusCode returns the appropriate HTTP status code for this error
func (e *Error) HTTPStatusCode() int {
	return MapKindToHTTPStatus(e.Kind)
}

// MapKindToHTTPStatus maps failure kinds to HTTP status codes for callers
// that translate a flow result into a response
func MapKindToHTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindMalformed:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
