package errors

import (
	"net/http"
	"sort"
	"strings"

	"pabw/internal/domain/entity"
	"pabw/internal/errors"
)

// TransportError is a network failure or a non-2xx response from the backend.
// Status is zero when no response was received.
type TransportError struct {
	Status int
	// ServerMessage is the structured "message" field of the error body, if any.
	ServerMessage string
	// Body is the raw response body, trimmed.
	Body string
	Err  error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return "backend returned status " + http.StatusText(e.Status)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPCode maps the failure to the status returned to the caller.
func (e *TransportError) HTTPCode() int {
	if e.Status >= http.StatusBadRequest {
		return e.Status
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code.
func (e *TransportError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the message shown to the user, picked in order from the
// server's message field, the raw body and the transport error.
func (e *TransportError) Message() string {
	switch {
	case e.ServerMessage != "":
		return e.ServerMessage
	case e.Body != "":
		return e.Body
	default:
		return e.Error()
	}
}

// Details returns detailed error information.
func (e *TransportError) Details() string {
	return e.Body
}

// AuthorizationError is an HTTP 401 on an authenticated call.
type AuthorizationError struct {
	TransportError
}

// NewAuthorizationError wraps a 401 transport failure.
func NewAuthorizationError(t *TransportError) *AuthorizationError {
	return &AuthorizationError{TransportError: *t}
}

// ErrorCode returns the business error code.
func (e *AuthorizationError) ErrorCode() string {
	return "UNAUTHORIZED"
}

// HTTPCode returns the HTTP status code.
func (e *AuthorizationError) HTTPCode() int {
	return http.StatusUnauthorized
}

// ValidationError is a form-level error produced before any dispatch.
// Fields maps each offending field to its message.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message.
func (e *ValidationError) Message() string {
	return "Please correct the highlighted fields"
}

// Details returns detailed error information.
func (e *ValidationError) Details() string {
	return e.Error()
}

// KindOf classifies err. It returns "" for nil and for errors outside the taxonomy.
func KindOf(err error) entity.ErrorKind {
	if err == nil {
		return ""
	}

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return entity.ErrorKindAuthorization
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return entity.ErrorKindValidation
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return entity.ErrorKindTransport
	}

	return ""
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	return KindOf(err) == entity.ErrorKindAuthorization
}
