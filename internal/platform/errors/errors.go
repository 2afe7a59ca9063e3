// Package errors provides structured error handling with context propagation and HTTP status code mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a failure class. Every kind maps to exactly one HTTP status
// and one client-visible message.
type Kind string

const (
	KindUnacceptableMediaType Kind = "unacceptable_media_type"
	KindUnacceptableEncoding  Kind = "unacceptable_encoding"
	KindUnsupportedMediaType  Kind = "unsupported_media_type"
	KindMethodNotAllowed      Kind = "method_not_allowed"
	KindInvalidThreshold      Kind = "invalid_threshold"
	KindNoTextGiven           Kind = "no_text_given"
	KindInvalidCharacters     Kind = "invalid_characters"
	KindScoringUnavailable    Kind = "scoring_unavailable"
	KindNotFound              Kind = "not_found"
	KindPayloadTooLarge       Kind = "payload_too_large"
	KindInternal              Kind = "internal"
)

type kindInfo struct {
	status  int
	message string
}

var kinds = map[Kind]kindInfo{
	KindUnacceptableMediaType: {http.StatusNotAcceptable, "Invalid Accept header"},
	KindUnacceptableEncoding:  {http.StatusNotAcceptable, "Invalid Accept-Encoding header"},
	KindUnsupportedMediaType:  {http.StatusUnsupportedMediaType, "Invalid Content-Type header"},
	KindMethodNotAllowed:      {http.StatusMethodNotAllowed, "Method Not Allowed"},
	KindInvalidThreshold:      {http.StatusBadRequest, "Invalid threshold value"},
	KindNoTextGiven:           {http.StatusBadRequest, "No text given"},
	KindInvalidCharacters:     {http.StatusBadRequest, "Invalid characters"},
	KindScoringUnavailable:    {http.StatusInternalServerError, "Sentiment scoring unavailable"},
	KindNotFound:              {http.StatusNotFound, "Not Found"},
	KindPayloadTooLarge:       {http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
	KindInternal:              {http.StatusInternalServerError, "internal server error"},
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if info, ok := kinds[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Message returns the default client-visible message for the kind.
func (k Kind) Message() string {
	if info, ok := kinds[k]; ok {
		return info.message
	}
	return kinds[KindInternal].message
}

// Error represents a structured error with kind, message, and context.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status code for this error's kind.
func (e *Error) HTTPStatus() int {
	return e.Kind.Status()
}

// ClientError reports whether the failure was caused by the request (4xx).
func (e *Error) ClientError() bool {
	status := e.HTTPStatus()
	return status >= 400 && status < 500
}

// New creates an error of the given kind carrying the kind's default message.
func New(kind Kind) *Error {
	return &Error{
		Kind:    kind,
		Message: kind.Message(),
		Context: make(map[string]any),
	}
}

// InvalidCharactersError reports the first item whose text failed admissibility.
func InvalidCharactersError(id string) *Error {
	return &Error{
		Kind:    KindInvalidCharacters,
		Message: fmt.Sprintf("Invalid characters in value for key '%s'", id),
		Context: map[string]any{"item_id": id},
	}
}

// ScoringUnavailableError wraps a failure of the sentiment scoring dependency (HTTP 500).
func ScoringUnavailableError(cause error) *Error {
	return &Error{
		Kind:    KindScoringUnavailable,
		Message: KindScoringUnavailable.Message(),
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// InternalError creates a new internal error (HTTP 500).
func InternalError(message string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithField adds a context field to the error (chainable). Context is logged, never sent to clients.
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse represents the JSON structure sent to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToResponse converts an Error to an ErrorResponse for JSON serialization.
// Internal errors always expose the generic kind message.
func (e *Error) ToResponse() ErrorResponse {
	if e.Kind == KindInternal {
		return ErrorResponse{Error: KindInternal.Message()}
	}
	return ErrorResponse{Error: e.Message}
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError(KindInternal.Message(), err)
}

// KindForStatus maps a router-level HTTP status to the matching kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case http.StatusUnsupportedMediaType:
		return KindUnsupportedMediaType
	case http.StatusNotAcceptable:
		return KindUnacceptableMediaType
	default:
		return KindInternal
	}
}
