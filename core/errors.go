// Package core provides the request-construction contract shared by every
// endpoint of the OpenSearch client.
//
// This package contains:
//   - Path building with per-segment escaping ([BuildPath])
//   - Per-endpoint parameter whitelisting and query-string coercion ([FilterParams])
//   - Required-argument validation ([CheckRequired])
//   - Static endpoint metadata ([Operation])
//   - The [Transport] abstraction and its [Request] / [Response] types
//   - Error types for local validation and for wire failures (400, 401, 403, 404, 409, 429, 5xx)
//   - Logging utilities
//
// Error types can be used for type assertions to handle specific error cases:
//
//	resp, err := c.Snapshot.Get(ctx, "repo", "snap")
//	if err != nil {
//	    var notFound *core.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle 404
//	    }
//	}
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ValidationError is returned when a call is rejected locally, before any
// request is sent. Argument names the offending argument when there is one.
type ValidationError struct {
	Argument string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(argument, message string) *ValidationError {
	return &ValidationError{Argument: argument, Message: message}
}

// NewMissingArgumentError reports a required argument that was absent or empty.
func NewMissingArgumentError(argument string) *ValidationError {
	return &ValidationError{
		Argument: argument,
		Message:  fmt.Sprintf("empty value passed for a required argument '%s'", argument),
	}
}

// ErrorCause is one entry of the error / root_cause objects returned by the cluster.
type ErrorCause struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Index  string `json:"index,omitempty"`
}

// TransportError is the base error type for failures reported by the cluster
// or by the HTTP layer.
//
// All specific error types (NotFoundError, ServerError, etc.) embed this type.
type TransportError struct {
	StatusCode int          `json:"status"`
	ErrorType  string       `json:"type,omitempty"`
	Reason     string       `json:"reason"`
	RootCause  []ErrorCause `json:"root_cause,omitempty"`
	Body       []byte       `json:"-"`
	Cause      error        `json:"-"`
}

func (e *TransportError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.ErrorType, e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("%s (status: %d)", e.Reason, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// BadRequestError is returned when the cluster rejects a request (HTTP 400).
type BadRequestError struct {
	TransportError
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(errorType, reason string) *BadRequestError {
	return &BadRequestError{TransportError{StatusCode: 400, ErrorType: errorType, Reason: reason}}
}

// AuthenticationError is returned when authentication fails (HTTP 401).
type AuthenticationError struct {
	TransportError
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{TransportError{StatusCode: 401, Reason: reason}}
}

// AuthorizationError is returned when authorization fails (HTTP 403).
type AuthorizationError struct {
	TransportError
}

// NewAuthorizationError creates a new AuthorizationError.
func NewAuthorizationError(errorType, reason string) *AuthorizationError {
	return &AuthorizationError{TransportError{StatusCode: 403, ErrorType: errorType, Reason: reason}}
}

// NotFoundError is returned when a resource is not found (HTTP 404).
type NotFoundError struct {
	TransportError
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(errorType, reason string) *NotFoundError {
	return &NotFoundError{TransportError{StatusCode: 404, ErrorType: errorType, Reason: reason}}
}

// ConflictError is returned on version or state conflicts (HTTP 409).
type ConflictError struct {
	TransportError
}

// NewConflictError creates a new ConflictError.
func NewConflictError(errorType, reason string) *ConflictError {
	return &ConflictError{TransportError{StatusCode: 409, ErrorType: errorType, Reason: reason}}
}

// RateLimitError is returned when the cluster rejects a request with HTTP 429.
type RateLimitError struct {
	TransportError
	RetryAfter int `json:"retryAfter,omitempty"` // seconds
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// NewRateLimitError creates a new RateLimitError.
func NewRateLimitError(reason string, retryAfter int) *RateLimitError {
	return &RateLimitError{
		TransportError: TransportError{StatusCode: 429, Reason: reason},
		RetryAfter:     retryAfter,
	}
}

// ServerError is returned for server errors (HTTP 5xx).
type ServerError struct {
	TransportError
}

// NewServerError creates a new ServerError.
func NewServerError(statusCode int, errorType, reason string) *ServerError {
	return &ServerError{TransportError{StatusCode: statusCode, ErrorType: errorType, Reason: reason}}
}

// TimeoutError is returned when a request exceeds its request_timeout.
type TimeoutError struct {
	TransportError
	TimeoutMs int `json:"timeoutMs"`
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %dms", e.TimeoutMs)
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(timeoutMs int, cause error) *TimeoutError {
	return &TimeoutError{
		TransportError: TransportError{
			Reason: fmt.Sprintf("Request timed out after %dms", timeoutMs),
			Cause:  cause,
		},
		TimeoutMs: timeoutMs,
	}
}

// ConnectionError is returned when no response could be obtained from any node.
type ConnectionError struct {
	TransportError
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return "connection error: " + e.Cause.Error()
	}
	return "connection error"
}

// NewConnectionError creates a new ConnectionError.
func NewConnectionError(cause error) *ConnectionError {
	return &ConnectionError{TransportError{Reason: "connection error", Cause: cause}}
}

// errorBody covers both shapes the cluster uses for error payloads:
// {"error":{"type":..,"reason":..},"status":404} from the core engine and
// {"status":"NOT_FOUND","message":".."} from the security plugin.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
	Reason  string          `json:"reason"`
}

// ParseErrorResponse converts a failed response into an appropriate error type.
func ParseErrorResponse(statusCode int, header http.Header, body []byte) error {
	var (
		errType string
		reason  string
		causes  []ErrorCause
	)

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		var detail struct {
			ErrorCause
			RootCause []ErrorCause `json:"root_cause"`
		}
		var text string
		switch {
		case len(parsed.Error) == 0:
		case json.Unmarshal(parsed.Error, &detail) == nil:
			errType = detail.Type
			reason = detail.Reason
			causes = detail.RootCause
		case json.Unmarshal(parsed.Error, &text) == nil:
			reason = text
		}
		if reason == "" {
			reason = parsed.Message
		}
		if reason == "" {
			reason = parsed.Reason
		}
	}
	if reason == "" {
		reason = strings.TrimSpace(string(body))
	}
	if reason == "" {
		reason = http.StatusText(statusCode)
	}

	base := TransportError{
		StatusCode: statusCode,
		ErrorType:  errType,
		Reason:     reason,
		RootCause:  causes,
		Body:       body,
	}

	switch statusCode {
	case 400:
		return &BadRequestError{base}
	case 401:
		return &AuthenticationError{base}
	case 403:
		return &AuthorizationError{base}
	case 404:
		return &NotFoundError{base}
	case 409:
		return &ConflictError{base}
	case 429:
		retryAfter := 0
		if ra := header.Get("Retry-After"); ra != "" {
			retryAfter, _ = strconv.Atoi(ra)
		}
		return &RateLimitError{TransportError: base, RetryAfter: retryAfter}
	default:
		if statusCode >= 500 {
			return &ServerError{base}
		}
		return &base
	}
}

// IsRetryableError returns true if the error should trigger a retry.
func IsRetryableError(err error) bool {
	var (
		rateLimit *RateLimitError
		server    *ServerError
		timeout   *TimeoutError
		conn      *ConnectionError
	)
	return errors.As(err, &rateLimit) ||
		errors.As(err, &server) ||
		errors.As(err, &timeout) ||
		errors.As(err, &conn)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidationError reports whether err was raised locally before any request was sent.
func IsValidationError(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// AsTransportError returns the TransportError embedded in any error of the
// family, including the specific types that embed it.
func AsTransportError(err error) (*TransportError, bool) {
	type embedsTransportError interface{ transportError() *TransportError }
	var e embedsTransportError
	if errors.As(err, &e) {
		return e.transportError(), true
	}
	return nil, false
}

func (e *TransportError) transportError() *TransportError { return e }

// StatusCode extracts the HTTP status from any error in the TransportError family.
// It returns 0 for errors that did not come from a response.
func StatusCode(err error) int {
	if te, ok := AsTransportError(err); ok {
		return te.StatusCode
	}
	return 0
}
