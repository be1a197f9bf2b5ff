package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestTransportError(t *testing.T) {
	t.Run("Error() with type", func(t *testing.T) {
		err := &TransportError{
			StatusCode: 404,
			ErrorType:  "index_not_found_exception",
			Reason:     "no such index [logs]",
		}

		expected := "index_not_found_exception: no such index [logs] (status: 404)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Error() without type", func(t *testing.T) {
		err := &TransportError{
			StatusCode: 404,
			Reason:     "Not Found",
		}

		expected := "Not Found (status: 404)"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})

	t.Run("Unwrap() returns cause", func(t *testing.T) {
		cause := errors.New("cause")
		err := &TransportError{
			Reason: "wrapper",
			Cause:  cause,
		}

		if err.Unwrap() != cause {
			t.Errorf("Unwrap() did not return cause")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := NewMissingArgumentError("repository")

	if err.Argument != "repository" {
		t.Errorf("Argument = %q, want 'repository'", err.Argument)
	}
	expected := "empty value passed for a required argument 'repository'"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !IsValidationError(fmt.Errorf("calling: %w", err)) {
		t.Errorf("IsValidationError() = false for wrapped ValidationError")
	}
}

func TestRateLimitError(t *testing.T) {
	t.Run("Error() with RetryAfter", func(t *testing.T) {
		err := NewRateLimitError("Too Many Requests", 30)

		expected := "rate limited, retry after 30 seconds"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
		if err.StatusCode != 429 {
			t.Errorf("StatusCode = %d, want 429", err.StatusCode)
		}
	})

	t.Run("Error() without RetryAfter", func(t *testing.T) {
		err := NewRateLimitError("Too Many Requests", 0)

		expected := "rate limited"
		if err.Error() != expected {
			t.Errorf("Error() = %q, want %q", err.Error(), expected)
		}
	})
}

func TestNewTimeoutError(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := NewTimeoutError(30000, cause)

	if err.TimeoutMs != 30000 {
		t.Errorf("TimeoutMs = %d, want 30000", err.TimeoutMs)
	}

	expected := "request timed out after 30000ms"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestNewServerError(t *testing.T) {
	err := NewServerError(503, "", "Service Unavailable")

	if err.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", err.StatusCode)
	}
	if err.Reason != "Service Unavailable" {
		t.Errorf("Reason = %q, want 'Service Unavailable'", err.Reason)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "RateLimitError is retryable",
			err:      NewRateLimitError("", 1),
			expected: true,
		},
		{
			name:     "ServerError is retryable",
			err:      NewServerError(500, "", "Internal Server Error"),
			expected: true,
		},
		{
			name:     "TimeoutError is retryable",
			err:      NewTimeoutError(30000, nil),
			expected: true,
		},
		{
			name:     "ConnectionError is retryable",
			err:      NewConnectionError(errors.New("dial tcp: connection refused")),
			expected: true,
		},
		{
			name:     "wrapped ServerError is retryable",
			err:      fmt.Errorf("performing request: %w", NewServerError(502, "", "Bad Gateway")),
			expected: true,
		},
		{
			name:     "ValidationError is not retryable",
			err:      NewMissingArgumentError("id"),
			expected: false,
		},
		{
			name:     "NotFoundError is not retryable",
			err:      NewNotFoundError("", "Not found"),
			expected: false,
		},
		{
			name:     "AuthenticationError is not retryable",
			err:      NewAuthenticationError("Unauthorized"),
			expected: false,
		},
		{
			name:     "ConflictError is not retryable",
			err:      NewConflictError("version_conflict_engine_exception", "conflict"),
			expected: false,
		},
		{
			name:     "Generic TransportError is not retryable",
			err:      &TransportError{Reason: "Unknown error"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRetryableError(tt.err)
			if result != tt.expected {
				t.Errorf("IsRetryableError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		headers        map[string]string
		expectedType   string
		expectedReason string
	}{
		{
			name:           "400 returns BadRequestError",
			statusCode:     400,
			body:           `{"error":{"root_cause":[{"type":"parse_exception","reason":"bad body"}],"type":"parse_exception","reason":"bad body"},"status":400}`,
			expectedType:   "*core.BadRequestError",
			expectedReason: "bad body",
		},
		{
			name:           "401 returns AuthenticationError",
			statusCode:     401,
			body:           `Unauthorized`,
			expectedType:   "*core.AuthenticationError",
			expectedReason: "Unauthorized",
		},
		{
			name:           "403 returns AuthorizationError",
			statusCode:     403,
			body:           `{"error":{"type":"security_exception","reason":"no permissions"},"status":403}`,
			expectedType:   "*core.AuthorizationError",
			expectedReason: "no permissions",
		},
		{
			name:           "404 returns NotFoundError",
			statusCode:     404,
			body:           `{"error":{"type":"snapshot_missing_exception","reason":"[repo:snap] is missing"},"status":404}`,
			expectedType:   "*core.NotFoundError",
			expectedReason: "[repo:snap] is missing",
		},
		{
			name:           "404 from security plugin uses message",
			statusCode:     404,
			body:           `{"status":"NOT_FOUND","message":"Resource 'alice' not found."}`,
			expectedType:   "*core.NotFoundError",
			expectedReason: "Resource 'alice' not found.",
		},
		{
			name:           "409 returns ConflictError",
			statusCode:     409,
			body:           `{"error":{"type":"version_conflict_engine_exception","reason":"conflict"},"status":409}`,
			expectedType:   "*core.ConflictError",
			expectedReason: "conflict",
		},
		{
			name:       "429 returns RateLimitError",
			statusCode: 429,
			body:       `{"error":"Too many requests"}`,
			headers: map[string]string{
				"Retry-After": "30",
			},
			expectedType:   "*core.RateLimitError",
			expectedReason: "Too many requests",
		},
		{
			name:           "500 returns ServerError",
			statusCode:     500,
			body:           `{"error":{"type":"exception","reason":"boom"},"status":500}`,
			expectedType:   "*core.ServerError",
			expectedReason: "boom",
		},
		{
			name:           "503 with empty body uses status text",
			statusCode:     503,
			body:           ``,
			expectedType:   "*core.ServerError",
			expectedReason: "Service Unavailable",
		},
		{
			name:           "unknown 4xx returns TransportError",
			statusCode:     418,
			body:           `{"error":"I'm a teapot"}`,
			expectedType:   "*core.TransportError",
			expectedReason: "I'm a teapot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}

			err := ParseErrorResponse(tt.statusCode, header, []byte(tt.body))

			switch tt.expectedType {
			case "*core.BadRequestError":
				if _, ok := err.(*BadRequestError); !ok {
					t.Errorf("expected *BadRequestError, got %T", err)
				}
			case "*core.AuthenticationError":
				if _, ok := err.(*AuthenticationError); !ok {
					t.Errorf("expected *AuthenticationError, got %T", err)
				}
			case "*core.AuthorizationError":
				if _, ok := err.(*AuthorizationError); !ok {
					t.Errorf("expected *AuthorizationError, got %T", err)
				}
			case "*core.NotFoundError":
				if _, ok := err.(*NotFoundError); !ok {
					t.Errorf("expected *NotFoundError, got %T", err)
				}
			case "*core.ConflictError":
				if _, ok := err.(*ConflictError); !ok {
					t.Errorf("expected *ConflictError, got %T", err)
				}
			case "*core.RateLimitError":
				if rle, ok := err.(*RateLimitError); !ok {
					t.Errorf("expected *RateLimitError, got %T", err)
				} else if rle.RetryAfter != 30 {
					t.Errorf("RetryAfter = %d, want 30", rle.RetryAfter)
				}
			case "*core.ServerError":
				if _, ok := err.(*ServerError); !ok {
					t.Errorf("expected *ServerError, got %T", err)
				}
			case "*core.TransportError":
				if _, ok := err.(*TransportError); !ok {
					t.Errorf("expected *TransportError, got %T", err)
				}
			}

			if got := StatusCode(err); got != tt.statusCode {
				t.Errorf("StatusCode() = %d, want %d", got, tt.statusCode)
			}

			transportErr, ok := AsTransportError(err)
			if !ok {
				t.Fatalf("AsTransportError(%T) = false", err)
			}
			if transportErr.Reason != tt.expectedReason {
				t.Errorf("Reason = %q, want %q", transportErr.Reason, tt.expectedReason)
			}
		})
	}

	t.Run("keeps root cause and raw body", func(t *testing.T) {
		body := `{"error":{"root_cause":[{"type":"index_not_found_exception","reason":"no such index [x]","index":"x"}],"type":"index_not_found_exception","reason":"no such index [x]"},"status":404}`
		err := ParseErrorResponse(404, http.Header{}, []byte(body))

		nf, ok := err.(*NotFoundError)
		if !ok {
			t.Fatalf("expected *NotFoundError, got %T", err)
		}
		if nf.ErrorType != "index_not_found_exception" {
			t.Errorf("ErrorType = %q, want 'index_not_found_exception'", nf.ErrorType)
		}
		if len(nf.RootCause) != 1 || nf.RootCause[0].Index != "x" {
			t.Errorf("RootCause = %+v, want one cause for index x", nf.RootCause)
		}
		if string(nf.Body) != body {
			t.Errorf("Body was not preserved")
		}
		if !IsNotFound(err) {
			t.Errorf("IsNotFound() = false, want true")
		}
	})
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(errors.New("plain")); got != 0 {
		t.Errorf("StatusCode(plain) = %d, want 0", got)
	}
	if got := StatusCode(NewMissingArgumentError("id")); got != 0 {
		t.Errorf("StatusCode(validation) = %d, want 0", got)
	}
	if got := StatusCode(fmt.Errorf("wrapped: %w", NewConflictError("", "x"))); got != 409 {
		t.Errorf("StatusCode(conflict) = %d, want 409", got)
	}
}
