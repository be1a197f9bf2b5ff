package core

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Transport performs one HTTP request against the cluster. Implementations
// own connection management, retries and authentication.
type Transport interface {
	PerformRequest(ctx context.Context, req *Request) (*Response, error)
}

// Request is everything an endpoint method hands to the Transport.
type Request struct {
	// Operation is the endpoint ID, for logging and metrics.
	Operation string
	Method    string
	// Path is relative, without a leading slash.
	Path    string
	Params  map[string]string
	Headers map[string]string
	Body    any
	// Timeout bounds this request when non-zero.
	Timeout time.Duration
	// Ignore lists status codes that should not be reported as errors.
	Ignore []int
}

// Ignores reports whether status is in the request's ignore list.
func (r *Request) Ignores(status int) bool {
	for _, s := range r.Ignore {
		if s == status {
			return true
		}
	}
	return false
}

// Response is the raw result of a request, returned to callers unmodified.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// IsError reports whether the status code is 400 or above.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

func (r *Response) String() string {
	return string(r.Body)
}
