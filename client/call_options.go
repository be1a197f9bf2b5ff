package client

import (
	"time"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// callArgs collects the keyword arguments and headers for one call.
type callArgs struct {
	params  core.Params
	headers map[string]string
}

func newCallArgs(opts []CallOption) *callArgs {
	a := &callArgs{params: core.Params{}, headers: map[string]string{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CallOption sets a query parameter, universal option or header on a single call.
type CallOption func(*callArgs)

// Param sets one named parameter. Names the endpoint does not accept are dropped.
//
// Example:
//
//	c.Snapshot.Create(ctx, "repo", "snap", nil, client.Param("wait_for_completion", true))
func Param(name string, value any) CallOption {
	return func(a *callArgs) {
		a.params[name] = value
	}
}

// Params sets several parameters at once.
func Params(p core.Params) CallOption {
	return func(a *callArgs) {
		for k, v := range p {
			a.params[k] = v
		}
	}
}

// Header sets an HTTP header on the request.
func Header(key, value string) CallOption {
	return func(a *callArgs) {
		a.headers[key] = value
	}
}

// Pretty asks the server to pretty-print the JSON response.
func Pretty() CallOption { return Param(core.ParamPretty, true) }

// Human asks for human-readable stats (e.g. "1h" instead of 3600000).
func Human() CallOption { return Param(core.ParamHuman, true) }

// ErrorTrace includes stack traces in error responses.
func ErrorTrace() CallOption { return Param(core.ParamErrorTrace, true) }

// Format sets the response format (e.g. "yaml").
func Format(f string) CallOption { return Param(core.ParamFormat, f) }

// FilterPath limits the response to the given dotted paths.
func FilterPath(paths ...string) CallOption { return Param(core.ParamFilterPath, paths) }

// RequestTimeout bounds the request on the client side.
func RequestTimeout(d time.Duration) CallOption { return Param(core.ParamRequestTimeout, d) }

// Ignore treats the listed status codes as successful responses.
func Ignore(statusCodes ...int) CallOption { return Param(core.ParamIgnore, statusCodes) }

// OpaqueID sets the X-Opaque-Id header, which the server echoes in task and slow logs.
func OpaqueID(id string) CallOption { return Param(core.ParamOpaqueID, id) }

// HTTPAuth overrides authentication for this call with basic credentials.
func HTTPAuth(username, password string) CallOption {
	return Param(core.ParamHTTPAuth, []string{username, password})
}

// APIKey overrides authentication for this call with an ApiKey credential.
func APIKey(id, key string) CallOption {
	return Param(core.ParamAPIKey, []string{id, key})
}
