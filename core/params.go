package core

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/DrewBradfordXYZ/osclient-go/auth"
)

// Params holds keyword arguments supplied to one endpoint call, keyed by
// their wire name (e.g. "master_timeout", "filter_path").
type Params map[string]any

// Universal options accepted by every endpoint.
const (
	ParamPretty         = "pretty"
	ParamHuman          = "human"
	ParamErrorTrace     = "error_trace"
	ParamFormat         = "format"
	ParamFilterPath     = "filter_path"
	ParamRequestTimeout = "request_timeout"
	ParamIgnore         = "ignore"
	ParamOpaqueID       = "opaque_id"
	ParamHTTPAuth       = "http_auth"
	ParamAPIKey         = "api_key"
)

// HeaderOpaqueID carries the caller-supplied request identifier.
const HeaderOpaqueID = "X-Opaque-Id"

// queryUniversals are universal options serialized into the query string.
var queryUniversals = NewNameSet(ParamPretty, ParamHuman, ParamErrorTrace, ParamFormat, ParamFilterPath)

// UniversalParams is the full set of options every endpoint accepts.
var UniversalParams = NewNameSet(
	ParamPretty, ParamHuman, ParamErrorTrace, ParamFormat, ParamFilterPath,
	ParamRequestTimeout, ParamIgnore, ParamOpaqueID, ParamHTTPAuth, ParamAPIKey,
)

// NameSet is an immutable-by-convention set of parameter names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order.
func (s NameSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FilteredParams is the outcome of FilterParams: what goes on the wire and
// what is handed to the transport out of band.
type FilteredParams struct {
	Query   map[string]string
	Headers map[string]string
	Timeout time.Duration
	Ignore  []int
	// Dropped lists supplied names that the endpoint does not accept, sorted.
	Dropped []string
}

// FilterParams keeps the supplied parameters that are declared for the
// endpoint or universal, coerces them to strings, and routes the
// transport-level options (request_timeout, ignore, opaque_id, http_auth,
// api_key) out of the query string. Nil values are treated as not supplied.
// Undeclared names are dropped and reported in Dropped.
func FilterParams(declared NameSet, supplied Params) (*FilteredParams, error) {
	out := &FilteredParams{
		Query:   make(map[string]string),
		Headers: make(map[string]string),
	}

	names := make([]string, 0, len(supplied))
	for name := range supplied {
		names = append(names, name)
	}
	sort.Strings(names)

	if !isNil(supplied[ParamHTTPAuth]) && !isNil(supplied[ParamAPIKey]) {
		return nil, NewValidationError(ParamAPIKey, "only one of 'http_auth' and 'api_key' may be passed at a time")
	}

	for _, name := range names {
		value := supplied[name]
		if isNil(value) {
			continue
		}

		switch name {
		case ParamRequestTimeout:
			d, err := toTimeout(value)
			if err != nil {
				return nil, NewValidationError(name, fmt.Sprintf("invalid request_timeout: %v", err))
			}
			out.Timeout = d
		case ParamIgnore:
			codes, err := toStatusCodes(value)
			if err != nil {
				return nil, NewValidationError(name, fmt.Sprintf("invalid ignore: %v", err))
			}
			out.Ignore = codes
		case ParamOpaqueID:
			s, err := FormatValue(value)
			if err != nil {
				return nil, NewValidationError(name, err.Error())
			}
			out.Headers[HeaderOpaqueID] = s
		case ParamHTTPAuth:
			h, err := auth.BasicHeader(value)
			if err != nil {
				return nil, NewValidationError(name, err.Error())
			}
			out.Headers["Authorization"] = h
		case ParamAPIKey:
			h, err := auth.APIKeyHeader(value)
			if err != nil {
				return nil, NewValidationError(name, err.Error())
			}
			out.Headers["Authorization"] = h
		default:
			if !declared.Has(name) && !queryUniversals.Has(name) {
				out.Dropped = append(out.Dropped, name)
				continue
			}
			s, err := FormatValue(value)
			if err != nil {
				return nil, NewValidationError(name, fmt.Sprintf("cannot encode parameter '%s': %v", name, err))
			}
			out.Query[name] = s
		}
	}
	return out, nil
}

// FormatValue renders a parameter value the way the server expects it in a
// query string: lowercase booleans, comma-joined lists, durations in
// milliseconds and times in RFC 3339.
func FormatValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case []byte:
		return string(t), nil
	case time.Duration:
		return formatDuration(t), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case []string:
		return strings.Join(t, ","), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}
		return FormatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := FormatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}
	return cast.ToStringE(v)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return strconv.FormatInt(int64(d), 10) + "nanos"
	}
	return strconv.FormatInt(int64(d)/int64(time.Millisecond), 10) + "ms"
}

// toTimeout accepts a time.Duration, a duration string ("30s") or a number of seconds.
func toTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		return t, nil
	case string:
		if d, err := time.ParseDuration(t); err == nil {
			return d, nil
		}
	}
	secs, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func toStatusCodes(v any) ([]int, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return cast.ToIntSliceE(v)
	}
	code, err := cast.ToIntE(v)
	if err != nil {
		return nil, err
	}
	return []int{code}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
