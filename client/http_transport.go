package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v2/opensearchtransport"

	"github.com/DrewBradfordXYZ/osclient-go/auth"
	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// DefaultAddress is used when no addresses are configured.
const DefaultAddress = "http://localhost:9200"

// TransportConfig describes how to reach the cluster.
type TransportConfig struct {
	// Addresses may carry a path prefix (http://proxy/opensearch); every
	// address must then use the same one.
	Addresses []string
	Username  string
	Password  string
	Header    http.Header

	CACert             []byte
	InsecureSkipVerify bool

	// MaxRetries defaults to 3. Retries happen on connection errors and on RetryOnStatus.
	MaxRetries    int
	RetryOnStatus []int
	DisableRetry  bool
	// RetryDelay is the base of the exponential backoff (default 1s).
	RetryDelay time.Duration
	// RequestTimeout applies to calls that set no request_timeout of their own.
	RequestTimeout time.Duration

	CompressRequestBody bool
	// DiscoverNodesOnStart replaces the address list with the cluster's
	// HTTP nodes before NewHTTPTransport returns.
	DiscoverNodesOnStart  bool
	DiscoverNodesInterval time.Duration

	// Transport overrides the underlying round tripper.
	Transport http.RoundTripper
}

// HTTPTransport sends requests through the opensearch-go connection pool,
// adding authentication, throttling, metrics and error mapping.
type HTTPTransport struct {
	client    *opensearchtransport.Client
	prefix    string
	auth      auth.Strategy
	throttle  Throttle
	logger    *core.Logger
	metrics   *Metrics
	opaqueIDs bool
	timeout   time.Duration
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithAuth sets the authentication strategy applied to every request that
// does not carry its own Authorization header.
func WithAuth(s auth.Strategy) TransportOption {
	return func(t *HTTPTransport) {
		t.auth = s
	}
}

// WithThrottle sets a client-side throttle (default: none).
func WithThrottle(th Throttle) TransportOption {
	return func(t *HTTPTransport) {
		t.throttle = th
	}
}

// WithTransportLogger sets the logger used for timing and retry messages.
func WithTransportLogger(l *core.Logger) TransportOption {
	return func(t *HTTPTransport) {
		t.logger = l
	}
}

// WithMetrics records Prometheus metrics for every request.
func WithMetrics(m *Metrics) TransportOption {
	return func(t *HTTPTransport) {
		t.metrics = m
	}
}

// WithAutoOpaqueID stamps requests that have no X-Opaque-Id with a random UUID.
func WithAutoOpaqueID(enabled bool) TransportOption {
	return func(t *HTTPTransport) {
		t.opaqueIDs = enabled
	}
}

// NewHTTPTransport creates a transport for the configured nodes.
func NewHTTPTransport(cfg TransportConfig, opts ...TransportOption) (*HTTPTransport, error) {
	t := &HTTPTransport{
		throttle: NewNoOpThrottle(),
		logger:   core.NopLogger(),
		timeout:  cfg.RequestTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}

	addresses := cfg.Addresses
	if len(addresses) == 0 {
		addresses = []string{DefaultAddress}
	}
	urls := make([]*url.URL, 0, len(addresses))
	for i, a := range addresses {
		u, err := url.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("parsing address %q: %w", a, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("address %q must include scheme and host", a)
		}
		// The prefix is added in newRequest; opensearchtransport would join it
		// onto the decoded path and lose escaped slashes.
		prefix := strings.TrimSuffix(u.EscapedPath(), "/")
		if i == 0 {
			t.prefix = prefix
		} else if prefix != t.prefix {
			return nil, fmt.Errorf("address %q: path prefix %q differs from %q", a, prefix, t.prefix)
		}
		u.Path, u.RawPath = "", ""
		urls = append(urls, u)
	}

	rt := cfg.Transport
	if rt == nil && cfg.InsecureSkipVerify {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev clusters
		rt = tr
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	client, err := opensearchtransport.New(opensearchtransport.Config{
		URLs:                  urls,
		Username:              cfg.Username,
		Password:              cfg.Password,
		Header:                cfg.Header,
		CACert:                cfg.CACert,
		RetryOnStatus:         cfg.RetryOnStatus,
		DisableRetry:          cfg.DisableRetry,
		EnableRetryOnTimeout:  true,
		MaxRetries:            cfg.MaxRetries,
		RetryBackoff:          t.backoff(retryDelay),
		CompressRequestBody:   cfg.CompressRequestBody,
		DiscoverNodesInterval: cfg.DiscoverNodesInterval,
		Transport:             rt,
	})
	if err != nil {
		return nil, fmt.Errorf("creating transport: %w", err)
	}
	if cfg.DiscoverNodesOnStart {
		if err := client.DiscoverNodes(); err != nil {
			return nil, fmt.Errorf("discovering nodes: %w", err)
		}
	}
	t.client = client
	return t, nil
}

// backoff doubles the delay on every attempt, capped at 30s.
func (t *HTTPTransport) backoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := time.Duration(float64(base) * math.Pow(2, float64(attempt-1)))
		if d > 30*time.Second {
			d = 30 * time.Second
		}
		t.logger.Retry(attempt, d, "retrying request")
		return d
	}
}

// PerformRequest implements core.Transport.
func (t *HTTPTransport) PerformRequest(ctx context.Context, r *core.Request) (*core.Response, error) {
	if err := t.throttle.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("throttle: %w", err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = t.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := encodeBody(r.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding body for %s: %w", r.Operation, err)
	}

	// Per-call credentials bypass the configured strategy and its refresh.
	perCallAuth := r.Headers["Authorization"] != ""
	const maxAuthAttempts = 2

	for attempt := 0; ; attempt++ {
		req, err := t.newRequest(ctx, r, body)
		if err != nil {
			return nil, err
		}
		if !perCallAuth && t.auth != nil {
			token, err := t.auth.GetToken(ctx)
			if err != nil {
				return nil, fmt.Errorf("getting auth token: %w", err)
			}
			t.auth.ApplyAuth(req, token)
		}

		start := time.Now()
		t.metrics.start()
		resp, err := t.client.Perform(req)
		if err != nil {
			t.metrics.observe(r.Operation, r.Method, 0, time.Since(start))
			if timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, core.NewTimeoutError(int(timeout.Milliseconds()), err)
			}
			return nil, core.NewConnectionError(err)
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		elapsed := time.Since(start)
		t.metrics.observe(r.Operation, r.Method, resp.StatusCode, elapsed)
		t.logger.Timing(r.Method, r.Path, resp.StatusCode, elapsed)
		if err != nil {
			return nil, core.NewConnectionError(fmt.Errorf("reading response body: %w", err))
		}

		if resp.StatusCode == http.StatusUnauthorized && !perCallAuth && t.auth != nil {
			token, err := t.auth.HandleAuthError(ctx, resp.StatusCode, attempt, maxAuthAttempts)
			if err != nil {
				return nil, err
			}
			if token != "" {
				continue
			}
		}

		if resp.StatusCode >= 400 && !r.Ignores(resp.StatusCode) {
			return nil, core.ParseErrorResponse(resp.StatusCode, resp.Header, data)
		}
		return &core.Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       data,
		}, nil
	}
}

func (t *HTTPTransport) newRequest(ctx context.Context, r *core.Request, body []byte) (*http.Request, error) {
	target := t.prefix + "/" + r.Path
	if len(r.Params) > 0 {
		q := make(url.Values, len(r.Params))
		for k, v := range r.Params {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	if t.opaqueIDs && req.Header.Get(core.HeaderOpaqueID) == "" {
		req.Header.Set(core.HeaderOpaqueID, uuid.NewString())
	}
	return req, nil
}

// encodeBody passes raw bodies through and JSON-encodes everything else.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	case io.Reader:
		return io.ReadAll(b)
	default:
		return json.Marshal(b)
	}
}
