// Package osclient is a Go client for the OpenSearch REST API covering the
// ingest, snapshot, security plugin, tasks and point-in-time endpoints.
//
// This package provides:
//   - Endpoint methods grouped by namespace (Ingest, Snapshot, Security, Tasks)
//   - Path construction with per-segment escaping and required-argument checks
//   - Per-endpoint query parameter whitelists plus universal options
//   - Basic, ApiKey and refreshing Bearer authentication
//   - Retries across nodes via the opensearch-go connection pool
//   - Typed errors for each class of HTTP failure
//   - Optional client-side throttling, Prometheus metrics and debug logging
//
// Basic usage:
//
//	c, err := osclient.New(
//	    osclient.WithAddresses("https://localhost:9200"),
//	    osclient.WithBasicAuth("admin", "admin"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Snapshot.Create(ctx, "backups", "nightly", nil,
//	    osclient.Param("wait_for_completion", true))
//
// From a config file and the environment:
//
//	cfg, err := config.Load("osclient.yaml")
//	c, err := osclient.NewFromConfig(cfg)
package osclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DrewBradfordXYZ/osclient-go/auth"
	"github.com/DrewBradfordXYZ/osclient-go/client"
	"github.com/DrewBradfordXYZ/osclient-go/config"
	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// Client is the OpenSearch client.
type Client = client.Client

// Re-export types for convenience
type (
	Request            = core.Request
	Response           = core.Response
	Transport          = core.Transport
	Operation          = core.Operation
	DeprecationWarning = core.DeprecationWarning
	CallOption         = client.CallOption

	// Error types
	ValidationError     = core.ValidationError
	TransportError      = core.TransportError
	BadRequestError     = core.BadRequestError
	AuthenticationError = core.AuthenticationError
	AuthorizationError  = core.AuthorizationError
	NotFoundError       = core.NotFoundError
	ConflictError       = core.ConflictError
	RateLimitError      = core.RateLimitError
	ServerError         = core.ServerError
	TimeoutError        = core.TimeoutError
	ConnectionError     = core.ConnectionError

	// Throttle types
	SlidingWindowThrottle = client.SlidingWindowThrottle
	NoOpThrottle          = client.NoOpThrottle
	RateLimiter           = client.RateLimiter
	Throttle              = client.Throttle
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	transport     core.Transport
	transportCfg  client.TransportConfig
	transportOpts []client.TransportOption
	clientOpts    []client.Option
	authStrategy  auth.Strategy
	log           *logr.Logger
	debug         bool
	registerer    prometheus.Registerer
}

// WithAddresses sets the cluster nodes, e.g. "https://node1:9200".
func WithAddresses(addresses ...string) Option {
	return func(c *clientConfig) {
		c.transportCfg.Addresses = append(c.transportCfg.Addresses, addresses...)
	}
}

// WithBasicAuth authenticates as an internal or LDAP user.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewBasicAuthStrategy(username, password)
	}
}

// WithAPIKey authenticates with a base64-encoded "id:key" API key.
func WithAPIKey(encoded string) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewAPIKeyStrategy(encoded)
	}
}

// WithBearerTokenSource authenticates with bearer tokens fetched from source,
// refreshing them on expiry and after a 401.
func WithBearerTokenSource(source auth.TokenSource, opts ...auth.BearerTokenOption) Option {
	return func(c *clientConfig) {
		c.authStrategy = auth.NewBearerTokenStrategy(source, opts...)
	}
}

// WithAuthStrategy sets a custom authentication strategy.
func WithAuthStrategy(s auth.Strategy) Option {
	return func(c *clientConfig) {
		c.authStrategy = s
	}
}

// WithMaxRetries sets the maximum number of retries per request (default 3).
func WithMaxRetries(n int) Option {
	return func(c *clientConfig) {
		c.transportCfg.MaxRetries = n
	}
}

// WithRetryDelay sets the initial delay between retries (default 1s).
func WithRetryDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.transportCfg.RetryDelay = d
	}
}

// WithRetryOnStatus sets the statuses that trigger a retry (default 502, 503, 504).
func WithRetryOnStatus(statuses ...int) Option {
	return func(c *clientConfig) {
		c.transportCfg.RetryOnStatus = statuses
	}
}

// WithDisableRetry turns retries off.
func WithDisableRetry() Option {
	return func(c *clientConfig) {
		c.transportCfg.DisableRetry = true
	}
}

// WithRequestTimeout sets the timeout for calls that do not pass their own.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.transportCfg.RequestTimeout = d
	}
}

// WithCACert trusts the given PEM-encoded certificate authority.
func WithCACert(pem []byte) Option {
	return func(c *clientConfig) {
		c.transportCfg.CACert = pem
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *clientConfig) {
		c.transportCfg.InsecureSkipVerify = skip
	}
}

// WithCompression gzips request bodies.
func WithCompression(enabled bool) Option {
	return func(c *clientConfig) {
		c.transportCfg.CompressRequestBody = enabled
	}
}

// WithNodeDiscovery sniffs cluster nodes on start and then every interval (0 disables the periodic refresh).
func WithNodeDiscovery(interval time.Duration) Option {
	return func(c *clientConfig) {
		c.transportCfg.DiscoverNodesOnStart = true
		c.transportCfg.DiscoverNodesInterval = interval
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *clientConfig) {
		if c.transportCfg.Header == nil {
			c.transportCfg.Header = http.Header{}
		}
		c.transportCfg.Header.Add(key, value)
	}
}

// WithRoundTripper replaces the underlying HTTP round tripper.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *clientConfig) {
		c.transportCfg.Transport = rt
	}
}

// WithProactiveThrottle limits the client to requests per window.
func WithProactiveThrottle(requests int, window time.Duration) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, client.WithThrottle(client.NewSlidingWindowThrottle(requests, window)))
	}
}

// WithRateLimit smooths traffic with a token bucket of rate requests per
// second and the given burst.
func WithRateLimit(rate float64, burst int) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, client.WithThrottle(client.NewRateLimiter(rate, burst)))
	}
}

// WithThrottle sets a custom throttle implementation.
func WithThrottle(t client.Throttle) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, client.WithThrottle(t))
	}
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) Option {
	return func(c *clientConfig) {
		c.debug = enabled
	}
}

// WithLogger routes log output to l instead of klog.
func WithLogger(l logr.Logger) Option {
	return func(c *clientConfig) {
		c.log = &l
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithOpaqueIDs stamps every request without an opaque_id with a random X-Opaque-Id.
func WithOpaqueIDs(enabled bool) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, client.WithAutoOpaqueID(enabled))
	}
}

// WithDeprecationHandler receives a warning for each call to a deprecated method.
func WithDeprecationHandler(h func(DeprecationWarning)) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithDeprecationHandler(h))
	}
}

// WithStrictParams rejects parameters an endpoint does not accept.
func WithStrictParams(strict bool) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithStrictParams(strict))
	}
}

// WithTransport bypasses the HTTP transport entirely. Connection, auth,
// throttle and metrics options are then ignored.
func WithTransport(t core.Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// New creates a new OpenSearch client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := core.NewLogger(cfg.debug)
	if cfg.log != nil {
		logger = core.NewLoggerFrom(*cfg.log, cfg.debug)
	}

	transport := cfg.transport
	if transport == nil {
		topts := []client.TransportOption{client.WithTransportLogger(logger)}
		if cfg.authStrategy != nil {
			topts = append(topts, client.WithAuth(cfg.authStrategy))
		}
		if cfg.registerer != nil {
			topts = append(topts, client.WithMetrics(client.NewMetrics(cfg.registerer)))
		}
		topts = append(topts, cfg.transportOpts...)

		t, err := client.NewHTTPTransport(cfg.transportCfg, topts...)
		if err != nil {
			return nil, err
		}
		transport = t
	}

	return client.New(transport, append([]client.Option{client.WithLogger(logger)}, cfg.clientOpts...)...)
}

// NewFromConfig creates a client from loaded configuration. opts are applied
// after the configuration and win over it.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	pem, err := cfg.CACert()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithAddresses(cfg.Addresses...),
		WithMaxRetries(cfg.MaxRetries),
		WithRequestTimeout(cfg.RequestTimeout),
		WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		WithDebug(cfg.Debug),
		WithStrictParams(cfg.StrictParams),
	}
	if pem != nil {
		base = append(base, WithCACert(pem))
	}
	switch {
	case cfg.APIKey != "":
		base = append(base, WithAPIKey(cfg.APIKey))
	case cfg.Username != "":
		base = append(base, WithBasicAuth(cfg.Username, cfg.Password))
	}
	if cfg.ThrottleRequests > 0 {
		base = append(base, WithProactiveThrottle(cfg.ThrottleRequests, cfg.ThrottleWindow))
	}

	return New(append(base, opts...)...)
}

// Per-call options re-exported from client
var (
	Param          = client.Param
	Params         = client.Params
	Header         = client.Header
	Pretty         = client.Pretty
	Human          = client.Human
	ErrorTrace     = client.ErrorTrace
	Format         = client.Format
	FilterPath     = client.FilterPath
	RequestTimeout = client.RequestTimeout
	Ignore         = client.Ignore
	OpaqueID       = client.OpaqueID
	HTTPAuth       = client.HTTPAuth
	APIKey         = client.APIKey
)

// Helper functions re-exported from core and client
var (
	// IsRetryableError returns true if the error should trigger a retry.
	IsRetryableError = core.IsRetryableError

	// IsNotFound reports whether err is a 404 from the cluster.
	IsNotFound = core.IsNotFound

	// IsValidationError reports whether err was raised locally before any request was sent.
	IsValidationError = core.IsValidationError

	// StatusCode returns the HTTP status carried by err, or 0.
	StatusCode = core.StatusCode

	// Endpoints lists every operation the client can call.
	Endpoints = client.Endpoints

	// Deprecations lists the deprecated methods and their replacements.
	Deprecations = client.Deprecations
)

// NewSlidingWindowThrottle creates a new sliding window throttle.
func NewSlidingWindowThrottle(requests int, window time.Duration) *SlidingWindowThrottle {
	return client.NewSlidingWindowThrottle(requests, window)
}

// NewNoOpThrottle creates a no-op throttle.
func NewNoOpThrottle() *NoOpThrottle {
	return client.NewNoOpThrottle()
}
