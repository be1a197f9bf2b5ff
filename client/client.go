// Package client provides the OpenSearch endpoint namespaces and the HTTP
// transport they dispatch through.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// Client binds the endpoint namespaces to a Transport. It is safe for
// concurrent use.
type Client struct {
	transport    core.Transport
	logger       *core.Logger
	onDeprecated core.DeprecationHandler
	strictParams bool

	Ingest   *IngestClient
	Snapshot *SnapshotClient
	Security *SecurityClient
	Tasks    *TasksClient
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger (default: klog-backed, debug disabled).
func WithLogger(l *core.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithDeprecationHandler receives a warning each time a deprecated method is
// called. The default handler logs the warning.
func WithDeprecationHandler(h core.DeprecationHandler) Option {
	return func(c *Client) {
		c.onDeprecated = h
	}
}

// WithStrictParams rejects calls that pass parameters the endpoint does not
// accept, instead of silently dropping them.
func WithStrictParams(strict bool) Option {
	return func(c *Client) {
		c.strictParams = strict
	}
}

// New creates a Client over transport.
func New(transport core.Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, errors.New("transport is required")
	}

	c := &Client{transport: transport}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = core.NewLogger(false)
	}
	if c.onDeprecated == nil {
		c.onDeprecated = c.logger.Deprecation
	}

	c.Ingest = &IngestClient{c: c}
	c.Snapshot = &SnapshotClient{c: c}
	c.Security = &SecurityClient{c: c}
	c.Tasks = &TasksClient{c: c}
	return c, nil
}

// Transport returns the transport the client dispatches through.
func (c *Client) Transport() core.Transport {
	return c.transport
}

// Logger returns the client's logger.
func (c *Client) Logger() *core.Logger {
	return c.logger
}

// path is shorthand for the variable values of one call.
type path map[string]string

// perform validates, builds and dispatches one call. Whatever the transport
// returns is handed back unchanged.
func (c *Client) perform(ctx context.Context, op *core.Operation, values path, body any, opts []CallOption) (*core.Response, error) {
	args := newCallArgs(opts)

	if err := op.Validate(values, body); err != nil {
		return nil, err
	}

	p, err := op.BuildPath(values)
	if err != nil {
		return nil, err
	}

	filtered, err := core.FilterParams(op.Params, args.params)
	if err != nil {
		return nil, err
	}
	if len(filtered.Dropped) > 0 {
		if c.strictParams {
			return nil, core.NewValidationError(filtered.Dropped[0],
				fmt.Sprintf("%s does not accept parameter(s): %s", op.ID, strings.Join(filtered.Dropped, ", ")))
		}
		c.logger.Debug("%s: dropping unsupported parameters %v", op.ID, filtered.Dropped)
	}

	headers := make(map[string]string, len(args.headers)+len(filtered.Headers))
	for k, v := range args.headers {
		headers[k] = v
	}
	for k, v := range filtered.Headers {
		headers[k] = v
	}

	return c.transport.PerformRequest(ctx, &core.Request{
		Operation: op.ID,
		Method:    op.Method,
		Path:      p,
		Params:    filtered.Query,
		Headers:   headers,
		Body:      body,
		Timeout:   filtered.Timeout,
		Ignore:    filtered.Ignore,
	})
}
