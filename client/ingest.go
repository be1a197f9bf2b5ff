package client

import (
	"context"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// IngestClient manages ingest pipelines.
type IngestClient struct {
	c *Client
}

// GetPipeline returns a pipeline, or every pipeline when id is empty.
// id may be a comma-separated list or contain wildcards.
func (n *IngestClient) GetPipeline(ctx context.Context, id string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opIngestGetPipeline, path{"id": id}, nil, opts)
}

// PutPipeline creates or updates a pipeline.
func (n *IngestClient) PutPipeline(ctx context.Context, id string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opIngestPutPipeline, path{"id": id}, body, opts)
}

// DeletePipeline deletes a pipeline.
func (n *IngestClient) DeletePipeline(ctx context.Context, id string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opIngestDeletePipeline, path{"id": id}, nil, opts)
}

// Simulate runs documents through a stored pipeline (id set) or through the
// pipeline definition in body (id empty).
func (n *IngestClient) Simulate(ctx context.Context, id string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opIngestSimulate, path{"id": id}, body, opts)
}

// ProcessorGrok returns the built-in grok patterns.
func (n *IngestClient) ProcessorGrok(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opIngestProcessorGrok, nil, nil, opts)
}
