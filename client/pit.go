package client

import (
	"context"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// CreatePit opens a point in time over index. Pass keep_alive with Param.
func (c *Client) CreatePit(ctx context.Context, index string, opts ...CallOption) (*core.Response, error) {
	return c.perform(ctx, opCreatePit, path{"index": index}, nil, opts)
}

// DeletePit closes the points in time listed in body ({"pit_id": [...]}).
func (c *Client) DeletePit(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return c.perform(ctx, opDeletePit, nil, body, opts)
}

// DeleteAllPits closes every point in time.
func (c *Client) DeleteAllPits(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return c.perform(ctx, opDeleteAllPits, nil, nil, opts)
}

// GetAllPits lists every open point in time.
func (c *Client) GetAllPits(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return c.perform(ctx, opGetAllPits, nil, nil, opts)
}
