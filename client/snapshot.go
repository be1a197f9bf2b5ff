package client

import (
	"context"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// SnapshotClient manages snapshot repositories and snapshots.
type SnapshotClient struct {
	c *Client
}

// Create takes a snapshot. body (indices, settings) is optional.
func (n *SnapshotClient) Create(ctx context.Context, repository, snapshot string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotCreate, path{"repository": repository, "snapshot": snapshot}, body, opts)
}

// Delete removes a snapshot.
func (n *SnapshotClient) Delete(ctx context.Context, repository, snapshot string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotDelete, path{"repository": repository, "snapshot": snapshot}, nil, opts)
}

// Get returns information about one or more snapshots.
func (n *SnapshotClient) Get(ctx context.Context, repository, snapshot string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotGet, path{"repository": repository, "snapshot": snapshot}, nil, opts)
}

// DeleteRepository unregisters a repository.
func (n *SnapshotClient) DeleteRepository(ctx context.Context, repository string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotDeleteRepository, path{"repository": repository}, nil, opts)
}

// GetRepository returns a repository definition, or all of them when repository is empty.
func (n *SnapshotClient) GetRepository(ctx context.Context, repository string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotGetRepository, path{"repository": repository}, nil, opts)
}

// CreateRepository registers a repository.
func (n *SnapshotClient) CreateRepository(ctx context.Context, repository string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotCreateRepository, path{"repository": repository}, body, opts)
}

// Restore restores a snapshot. body (indices, rename pattern) is optional.
func (n *SnapshotClient) Restore(ctx context.Context, repository, snapshot string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotRestore, path{"repository": repository, "snapshot": snapshot}, body, opts)
}

// Status returns the status of running snapshots. Both arguments are optional.
func (n *SnapshotClient) Status(ctx context.Context, repository, snapshot string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotStatus, path{"repository": repository, "snapshot": snapshot}, nil, opts)
}

// VerifyRepository checks that every node can access the repository.
func (n *SnapshotClient) VerifyRepository(ctx context.Context, repository string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotVerifyRepository, path{"repository": repository}, nil, opts)
}

// CleanupRepository removes stale data from a repository.
func (n *SnapshotClient) CleanupRepository(ctx context.Context, repository string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotCleanupRepository, path{"repository": repository}, nil, opts)
}

// Clone copies indices of snapshot into targetSnapshot in the same repository.
func (n *SnapshotClient) Clone(ctx context.Context, repository, snapshot, targetSnapshot string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotClone, path{
		"repository":      repository,
		"snapshot":        snapshot,
		"target_snapshot": targetSnapshot,
	}, body, opts)
}

// RepositoryAnalyze stress-tests a repository.
func (n *SnapshotClient) RepositoryAnalyze(ctx context.Context, repository string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSnapshotRepositoryAnalyze, path{"repository": repository}, nil, opts)
}
