package client

import (
	"context"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// TasksClient inspects and cancels running tasks.
type TasksClient struct {
	c *Client
}

// List returns the tasks running on the cluster.
func (n *TasksClient) List(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opTasksList, nil, nil, opts)
}

// Cancel cancels a task, or every task matching the actions / nodes /
// parent_task_id filters when taskID is empty.
func (n *TasksClient) Cancel(ctx context.Context, taskID string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opTasksCancel, path{"task_id": taskID}, nil, opts)
}

// Get returns information about a task such as "node1:5".
//
// Calling Get without a task ID is deprecated; it still issues GET /_tasks
// but emits a deprecation warning. Use List instead.
func (n *TasksClient) Get(ctx context.Context, taskID string, opts ...CallOption) (*core.Response, error) {
	if taskID == "" {
		n.c.warnDeprecated("tasks.get")
	}
	return n.c.perform(ctx, opTasksGet, path{"task_id": taskID}, nil, opts)
}
