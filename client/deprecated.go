package client

import (
	"context"
	"sort"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// deprecations maps each deprecated entry point to its replacement.
var deprecations = map[string]core.DeprecationWarning{
	"list_all_point_in_time": {
		Method:      "list_all_point_in_time",
		Replacement: "get_all_pits",
	},
	"create_point_in_time": {
		Method:      "create_point_in_time",
		Replacement: "create_pit",
	},
	"delete_point_in_time": {
		Method:      "delete_point_in_time",
		Replacement: "delete_pit",
		Message:     "'delete_point_in_time' is deprecated, use 'delete_pit' or 'delete_all_pits' instead",
	},
	"security.health_check": {
		Method:      "security.health_check",
		Replacement: "security.health",
	},
	"security.update_audit_config": {
		Method:      "security.update_audit_config",
		Replacement: "security.update_audit_configuration",
	},
	"tasks.get": {
		Method:  "tasks.get",
		Message: "calling 'tasks.get' without a task id is deprecated, use 'tasks.list' instead",
	},
}

// Deprecations returns the deprecated entry points and their replacements.
func Deprecations() []core.DeprecationWarning {
	out := make([]core.DeprecationWarning, 0, len(deprecations))
	for _, w := range deprecations {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

func (c *Client) warnDeprecated(name string) {
	w, ok := deprecations[name]
	if !ok {
		w = core.DeprecationWarning{Method: name}
	}
	c.onDeprecated(w)
}

// ListAllPointInTime lists every open point in time.
//
// Deprecated: use GetAllPits.
func (c *Client) ListAllPointInTime(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	c.warnDeprecated("list_all_point_in_time")
	return c.GetAllPits(ctx, opts...)
}

// CreatePointInTime opens a point in time over index. Unlike CreatePit it
// also accepts ignore_unavailable.
//
// Deprecated: use CreatePit.
func (c *Client) CreatePointInTime(ctx context.Context, index string, opts ...CallOption) (*core.Response, error) {
	c.warnDeprecated("create_point_in_time")
	return c.perform(ctx, opCreatePointInTime, path{"index": index}, nil, opts)
}

// DeletePointInTime closes every point in time when all is set, otherwise
// the ones listed in body.
//
// Deprecated: use DeletePit or DeleteAllPits.
func (c *Client) DeletePointInTime(ctx context.Context, body any, all bool, opts ...CallOption) (*core.Response, error) {
	c.warnDeprecated("delete_point_in_time")
	if all {
		return c.DeleteAllPits(ctx, opts...)
	}
	return c.DeletePit(ctx, body, opts...)
}

// HealthCheck returns the security plugin health.
//
// Deprecated: use Health.
func (n *SecurityClient) HealthCheck(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	n.c.warnDeprecated("security.health_check")
	return n.Health(ctx, opts...)
}

// UpdateAuditConfig replaces the audit configuration.
//
// Deprecated: use UpdateAuditConfiguration.
func (n *SecurityClient) UpdateAuditConfig(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	n.c.warnDeprecated("security.update_audit_config")
	if err := core.CheckRequired(core.Arg{Name: core.BodyArg, Value: body}); err != nil {
		return nil, err
	}
	return n.UpdateAuditConfiguration(ctx, body, opts...)
}
