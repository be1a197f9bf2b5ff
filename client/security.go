package client

import (
	"context"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

// SecurityClient administers the security plugin: users, roles, role
// mappings, action groups, tenants, configuration, certificates and audit
// logging. Security endpoints accept only the universal call options.
type SecurityClient struct {
	c *Client
}

func (n *SecurityClient) get(ctx context.Context, r securityResource, arg, name string, opts []CallOption) (*core.Response, error) {
	return n.c.perform(ctx, r.get, path{arg: name}, nil, opts)
}

func (n *SecurityClient) create(ctx context.Context, r securityResource, arg, name string, body any, opts []CallOption) (*core.Response, error) {
	return n.c.perform(ctx, r.create, path{arg: name}, body, opts)
}

func (n *SecurityClient) patch(ctx context.Context, r securityResource, arg, name string, body any, opts []CallOption) (*core.Response, error) {
	return n.c.perform(ctx, r.patch, path{arg: name}, body, opts)
}

func (n *SecurityClient) delete(ctx context.Context, r securityResource, arg, name string, opts []CallOption) (*core.Response, error) {
	return n.c.perform(ctx, r.delete, path{arg: name}, nil, opts)
}

// Account

// GetAccountDetails returns the authenticated user's account.
func (n *SecurityClient) GetAccountDetails(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityGetAccountDetails, nil, nil, opts)
}

// ChangePassword changes the authenticated user's password.
func (n *SecurityClient) ChangePassword(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityChangePassword, nil, body, opts)
}

// Action groups

// GetActionGroup returns one action group.
func (n *SecurityClient) GetActionGroup(ctx context.Context, actionGroup string, opts ...CallOption) (*core.Response, error) {
	return n.get(ctx, secActionGroups, "action_group", actionGroup, opts)
}

// GetActionGroups returns all action groups.
func (n *SecurityClient) GetActionGroups(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secActionGroups.list, nil, nil, opts)
}

// DeleteActionGroup deletes an action group.
func (n *SecurityClient) DeleteActionGroup(ctx context.Context, actionGroup string, opts ...CallOption) (*core.Response, error) {
	return n.delete(ctx, secActionGroups, "action_group", actionGroup, opts)
}

// CreateActionGroup creates or replaces an action group.
func (n *SecurityClient) CreateActionGroup(ctx context.Context, actionGroup string, body any, opts ...CallOption) (*core.Response, error) {
	return n.create(ctx, secActionGroups, "action_group", actionGroup, body, opts)
}

// PatchActionGroup applies a JSON patch to one action group.
func (n *SecurityClient) PatchActionGroup(ctx context.Context, actionGroup string, body any, opts ...CallOption) (*core.Response, error) {
	return n.patch(ctx, secActionGroups, "action_group", actionGroup, body, opts)
}

// PatchActionGroups applies a JSON patch across action groups.
func (n *SecurityClient) PatchActionGroups(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secActionGroups.patchAll, nil, body, opts)
}

// Internal users

// GetUser returns one internal user.
func (n *SecurityClient) GetUser(ctx context.Context, username string, opts ...CallOption) (*core.Response, error) {
	return n.get(ctx, secUsers, "username", username, opts)
}

// GetUsers returns all internal users.
func (n *SecurityClient) GetUsers(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secUsers.list, nil, nil, opts)
}

// DeleteUser deletes an internal user.
func (n *SecurityClient) DeleteUser(ctx context.Context, username string, opts ...CallOption) (*core.Response, error) {
	return n.delete(ctx, secUsers, "username", username, opts)
}

// CreateUser creates or replaces an internal user.
func (n *SecurityClient) CreateUser(ctx context.Context, username string, body any, opts ...CallOption) (*core.Response, error) {
	return n.create(ctx, secUsers, "username", username, body, opts)
}

// PatchUser applies a JSON patch to one internal user.
func (n *SecurityClient) PatchUser(ctx context.Context, username string, body any, opts ...CallOption) (*core.Response, error) {
	return n.patch(ctx, secUsers, "username", username, body, opts)
}

// PatchUsers applies a JSON patch across internal users.
func (n *SecurityClient) PatchUsers(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secUsers.patchAll, nil, body, opts)
}

// Roles

// GetRole returns one role.
func (n *SecurityClient) GetRole(ctx context.Context, role string, opts ...CallOption) (*core.Response, error) {
	return n.get(ctx, secRoles, "role", role, opts)
}

// GetRoles returns all roles.
func (n *SecurityClient) GetRoles(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secRoles.list, nil, nil, opts)
}

// DeleteRole deletes a role.
func (n *SecurityClient) DeleteRole(ctx context.Context, role string, opts ...CallOption) (*core.Response, error) {
	return n.delete(ctx, secRoles, "role", role, opts)
}

// CreateRole creates or replaces a role.
func (n *SecurityClient) CreateRole(ctx context.Context, role string, body any, opts ...CallOption) (*core.Response, error) {
	return n.create(ctx, secRoles, "role", role, body, opts)
}

// PatchRole applies a JSON patch to one role.
func (n *SecurityClient) PatchRole(ctx context.Context, role string, body any, opts ...CallOption) (*core.Response, error) {
	return n.patch(ctx, secRoles, "role", role, body, opts)
}

// PatchRoles applies a JSON patch across roles.
func (n *SecurityClient) PatchRoles(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secRoles.patchAll, nil, body, opts)
}

// Role mappings

// GetRoleMapping returns the mapping for one role.
func (n *SecurityClient) GetRoleMapping(ctx context.Context, role string, opts ...CallOption) (*core.Response, error) {
	return n.get(ctx, secRoleMappings, "role", role, opts)
}

// GetRoleMappings returns all role mappings.
func (n *SecurityClient) GetRoleMappings(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secRoleMappings.list, nil, nil, opts)
}

// DeleteRoleMapping deletes the mapping for a role.
func (n *SecurityClient) DeleteRoleMapping(ctx context.Context, role string, opts ...CallOption) (*core.Response, error) {
	return n.delete(ctx, secRoleMappings, "role", role, opts)
}

// CreateRoleMapping creates or replaces the mapping for a role.
func (n *SecurityClient) CreateRoleMapping(ctx context.Context, role string, body any, opts ...CallOption) (*core.Response, error) {
	return n.create(ctx, secRoleMappings, "role", role, body, opts)
}

// PatchRoleMapping applies a JSON patch to the mapping for a role.
func (n *SecurityClient) PatchRoleMapping(ctx context.Context, role string, body any, opts ...CallOption) (*core.Response, error) {
	return n.patch(ctx, secRoleMappings, "role", role, body, opts)
}

// PatchRoleMappings applies a JSON patch across role mappings.
func (n *SecurityClient) PatchRoleMappings(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secRoleMappings.patchAll, nil, body, opts)
}

// Tenants

// GetTenant returns one tenant.
func (n *SecurityClient) GetTenant(ctx context.Context, tenant string, opts ...CallOption) (*core.Response, error) {
	return n.get(ctx, secTenants, "tenant", tenant, opts)
}

// GetTenants returns all tenants.
func (n *SecurityClient) GetTenants(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secTenants.list, nil, nil, opts)
}

// DeleteTenant deletes a tenant.
func (n *SecurityClient) DeleteTenant(ctx context.Context, tenant string, opts ...CallOption) (*core.Response, error) {
	return n.delete(ctx, secTenants, "tenant", tenant, opts)
}

// CreateTenant creates or replaces a tenant.
func (n *SecurityClient) CreateTenant(ctx context.Context, tenant string, body any, opts ...CallOption) (*core.Response, error) {
	return n.create(ctx, secTenants, "tenant", tenant, body, opts)
}

// PatchTenant applies a JSON patch to one tenant.
func (n *SecurityClient) PatchTenant(ctx context.Context, tenant string, body any, opts ...CallOption) (*core.Response, error) {
	return n.patch(ctx, secTenants, "tenant", tenant, body, opts)
}

// PatchTenants applies a JSON patch across tenants.
func (n *SecurityClient) PatchTenants(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, secTenants.patchAll, nil, body, opts)
}

// Configuration

// GetConfiguration returns the security configuration.
func (n *SecurityClient) GetConfiguration(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityGetConfiguration, nil, nil, opts)
}

// UpdateConfiguration replaces the security configuration.
func (n *SecurityClient) UpdateConfiguration(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityUpdateConfiguration, nil, body, opts)
}

// PatchConfiguration applies a JSON patch to the security configuration.
func (n *SecurityClient) PatchConfiguration(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityPatchConfiguration, nil, body, opts)
}

// Distinguished names

// GetDistinguishedNames returns the node DNs allowed for a cluster, or for all
// clusters when clusterName is empty.
func (n *SecurityClient) GetDistinguishedNames(ctx context.Context, clusterName string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityGetDistinguishedNames, path{"cluster_name": clusterName}, nil, opts)
}

// UpdateDistinguishedNames replaces the node DNs for a cluster.
func (n *SecurityClient) UpdateDistinguishedNames(ctx context.Context, clusterName string, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityUpdateDistinguishedNames, path{"cluster_name": clusterName}, body, opts)
}

// DeleteDistinguishedNames removes the node DNs for a cluster.
func (n *SecurityClient) DeleteDistinguishedNames(ctx context.Context, clusterName string, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityDeleteDistinguishedNames, path{"cluster_name": clusterName}, nil, opts)
}

// Certificates

// GetCertificates returns the transport and HTTP certificates.
func (n *SecurityClient) GetCertificates(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityGetCertificates, nil, nil, opts)
}

// ReloadTransportCertificates reloads the transport-layer certificates.
func (n *SecurityClient) ReloadTransportCertificates(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityReloadTransportCertificates, nil, nil, opts)
}

// ReloadHTTPCertificates reloads the HTTP-layer certificates.
func (n *SecurityClient) ReloadHTTPCertificates(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityReloadHTTPCertificates, nil, nil, opts)
}

// FlushCache flushes the security plugin's user, authentication and authorization caches.
func (n *SecurityClient) FlushCache(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityFlushCache, nil, nil, opts)
}

// Health returns the security plugin health.
func (n *SecurityClient) Health(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityHealth, nil, nil, opts)
}

// Audit

// GetAuditConfiguration returns the audit logging configuration.
func (n *SecurityClient) GetAuditConfiguration(ctx context.Context, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityGetAuditConfiguration, nil, nil, opts)
}

// UpdateAuditConfiguration replaces the audit logging configuration.
func (n *SecurityClient) UpdateAuditConfiguration(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityUpdateAuditConfiguration, nil, body, opts)
}

// PatchAuditConfiguration applies a JSON patch to the audit logging configuration.
func (n *SecurityClient) PatchAuditConfiguration(ctx context.Context, body any, opts ...CallOption) (*core.Response, error) {
	return n.c.perform(ctx, opSecurityPatchAuditConfiguration, nil, body, opts)
}
