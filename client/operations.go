package client

import (
	"net/http"
	"sort"

	"github.com/DrewBradfordXYZ/osclient-go/core"
)

const (
	masterTimeoutParam         = "master_timeout"
	clusterManagerTimeoutParam = "cluster_manager_timeout"
	timeoutParam               = "timeout"
	waitForCompletionParam     = "wait_for_completion"
)

func op(id, method, path string) *core.Operation {
	return core.NewOperation(id, method, path)
}

// Ingest

var opIngestGetPipeline = op("ingest.get_pipeline", http.MethodGet, "/_ingest/pipeline/{id}").
	Accepts(clusterManagerTimeoutParam, masterTimeoutParam)

var opIngestPutPipeline = op("ingest.put_pipeline", http.MethodPut, "/_ingest/pipeline/{id}").
	Accepts(clusterManagerTimeoutParam, masterTimeoutParam, timeoutParam).
	Requires("id", core.BodyArg)

var opIngestDeletePipeline = op("ingest.delete_pipeline", http.MethodDelete, "/_ingest/pipeline/{id}").
	Accepts(clusterManagerTimeoutParam, masterTimeoutParam, timeoutParam).
	Requires("id")

var opIngestSimulate = op("ingest.simulate", http.MethodPost, "/_ingest/pipeline/{id}/_simulate").
	Accepts("verbose").
	Requires(core.BodyArg)

var opIngestProcessorGrok = op("ingest.processor_grok", http.MethodGet, "/_ingest/processor/grok")

// Snapshot

var opSnapshotCreate = op("snapshot.create", http.MethodPut, "/_snapshot/{repository}/{snapshot}").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, waitForCompletionParam).
	Requires("repository", "snapshot")

var opSnapshotDelete = op("snapshot.delete", http.MethodDelete, "/_snapshot/{repository}/{snapshot}").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam).
	Requires("repository", "snapshot")

var opSnapshotGet = op("snapshot.get", http.MethodGet, "/_snapshot/{repository}/{snapshot}").
	Accepts("ignore_unavailable", "include_repository", "index_details", masterTimeoutParam, clusterManagerTimeoutParam, "verbose").
	Requires("repository", "snapshot")

var opSnapshotDeleteRepository = op("snapshot.delete_repository", http.MethodDelete, "/_snapshot/{repository}").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, timeoutParam).
	Requires("repository")

var opSnapshotGetRepository = op("snapshot.get_repository", http.MethodGet, "/_snapshot/{repository}").
	Accepts("local", masterTimeoutParam, clusterManagerTimeoutParam)

var opSnapshotCreateRepository = op("snapshot.create_repository", http.MethodPut, "/_snapshot/{repository}").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, timeoutParam, "verify").
	Requires("repository", core.BodyArg)

var opSnapshotRestore = op("snapshot.restore", http.MethodPost, "/_snapshot/{repository}/{snapshot}/_restore").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, waitForCompletionParam).
	Requires("repository", "snapshot")

var opSnapshotStatus = op("snapshot.status", http.MethodGet, "/_snapshot/{repository}/{snapshot}/_status").
	Accepts("ignore_unavailable", masterTimeoutParam, clusterManagerTimeoutParam)

var opSnapshotVerifyRepository = op("snapshot.verify_repository", http.MethodPost, "/_snapshot/{repository}/_verify").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, timeoutParam).
	Requires("repository")

var opSnapshotCleanupRepository = op("snapshot.cleanup_repository", http.MethodPost, "/_snapshot/{repository}/_cleanup").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam, timeoutParam).
	Requires("repository")

var opSnapshotClone = op("snapshot.clone", http.MethodPut, "/_snapshot/{repository}/{snapshot}/_clone/{target_snapshot}").
	Accepts(masterTimeoutParam, clusterManagerTimeoutParam).
	Requires("repository", "snapshot", "target_snapshot", core.BodyArg)

var opSnapshotRepositoryAnalyze = op("snapshot.repository_analyze", http.MethodPost, "/_snapshot/{repository}/_analyze").
	Accepts("blob_count", "concurrency", "detailed", "early_read_node_count", "max_blob_size",
		"max_total_data_size", "rare_action_probability", "rarely_abort_writes", "read_node_count", "seed", timeoutParam).
	Requires("repository")

// Tasks

var opTasksList = op("tasks.list", http.MethodGet, "/_tasks").
	Accepts("actions", "detailed", "group_by", "nodes", "parent_task_id", timeoutParam, waitForCompletionParam)

var opTasksCancel = op("tasks.cancel", http.MethodPost, "/_tasks/{task_id}/_cancel").
	Accepts("actions", "nodes", "parent_task_id", waitForCompletionParam)

var opTasksGet = op("tasks.get", http.MethodGet, "/_tasks/{task_id}").
	Accepts(timeoutParam, waitForCompletionParam)

// Point in time

var createPitParams = []string{"allow_partial_pit_creation", "expand_wildcards", "keep_alive", "preference", "routing"}

var opCreatePit = op("create_pit", http.MethodPost, "/{index}/_search/point_in_time").
	Accepts(createPitParams...).
	Requires("index")

// opCreatePointInTime is create_pit as reached through the deprecated
// CreatePointInTime, which also forwards ignore_unavailable.
var opCreatePointInTime = op("create_pit", http.MethodPost, "/{index}/_search/point_in_time").
	Accepts(createPitParams...).
	Accepts("ignore_unavailable").
	Requires("index")

var (
	opDeletePit     = op("delete_pit", http.MethodDelete, "/_search/point_in_time")
	opDeleteAllPits = op("delete_all_pits", http.MethodDelete, "/_search/point_in_time/_all")
	opGetAllPits    = op("get_all_pits", http.MethodGet, "/_search/point_in_time/_all")
)

const securityAPI = "/_plugins/_security/api"

// securityResource holds the six operations shared by every named
// security-plugin resource (action groups, users, roles, role mappings, tenants).
type securityResource struct {
	get, list, delete, create, patch, patchAll *core.Operation
}

func newSecurityResource(resource, one, many, arg string) securityResource {
	base := securityAPI + "/" + resource
	named := base + "/{" + arg + "}"
	return securityResource{
		get:      op("security.get_"+one, http.MethodGet, named).Requires(arg),
		list:     op("security.get_"+many, http.MethodGet, base),
		delete:   op("security.delete_"+one, http.MethodDelete, named).Requires(arg),
		create:   op("security.create_"+one, http.MethodPut, named).Requires(arg, core.BodyArg),
		patch:    op("security.patch_"+one, http.MethodPatch, named).Requires(arg, core.BodyArg),
		patchAll: op("security.patch_"+many, http.MethodPatch, base).Requires(core.BodyArg),
	}
}

func (r securityResource) operations() []*core.Operation {
	return []*core.Operation{r.get, r.list, r.delete, r.create, r.patch, r.patchAll}
}

// Security

var (
	secActionGroups = newSecurityResource("actiongroups", "action_group", "action_groups", "action_group")
	secUsers        = newSecurityResource("internalusers", "user", "users", "username")
	secRoles        = newSecurityResource("roles", "role", "roles", "role")
	secRoleMappings = newSecurityResource("rolesmapping", "role_mapping", "role_mappings", "role")
	secTenants      = newSecurityResource("tenants", "tenant", "tenants", "tenant")
)

var opSecurityGetAccountDetails = op("security.get_account_details", http.MethodGet, securityAPI+"/account")

var opSecurityChangePassword = op("security.change_password", http.MethodPut, securityAPI+"/account").
	Requires(core.BodyArg)

var opSecurityGetConfiguration = op("security.get_configuration", http.MethodGet, securityAPI+"/securityconfig")

var opSecurityUpdateConfiguration = op("security.update_configuration", http.MethodPut, securityAPI+"/securityconfig/config").
	Requires(core.BodyArg)

var opSecurityPatchConfiguration = op("security.patch_configuration", http.MethodPatch, securityAPI+"/securityconfig").
	Requires(core.BodyArg)

var opSecurityGetDistinguishedNames = op("security.get_distinguished_names", http.MethodGet, securityAPI+"/nodesdn/{cluster_name}")

var opSecurityUpdateDistinguishedNames = op("security.update_distinguished_names", http.MethodPut, securityAPI+"/nodesdn/{cluster_name}").
	Requires("cluster_name", core.BodyArg)

var opSecurityDeleteDistinguishedNames = op("security.delete_distinguished_names", http.MethodDelete, securityAPI+"/nodesdn/{cluster_name}").
	Requires("cluster_name")

var (
	opSecurityGetCertificates             = op("security.get_certificates", http.MethodGet, securityAPI+"/ssl/certs")
	opSecurityReloadTransportCertificates = op("security.reload_transport_certificates", http.MethodPut, "/_opendistro/_security/api/ssl/transport/reloadcerts")
	opSecurityReloadHTTPCertificates      = op("security.reload_http_certificates", http.MethodPut, "/_opendistro/_security/api/ssl/http/reloadcerts")
	opSecurityFlushCache                  = op("security.flush_cache", http.MethodDelete, securityAPI+"/cache")
	opSecurityHealth                      = op("security.health", http.MethodGet, "/_plugins/_security/health")
	opSecurityGetAuditConfiguration       = op("security.get_audit_configuration", http.MethodGet, "/_opendistro/_security/api/audit")
)

var opSecurityUpdateAuditConfiguration = op("security.update_audit_configuration", http.MethodPut, securityAPI+"/audit/config").
	Requires(core.BodyArg)

var opSecurityPatchAuditConfiguration = op("security.patch_audit_configuration", http.MethodPatch, "/_opendistro/_security/api/audit").
	Requires(core.BodyArg)

var endpoints = func() map[string]*core.Operation {
	all := []*core.Operation{
		opIngestGetPipeline, opIngestPutPipeline, opIngestDeletePipeline, opIngestSimulate, opIngestProcessorGrok,

		opSnapshotCreate, opSnapshotDelete, opSnapshotGet, opSnapshotDeleteRepository, opSnapshotGetRepository,
		opSnapshotCreateRepository, opSnapshotRestore, opSnapshotStatus, opSnapshotVerifyRepository,
		opSnapshotCleanupRepository, opSnapshotClone, opSnapshotRepositoryAnalyze,

		opTasksList, opTasksCancel, opTasksGet,

		opCreatePit, opDeletePit, opDeleteAllPits, opGetAllPits,

		opSecurityGetAccountDetails, opSecurityChangePassword,
		opSecurityGetConfiguration, opSecurityUpdateConfiguration, opSecurityPatchConfiguration,
		opSecurityGetDistinguishedNames, opSecurityUpdateDistinguishedNames, opSecurityDeleteDistinguishedNames,
		opSecurityGetCertificates, opSecurityReloadTransportCertificates, opSecurityReloadHTTPCertificates,
		opSecurityFlushCache, opSecurityHealth,
		opSecurityGetAuditConfiguration, opSecurityUpdateAuditConfiguration, opSecurityPatchAuditConfiguration,
	}
	for _, r := range []securityResource{secActionGroups, secUsers, secRoles, secRoleMappings, secTenants} {
		all = append(all, r.operations()...)
	}

	m := make(map[string]*core.Operation, len(all))
	for _, o := range all {
		m[o.ID] = o
	}
	return m
}()

// Endpoints returns every operation this client can call, sorted by ID.
func Endpoints() []*core.Operation {
	ops := make([]*core.Operation, 0, len(endpoints))
	for _, o := range endpoints {
		ops = append(ops, o)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops
}

// Endpoint looks up an operation by ID, e.g. "snapshot.create".
func Endpoint(id string) (*core.Operation, bool) {
	o, ok := endpoints[id]
	return o, ok
}
