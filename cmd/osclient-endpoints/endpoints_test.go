package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DrewBradfordXYZ/osclient-go/client"
	"github.com/DrewBradfordXYZ/osclient-go/core"
)

const testSpec = `
openapi: 3.0.3
info:
  title: OpenSearch subset
  version: "1"
paths:
  /_tasks:
    get:
      parameters:
        - {name: actions, in: query, schema: {type: string}}
        - {name: detailed, in: query, schema: {type: boolean}}
        - {name: pretty, in: query, schema: {type: boolean}}
      responses:
        "200": {description: ok}
  /_tasks/{task_id}/_cancel:
    post:
      parameters:
        - {name: task_id, in: path, required: true, schema: {type: string}}
        - {name: actions, in: query, schema: {type: string}}
        - {name: nodes, in: query, schema: {type: string}}
        - {name: parent_task_id, in: query, schema: {type: string}}
        - {name: wait_for_completion, in: query, schema: {type: boolean}}
      responses:
        "200": {description: ok}
  /_tasks/_cancel:
    post:
      parameters:
        - {name: actions, in: query, schema: {type: string}}
      responses:
        "200": {description: ok}
`

func loadTestSpec(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData([]byte(testSpec))
	require.NoError(t, err)
	return doc
}

func TestGoMethodName(t *testing.T) {
	tests := map[string]string{
		"snapshot.create_repository":        "Snapshot.CreateRepository",
		"tasks.list":                        "Tasks.List",
		"get_all_pits":                      "GetAllPits",
		"security.reload_http_certificates": "Security.ReloadHTTPCertificates",
		"ingest.processor_grok":             "Ingest.ProcessorGrok",
	}
	for id, want := range tests {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, want, goMethodName(id))
		})
	}
}

func TestPathVariants(t *testing.T) {
	op, ok := client.Endpoint("snapshot.status")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"/_snapshot/{repository}/{snapshot}/_status",
		"/_snapshot/{snapshot}/_status",
		"/_snapshot/{repository}/_status",
		"/_snapshot/_status",
	}, pathVariants(op))

	op, ok = client.Endpoint("snapshot.create")
	require.True(t, ok)
	assert.Equal(t, []string{"/_snapshot/{repository}/{snapshot}"}, pathVariants(op))
}

func TestCheck(t *testing.T) {
	doc := loadTestSpec(t)
	ops := []*core.Operation{
		mustEndpoint(t, "tasks.list"),
		mustEndpoint(t, "tasks.cancel"),
		mustEndpoint(t, "ingest.processor_grok"),
	}

	findings := check(doc, ops)

	byKey := map[string]bool{}
	for _, f := range findings {
		byKey[f.Operation+" "+f.Kind+" "+f.Detail] = true
	}
	assert.True(t, byKey["ingest.processor_grok missing-endpoint GET /_ingest/processor/grok"])
	assert.True(t, byKey["tasks.list unknown-param group_by"])
	assert.True(t, byKey["tasks.list unknown-param timeout"])
	assert.False(t, byKey["tasks.list missing-param pretty"], "universal params are not findings")
	for k := range byKey {
		assert.False(t, strings.HasPrefix(k, "tasks.cancel"), "unexpected finding %s", k)
	}
}

func TestRunCheck_Strict(t *testing.T) {
	doc := loadTestSpec(t)
	ops := []*core.Operation{mustEndpoint(t, "ingest.processor_grok")}

	var out bytes.Buffer
	assert.NoError(t, runCheck(&out, doc, ops, false))
	assert.Contains(t, out.String(), "1 endpoints checked, 1 findings")

	out.Reset()
	assert.ErrorIs(t, runCheck(&out, doc, ops, true), errDrift)
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSpec), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--spec", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "missing-endpoint")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check"})
	assert.Error(t, cmd.Execute())
}

func TestListCommand(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runList(&out, "yaml", "tasks"))

		var entries []entry
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &entries))
		require.Len(t, entries, 3)
		assert.Equal(t, "tasks.cancel", entries[0].ID)
		assert.Equal(t, "Tasks.Cancel", entries[0].GoMethod)
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runList(&out, "json", ""))

		var entries []entry
		require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
		assert.Len(t, entries, len(client.Endpoints()))
	})

	t.Run("table", func(t *testing.T) {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"list", "-n", "ingest"})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "ingest.put_pipeline")
		assert.Contains(t, out.String(), "/_ingest/pipeline/{id}")
		assert.NotContains(t, out.String(), "snapshot.")
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, runList(&bytes.Buffer{}, "xml", ""))
	})
}

func mustEndpoint(t *testing.T, id string) *core.Operation {
	t.Helper()
	op, ok := client.Endpoint(id)
	require.True(t, ok, id)
	return op
}
