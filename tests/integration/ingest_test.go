package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/osclient-go"
)

func TestIngest(t *testing.T) {
	skipIfNoCluster(t)
	ctx := context.Background()
	tc := getTestContext(t)

	t.Run("get pipeline by id", func(t *testing.T) {
		resp, err := testClient.Ingest.GetPipeline(ctx, tc.Pipeline)
		require.NoError(t, err)
		assert.Contains(t, decode(t, resp), tc.Pipeline)
	})

	t.Run("get all pipelines", func(t *testing.T) {
		resp, err := testClient.Ingest.GetPipeline(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, decode(t, resp), tc.Pipeline)
	})

	t.Run("simulate stored pipeline", func(t *testing.T) {
		resp, err := testClient.Ingest.Simulate(ctx, tc.Pipeline, map[string]any{
			"docs": []any{map[string]any{"_source": map[string]any{"msg": "hello"}}},
		})
		require.NoError(t, err)

		docs, ok := decode(t, resp)["docs"].([]any)
		require.True(t, ok)
		require.Len(t, docs, 1)
		source := docs[0].(map[string]any)["doc"].(map[string]any)["_source"].(map[string]any)
		assert.Equal(t, true, source["tagged"])
	})

	t.Run("simulate inline pipeline", func(t *testing.T) {
		resp, err := testClient.Ingest.Simulate(ctx, "", map[string]any{
			"pipeline": map[string]any{"processors": []any{
				map[string]any{"uppercase": map[string]any{"field": "msg"}},
			}},
			"docs": []any{map[string]any{"_source": map[string]any{"msg": "hello"}}},
		}, osclient.Param("verbose", true))
		require.NoError(t, err)
		assert.Contains(t, decode(t, resp), "docs")
	})

	t.Run("grok patterns", func(t *testing.T) {
		resp, err := testClient.Ingest.ProcessorGrok(ctx)
		require.NoError(t, err)
		assert.Contains(t, decode(t, resp), "patterns")
	})
}
