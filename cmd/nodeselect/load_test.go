package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeselect/selectcore/internal/manifest"
)

const fixtureManifestJSON = `{
  "project_name": "proj",
  "adapter_type": "postgres",
  "models": [
    {
      "unique_id": "model.proj.orders",
      "name": "orders",
      "package_name": "proj",
      "original_file_path": "models/marts/orders.sql",
      "fqn": ["proj", "marts", "orders"],
      "config": {"materialized": "table"},
      "tags": ["nightly"],
      "access": "public"
    }
  ],
  "sources": [
    {
      "unique_id": "source.proj.raw.orders",
      "name": "orders",
      "package_name": "proj",
      "original_file_path": "models/staging/src_raw.yml",
      "fqn": ["proj", "raw", "orders"],
      "config": {},
      "tags": [],
      "source_name": "raw",
      "database": "analytics",
      "schema": "raw",
      "identifier": "orders"
    }
  ],
  "macros": [
    {"unique_id": "macro.proj.cents_to_dollars", "name": "cents_to_dollars", "package_name": "proj", "macro_sql": "{{ x / 100 }}"}
  ]
}`

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifest_ShouldReshapeEveryNodeKindIntoTypedMappings(t *testing.T) {
	path := writeFixture(t, "manifest.json", fixtureManifestJSON)

	m, err := loadManifest(path)
	require.NoError(t, err)

	model, ok := m.Nodes.Get("model.proj.orders")
	require.True(t, ok)
	assert.Equal(t, manifest.ResourceModel, model.ResourceType())
	assert.Equal(t, []string{"proj", "marts", "orders"}, model.FQN())

	src, ok := m.Sources.Get("source.proj.raw.orders")
	require.True(t, ok)
	assert.Equal(t, "raw", src.SourceName)

	_, ok = m.Macros["macro.proj.cents_to_dollars"]
	assert.True(t, ok)
}

func TestLoadPreviousState_ShouldResolveNestedManifestPath(t *testing.T) {
	manifestPath := writeFixture(t, "previous_manifest.json", fixtureManifestJSON)
	stateJSON := `{
  "manifest_path": "` + manifestPath + `",
  "results": [{"unique_id": "model.proj.orders", "status": "success"}],
  "sources_previous": [],
  "sources_current": []
}`
	statePath := writeFixture(t, "state.json", stateJSON)

	prev, err := loadPreviousState(statePath)
	require.NoError(t, err)
	require.NotNil(t, prev.Manifest)
	assert.Len(t, prev.Results, 1)
	assert.Equal(t, manifest.UniqueId("model.proj.orders"), prev.Results[0].UniqueId)
}
