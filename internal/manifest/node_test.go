package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResourceType_ShouldAccept_EveryKnownLiteral(t *testing.T) {
	known := []ResourceType{
		ResourceModel, ResourceSource, ResourceTest, ResourceUnitTest,
		ResourceExposure, ResourceMetric, ResourceSemanticModel,
		ResourceSavedQuery, ResourceMacro,
	}
	for _, rt := range known {
		got, ok := ParseResourceType(string(rt))
		assert.True(t, ok, "expected %q to parse", rt)
		assert.Equal(t, rt, got)
	}
}

func TestParseResourceType_ShouldReject_UnknownLiteral(t *testing.T) {
	_, ok := ParseResourceType("view")
	assert.False(t, ok)
}

func TestCommon_AccessorsShouldReflectUnderlyingFields(t *testing.T) {
	c := Common{
		ID: "model.proj.orders", NodeName: "orders", Package: "proj",
		FilePath: "models/orders.sql", Resource: ResourceModel,
		Fqn: []string{"proj", "staging", "orders"},
		Cfg: map[string]any{"materialized": "table"},
		TagList: []string{"nightly"},
	}
	assert.Equal(t, UniqueId("model.proj.orders"), c.UniqueID())
	assert.Equal(t, "orders", c.Name())
	assert.Equal(t, "proj", c.PackageName())
	assert.Equal(t, "models/orders.sql", c.OriginalFilePath())
	assert.Equal(t, ResourceModel, c.ResourceType())
	assert.Equal(t, []string{"proj", "staging", "orders"}, c.FQN())
	assert.Equal(t, "table", c.Config()["materialized"])
	assert.Equal(t, []string{"nightly"}, c.Tags())
}
