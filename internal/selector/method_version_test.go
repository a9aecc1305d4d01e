package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeselect/selectcore/internal/manifest"
)

func strPtr(s string) *string { return &s }

func versionFixture() *manifest.Manifest {
	m := manifest.New("proj", "postgres")
	m.Nodes.Set("model.proj.orders.v1", manifest.Model{
		Common:          manifest.Common{ID: "model.proj.orders.v1", Resource: manifest.ResourceModel},
		Version:         strPtr("1"),
		LatestVersion:   strPtr("2"),
		IsLatestVersion: false,
	})
	m.Nodes.Set("model.proj.orders.v2", manifest.Model{
		Common:          manifest.Common{ID: "model.proj.orders.v2", Resource: manifest.ResourceModel},
		Version:         strPtr("2"),
		LatestVersion:   strPtr("2"),
		IsLatestVersion: true,
	})
	m.Nodes.Set("model.proj.orders.v3_prerelease", manifest.Model{
		Common:          manifest.Common{ID: "model.proj.orders.v3_prerelease", Resource: manifest.ResourceModel},
		Version:         strPtr("3"),
		LatestVersion:   strPtr("2"),
		IsLatestVersion: false,
	})
	m.Nodes.Set("model.proj.unversioned", manifest.Model{
		Common: manifest.Common{ID: "model.proj.unversioned", Resource: manifest.ResourceModel},
	})
	return m
}

func TestVersionMethod_Latest_ShouldMatchOnlyIsLatestVersionFlag(t *testing.T) {
	m := versionFixture()
	method := NewVersionMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "latest")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders.v2"}, ids)
}

func TestVersionMethod_Old_ShouldMatchVersionLessThanLatest(t *testing.T) {
	m := versionFixture()
	method := NewVersionMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "old")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders.v1"}, ids)
}

func TestVersionMethod_Prerelease_ShouldMatchVersionGreaterThanLatest(t *testing.T) {
	m := versionFixture()
	method := NewVersionMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "prerelease")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders.v3_prerelease"}, ids)
}

func TestVersionMethod_None_ShouldMatchModelsWithoutAVersion(t *testing.T) {
	m := versionFixture()
	method := NewVersionMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "none")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.unversioned"}, ids)
}

func TestVersionMethod_ShouldError_OnUnknownSelector(t *testing.T) {
	m := versionFixture()
	method := NewVersionMethod(m, nil)
	_, err := method.Search(allIncluded(m), "weird")
	assert.Error(t, err)
}

func TestCompareVersions_ShouldOrderNumericSegmentsNumerically_NotLexically(t *testing.T) {
	assert.Equal(t, -1, compareVersions("2", "10"))
	assert.Equal(t, 1, compareVersions("10", "2"))
	assert.Equal(t, 0, compareVersions("2.0", "2.0"))
	assert.Equal(t, -1, compareVersions("2", "2.1"))
}
