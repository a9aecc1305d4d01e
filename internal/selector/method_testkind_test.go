package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeselect/selectcore/internal/manifest"
)

func TestTestNameMethod_ShouldMatchGenericTestMetadataName(t *testing.T) {
	m := fixtureManifest()
	method := NewTestNameMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "not_null")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"test.proj.not_null_orders_id"}, ids)
}

func TestTestNameMethod_ShouldMatchUnitTestByItsOwnName(t *testing.T) {
	m := fixtureManifest()
	m.UnitTests.Set("unit_test.proj.orders.totals", stubUnitTest("unit_test.proj.orders.totals", "totals"))
	method := NewTestNameMethod(m, nil)
	included := NewIdSet(manifest.UniqueId("unit_test.proj.orders.totals"))
	ids, err := method.Search(included, "totals")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"unit_test.proj.orders.totals"}, ids)
}

func TestTestTypeMethod_ShouldResolveDataAliasByLiteralEquality_NotSubstring(t *testing.T) {
	m := fixtureManifest()
	method := NewTestTypeMethod(m, nil)

	ids, err := method.Search(allIncluded(m), "data")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{
		"test.proj.not_null_orders_id",
		"test.proj.singular_orders_positive",
	}, ids)
}

func TestTestTypeMethod_ShouldResolveGenericAndSchemaAliases_ToGenericOnly(t *testing.T) {
	m := fixtureManifest()
	method := NewTestTypeMethod(m, nil)

	ids, err := method.Search(allIncluded(m), "generic")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"test.proj.not_null_orders_id"}, ids)

	ids, err = method.Search(allIncluded(m), "schema")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"test.proj.not_null_orders_id"}, ids)
}

func TestTestTypeMethod_ShouldError_OnUnknownAlias(t *testing.T) {
	m := fixtureManifest()
	method := NewTestTypeMethod(m, nil)
	_, err := method.Search(allIncluded(m), "nonsense")
	assert.Error(t, err)
}
