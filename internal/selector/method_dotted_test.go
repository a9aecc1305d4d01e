package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeselect/selectcore/internal/manifest"
)

func idStrings(ids []manifest.UniqueId) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func stubUnitTest(id, name string) manifest.UnitTest {
	return manifest.UnitTest{Common: manifest.Common{
		ID: manifest.UniqueId(id), NodeName: name, Resource: manifest.ResourceUnitTest,
	}}
}

func TestSourceMethod_ShouldMatch_OnSourceNameOnly_WhenSelectorHasOnePart(t *testing.T) {
	m := fixtureManifest()
	method := NewSourceMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "raw")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"source.proj.raw.orders"}, idStrings(ids))
}

func TestSourceMethod_ShouldMatchSourceAndTable_WhenSelectorHasTwoParts(t *testing.T) {
	m := fixtureManifest()
	method := NewSourceMethod(m, nil)
	ids, err := method.Search(allIncluded(m), "raw.orders")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"source.proj.raw.orders"}, idStrings(ids))

	ids, err = method.Search(allIncluded(m), "raw.payments")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUnitTestMethod_ShouldMatch_OnTrailingNamePart(t *testing.T) {
	m := fixtureManifest()
	m.UnitTests.Set("unit_test.proj.orders.test_totals_positive",
		stubUnitTest("unit_test.proj.orders.test_totals_positive", "test_totals_positive"))
	method := NewUnitTestMethod(m, nil)

	included := NewIdSet(manifest.UniqueId("unit_test.proj.orders.test_totals_positive"))
	ids, err := method.Search(included, "orders.test_totals_positive")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"unit_test.proj.orders.test_totals_positive"}, idStrings(ids))
}
