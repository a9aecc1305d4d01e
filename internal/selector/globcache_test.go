package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFnmatchCompatible_ShouldMatchGlobWildcards(t *testing.T) {
	assert.True(t, fnmatchCompatible("orders_nightly", "orders_*"))
	assert.True(t, fnmatchCompatible("orders", "orders"))
	assert.False(t, fnmatchCompatible("orders", "payments*"))
}

func TestFnmatchCompatible_ShouldMatchSingleCharacterWildcard(t *testing.T) {
	assert.True(t, fnmatchCompatible("v1", "v?"))
	assert.False(t, fnmatchCompatible("v12", "v?"))
}

func TestCompileCached_ShouldReturnUsableGlob_OnRepeatedCalls(t *testing.T) {
	g1, err := compileCached("stable_cache_test_*")
	assert.NoError(t, err)
	assert.True(t, g1.Match("stable_cache_test_foo"))

	g2, err := compileCached("stable_cache_test_*")
	assert.NoError(t, err)
	assert.True(t, g2.Match("stable_cache_test_bar"))
}
