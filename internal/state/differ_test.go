package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selector"
)

func baseManifests() (cur, prev *manifest.Manifest) {
	cur = manifest.New("proj", "postgres")
	prev = manifest.New("proj", "postgres")
	return
}

func TestStateMethod_New_ShouldMatchNodesAbsentFromPreviousManifest(t *testing.T) {
	cur, prev := baseManifests()
	cur.Nodes.Set("model.proj.orders", manifest.Model{Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}})

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))
	ids, err := m.Search(included, "new")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders"}, ids)
}

func TestStateMethod_Old_ShouldMatchNodesPresentInPreviousManifest(t *testing.T) {
	cur, prev := baseManifests()
	cur.Nodes.Set("model.proj.orders", manifest.Model{Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}})
	prev.Nodes.Set("model.proj.orders", manifest.Model{Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}})

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))
	ids, err := m.Search(included, "old")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders"}, ids)
}

func TestStateMethod_Modified_ShouldMatch_WhenRawCodeChanged(t *testing.T) {
	cur, prev := baseManifests()
	cur.Nodes.Set("model.proj.orders", manifest.Model{
		Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}, RawCode: "select 2",
	})
	prev.Nodes.Set("model.proj.orders", manifest.Model{
		Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}, RawCode: "select 1",
	})

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))

	modified, err := m.Search(included, "modified")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders"}, modified)

	unmodified, err := m.Search(included, "unmodified")
	require.NoError(t, err)
	assert.Empty(t, unmodified)
}

func TestStateMethod_Unmodified_ShouldMatch_WhenNothingChanged(t *testing.T) {
	cur, prev := baseManifests()
	node := manifest.Model{Common: manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel}, RawCode: "select 1"}
	cur.Nodes.Set("model.proj.orders", node)
	prev.Nodes.Set("model.proj.orders", node)

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))

	ids, err := m.Search(included, "unmodified")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders"}, ids)
}

func TestStateMethod_ModifiedMacros_ShouldDetectTransitiveMacroChange(t *testing.T) {
	cur, prev := baseManifests()
	cur.Nodes.Set("model.proj.orders", manifest.Model{
		Common:    manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel},
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.wrapper"}},
	})
	cur.Macros["macro.proj.wrapper"] = manifest.Macro{
		ID: "macro.proj.wrapper", MacroSQL: "{{ inner() }}",
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.inner"}},
	}
	cur.Macros["macro.proj.inner"] = manifest.Macro{ID: "macro.proj.inner", MacroSQL: "select 2"}

	prev.Macros["macro.proj.wrapper"] = manifest.Macro{
		ID: "macro.proj.wrapper", MacroSQL: "{{ inner() }}",
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.inner"}},
	}
	prev.Macros["macro.proj.inner"] = manifest.Macro{ID: "macro.proj.inner", MacroSQL: "select 1"}
	prev.Nodes.Set("model.proj.orders", manifest.Model{
		Common:    manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel},
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.wrapper"}},
	})

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))

	ids, err := m.Search(included, "modified.macros")
	require.NoError(t, err)
	assert.ElementsMatch(t, []manifest.UniqueId{"model.proj.orders"}, ids)
}

func TestStateMethod_ModifiedMacros_ShouldTerminate_OnACycle(t *testing.T) {
	cur, prev := baseManifests()
	cur.Nodes.Set("model.proj.orders", manifest.Model{
		Common:    manifest.Common{ID: "model.proj.orders", Resource: manifest.ResourceModel},
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.a"}},
	})
	cur.Macros["macro.proj.a"] = manifest.Macro{ID: "macro.proj.a", MacroSQL: "a",
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.b"}}}
	cur.Macros["macro.proj.b"] = manifest.Macro{ID: "macro.proj.b", MacroSQL: "b",
		DependsOn: manifest.DependsOn{Macros: []manifest.UniqueId{"macro.proj.a"}}}
	prev.Macros["macro.proj.a"] = cur.Macros["macro.proj.a"]
	prev.Macros["macro.proj.b"] = cur.Macros["macro.proj.b"]

	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	included := selector.NewIdSet(manifest.UniqueId("model.proj.orders"))

	ids, err := m.Search(included, "modified.macros")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStateMethod_ShouldReturnInternalError_WhenNoPreviousManifest(t *testing.T) {
	cur, _ := baseManifests()
	m := NewStateMethod(cur, nil, nil)
	_, err := m.Search(selector.NewIdSet(), "new")
	assert.Error(t, err)
}

func TestStateMethod_ShouldError_OnUnknownSubSelector(t *testing.T) {
	cur, prev := baseManifests()
	m := NewStateMethod(cur, &manifest.PreviousState{Manifest: prev}, nil)
	_, err := m.Search(selector.NewIdSet(), "sideways")
	assert.Error(t, err)
}
