package selector

import (
	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
)

// TestNameMethod implements MethodTestName (spec.md §4.7): for Test nodes,
// matches the generic test's metadata name; for UnitTest nodes, matches
// the node's own name.
type TestNameMethod struct{ Base }

func NewTestNameMethod(m *manifest.Manifest, args []string) *TestNameMethod {
	return &TestNameMethod{Base{Manifest: m, Arguments: args}}
}

func (t *TestNameMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range ParsedAndUnitNodes(t.Manifest, included) {
		switch v := node.(type) {
		case manifest.GenericTest:
			if fnmatchCompatible(v.GetTestMetadataName(), selector) {
				out = append(out, v.UniqueID())
			}
		case manifest.UnitTest:
			if fnmatchCompatible(v.Name(), selector) {
				out = append(out, v.UniqueID())
			}
		}
	}
	return out, nil
}

// testKind names the test_type alias buckets of spec.md §4.7.
type testKind int

const (
	testKindGeneric testKind = iota
	testKindSingular
	testKindUnit
)

// testTypeAliases resolves the test_type selector's literal alias set.
// "data" is resolved by literal string equality to "data" (spec.md §9:
// the source's `in ("data")` is accidental substring membership, not a
// tuple test — not replicated here).
func testTypeAliases(selector string) (map[testKind]bool, bool) {
	switch {
	case selector == "generic" || selector == "schema":
		return map[testKind]bool{testKindGeneric: true}, true
	case selector == "data":
		return map[testKind]bool{testKindGeneric: true, testKindSingular: true}, true
	case selector == "singular":
		return map[testKind]bool{testKindSingular: true}, true
	case selector == "unit":
		return map[testKind]bool{testKindUnit: true}, true
	default:
		return nil, false
	}
}

// TestTypeMethod implements MethodTestType (spec.md §4.7).
type TestTypeMethod struct{ Base }

func NewTestTypeMethod(m *manifest.Manifest, args []string) *TestTypeMethod {
	return &TestTypeMethod{Base{Manifest: m, Arguments: args}}
}

func (t *TestTypeMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	kinds, ok := testTypeAliases(selector)
	if !ok {
		return nil, selecterr.NewUserError(string(MethodTestType), selector,
			"not a known test type")
	}

	var out []manifest.UniqueId
	for _, node := range ParsedAndUnitNodes(t.Manifest, included) {
		switch v := node.(type) {
		case manifest.GenericTest:
			if kinds[testKindGeneric] {
				out = append(out, v.UniqueID())
			}
		case manifest.SingularTest:
			if kinds[testKindSingular] {
				out = append(out, v.UniqueID())
			}
		case manifest.UnitTest:
			if kinds[testKindUnit] {
				out = append(out, v.UniqueID())
			}
		}
	}
	return out, nil
}
