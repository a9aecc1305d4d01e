// Package selector implements the selection-method layer (spec.md §2.3–§2.7,
// §4.1–§4.8, §4.11): the node iterators, the fqn matcher, one matcher per
// dimension, and the method registry. The state, result, and source_status
// methods (which need previous-run data, spec.md §4.9–§4.10) live in the
// sibling internal/state package and are wired into the same registry.
package selector

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/nodeselect/selectcore/internal/manifest"
)

// MethodName is the stable vocabulary of selection dimensions spec.md §1
// enumerates.
type MethodName string

const (
	MethodFQN           MethodName = "fqn"
	MethodTag           MethodName = "tag"
	MethodGroup         MethodName = "group"
	MethodAccess        MethodName = "access"
	MethodSource        MethodName = "source"
	MethodPath          MethodName = "path"
	MethodFile          MethodName = "file"
	MethodPackage       MethodName = "package"
	MethodConfig        MethodName = "config"
	MethodTestName      MethodName = "test_name"
	MethodTestType      MethodName = "test_type"
	MethodResourceType  MethodName = "resource_type"
	MethodState         MethodName = "state"
	MethodExposure      MethodName = "exposure"
	MethodMetric        MethodName = "metric"
	MethodResult        MethodName = "result"
	MethodSourceStatus  MethodName = "source_status"
	MethodVersion       MethodName = "version"
	MethodSemanticModel MethodName = "semantic_model"
	MethodSavedQuery    MethodName = "saved_query"
	MethodUnitTest      MethodName = "unit_test"
)

// IdSet is the set type threaded through every matcher: the candidate
// `included` set on the way in, the matched set on the way out. Backed by
// deckarep/golang-set rather than a bare map (SPEC_FULL.md §3).
type IdSet = mapset.Set[manifest.UniqueId]

// NewIdSet returns an empty IdSet.
func NewIdSet(ids ...manifest.UniqueId) IdSet {
	return mapset.NewSet(ids...)
}

// Method is implemented by every selection dimension matcher (spec.md
// §2.5–§2.8). Search never mutates included and never retains it or any
// node reference beyond the call (spec.md §3, "SelectorTarget lifetimes").
type Method interface {
	Search(included IdSet, selector string) ([]manifest.UniqueId, error)
}

// Base carries the manifest and arguments every concrete matcher needs,
// plus the shared kind iterators of spec.md §4.1.
type Base struct {
	Manifest  *manifest.Manifest
	Arguments []string
}
