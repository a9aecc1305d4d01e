package state

import (
	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
	"github.com/nodeselect/selectcore/internal/selector"
)

// ResultMethod implements `result:<status>` (spec.md §4.10): ids present in
// the previous run's results whose status equals selector exactly.
type ResultMethod struct {
	Manifest  *manifest.Manifest
	Previous  *manifest.PreviousState
	Arguments []string
}

func NewResultMethod(m *manifest.Manifest, prev *manifest.PreviousState, args []string) *ResultMethod {
	return &ResultMethod{Manifest: m, Previous: prev, Arguments: args}
}

// Search walks the candidates in the manifest's own all_nodes order
// (spec.md §4.1, §8's determinism property) rather than ranging the
// included set directly — IdSet is backed by deckarep/golang-set's
// native-map set, whose Iter() order is randomized.
func (r *ResultMethod) Search(included selector.IdSet, sel string) ([]manifest.UniqueId, error) {
	if r.Previous == nil || r.Previous.Results == nil {
		return nil, selecterr.NewInternalError("result: selector used without previous results")
	}

	statusByID := make(map[manifest.UniqueId]string, len(r.Previous.Results))
	for _, res := range r.Previous.Results {
		statusByID[res.UniqueId] = res.Status
	}

	var out []manifest.UniqueId
	for _, node := range selector.AllNodes(r.Manifest, included) {
		if status, ok := statusByID[node.UniqueID()]; ok && status == sel {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}
