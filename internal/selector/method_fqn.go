package selector

import "github.com/nodeselect/selectcore/internal/manifest"

// FQNMethod implements MethodFQN (spec.md §4.2): QualifiedNameSelectorMethod.
type FQNMethod struct{ Base }

func NewFQNMethod(m *manifest.Manifest, args []string) *FQNMethod {
	return &FQNMethod{Base{Manifest: m, Arguments: args}}
}

func (f *FQNMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range NonSourceNodes(f.Manifest, included) {
		isVersioned := false
		if model, ok := node.(manifest.Model); ok {
			isVersioned = model.IsVersioned
		}
		if nodeIsMatch(selector, node.FQN(), isVersioned) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}
