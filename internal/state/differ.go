// Package state implements the previous-run-aware selector methods
// (spec.md §4.9–§4.10): state:, result:, and source_status:. These are
// split out from internal/selector because they need a second input,
// PreviousState, that the other eighteen methods never touch.
package state

import (
	"github.com/pyr-sh/dag"

	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
	"github.com/nodeselect/selectcore/internal/selector"
)

// StateMethod implements MethodState (spec.md §4.9). It memoizes the
// modified-macro set and the macro dependency graph on first query, exactly
// the mutable-but-not-shared-across-instances scoping spec.md §5 describes.
type StateMethod struct {
	Manifest  *manifest.Manifest
	Previous  *manifest.PreviousState
	Arguments []string

	graphBuilt    bool
	macroGraph    *dag.AcyclicGraph
	modifiedMacro map[manifest.UniqueId]bool
}

func NewStateMethod(m *manifest.Manifest, prev *manifest.PreviousState, args []string) *StateMethod {
	return &StateMethod{Manifest: m, Previous: prev, Arguments: args}
}

// Search walks the candidates in the manifest's own all_nodes order
// (spec.md §4.1, §8's determinism property) rather than ranging the
// included set directly — IdSet is backed by deckarep/golang-set's
// native-map set, whose Iter() order is randomized.
func (s *StateMethod) Search(included selector.IdSet, sel string) ([]manifest.UniqueId, error) {
	if s.Previous == nil || s.Previous.Manifest == nil {
		return nil, selecterr.NewInternalError("state: selector used without a previous manifest")
	}

	check, err := s.subSelectorFunc(sel)
	if err != nil {
		return nil, err
	}

	var out []manifest.UniqueId
	for _, node := range selector.AllNodes(s.Manifest, included) {
		id := node.UniqueID()
		old, hadOld := s.Previous.Manifest.LookupNode(id)
		var oldNode manifest.Node
		if hadOld {
			oldNode = old
		}
		if check(oldNode, hadOld, node) {
			out = append(out, id)
		}
	}

	switch sel {
	case "modified", "unmodified", "modified.contract":
		s.runRemovedNodePass(check)
	}

	return out, nil
}

// subSelectorFunc resolves a state: sub-selector into a (old, hadOld, new)
// -> bool predicate (spec.md §4.9's bulleted semantics table).
func (s *StateMethod) subSelectorFunc(sel string) (func(old manifest.Node, hadOld bool, new manifest.Node) bool, error) {
	switch sel {
	case "new":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool { return !hadOld }, nil
	case "old":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool { return hadOld }, nil
	case "modified":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			return s.isModified(old, hadOld, new)
		}, nil
	case "unmodified":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			return !s.isModified(old, hadOld, new)
		}, nil
	case "modified.body":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			_, ok := new.(manifest.SameBodyer)
			return ok && (!hadOld || !sameBody(new, old))
		}, nil
	case "modified.configs":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			_, ok := new.(manifest.SameConfiger)
			return ok && (!hadOld || !sameConfig(new, old))
		}, nil
	case "modified.persisted_descriptions":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			_, ok := new.(manifest.SamePersistedDescriber)
			return ok && (!hadOld || !samePersistedDescription(new, old))
		}, nil
	case "modified.relation":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			_, ok := new.(manifest.SameRelationer)
			return ok && (!hadOld || !sameDatabaseRepresentation(new, old))
		}, nil
	case "modified.macros":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			return s.upstreamMacroChanged(new)
		}, nil
	case "modified.contract":
		return func(old manifest.Node, hadOld bool, new manifest.Node) bool {
			if !hadOld {
				return false
			}
			oldModel, ok := old.(manifest.Model)
			if !ok {
				return false
			}
			newModel, ok := new.(manifest.Model)
			if !ok {
				return false
			}
			return !newModel.SameContract(oldModel, s.Manifest.AdapterType)
		}, nil
	default:
		return nil, selecterr.NewUserError(string(selector.MethodState), sel, "not a known state selector")
	}
}

// isModified implements spec.md §4.9's `modified` predicate:
// different_contents(old, new) OR upstream_macro_changed(new) OR (old is a
// model AND modified_contract(old, new)).
func (s *StateMethod) isModified(old manifest.Node, hadOld bool, new manifest.Node) bool {
	if !hadOld {
		return true
	}
	if !differentContents(new, old, s.Manifest.AdapterType) {
		if !s.upstreamMacroChanged(new) {
			if oldModel, ok := old.(manifest.Model); ok {
				if newModel, ok := new.(manifest.Model); ok {
					return !newModel.SameContract(oldModel, s.Manifest.AdapterType)
				}
			}
			return false
		}
	}
	return true
}

// differentContents dispatches to the variant-specific same_contents
// predicate (spec.md §6); a node whose variant has no such predicate is
// always considered changed, per "nodes lacking the predicate never
// match" read through the negation in `modified`.
func differentContents(new, old manifest.Node, adapterType string) bool {
	if c, ok := new.(manifest.SameContentsAdapterer); ok {
		return !c.SameContentsAdapter(old, adapterType)
	}
	if c, ok := new.(manifest.SameContentser); ok {
		return !c.SameContents(old)
	}
	return true
}

func sameBody(new, old manifest.Node) bool {
	b, ok := new.(manifest.SameBodyer)
	if !ok {
		return false
	}
	return b.SameBody(old)
}

func sameConfig(new, old manifest.Node) bool {
	c, ok := new.(manifest.SameConfiger)
	if !ok {
		return false
	}
	return c.SameConfig(old)
}

func samePersistedDescription(new, old manifest.Node) bool {
	p, ok := new.(manifest.SamePersistedDescriber)
	if !ok {
		return false
	}
	return p.SamePersistedDescription(old)
}

func sameDatabaseRepresentation(new, old manifest.Node) bool {
	r, ok := new.(manifest.SameRelationer)
	if !ok {
		return false
	}
	return r.SameDatabaseRepresentation(old)
}

// upstreamMacroChanged implements spec.md §4.9's "Upstream macro change":
// transitive reachability from new's direct macro dependencies into the
// memoized modified-macro set, via pyr-sh/dag's cycle-safe traversal
// instead of a hand-rolled visited-set recursion (spec.md §9).
func (s *StateMethod) upstreamMacroChanged(new manifest.Node) bool {
	s.ensureMacroGraph()

	macros := directMacroDeps(new)
	if len(macros) == 0 {
		return false
	}

	for _, start := range macros {
		if s.modifiedMacro[start] {
			return true
		}
		reachable, err := s.macroGraph.Ancestors(start)
		if err != nil {
			continue
		}
		for v := range reachable {
			id, ok := v.(manifest.UniqueId)
			if !ok {
				continue
			}
			if s.modifiedMacro[id] {
				return true
			}
		}
	}
	return false
}

func directMacroDeps(new manifest.Node) []manifest.UniqueId {
	model, ok := new.(manifest.Model)
	if !ok {
		return nil
	}
	return model.DependsOn.Macros
}

// ensureMacroGraph builds the macro dependency graph and the
// modified-macro set once per StateMethod instance.
func (s *StateMethod) ensureMacroGraph() {
	if s.graphBuilt {
		return
	}
	s.graphBuilt = true

	g := &dag.AcyclicGraph{}
	for id := range s.Manifest.Macros {
		g.Add(id)
	}
	for id, macro := range s.Manifest.Macros {
		for _, dep := range macro.DependsOn.Macros {
			g.Add(dep)
			g.Connect(dag.BasicEdge(id, dep))
		}
	}
	s.macroGraph = g

	modified := make(map[manifest.UniqueId]bool)
	oldMacros := map[manifest.UniqueId]manifest.Macro{}
	if s.Previous != nil && s.Previous.Manifest != nil {
		oldMacros = s.Previous.Manifest.Macros
	}
	for id, newMacro := range s.Manifest.Macros {
		oldMacro, ok := oldMacros[id]
		if !ok || oldMacro.MacroSQL != newMacro.MacroSQL {
			modified[id] = true
		}
	}
	for id := range oldMacros {
		if _, ok := s.Manifest.Macros[id]; !ok {
			modified[id] = true
		}
	}
	s.modifiedMacro = modified
}

// runRemovedNodePass implements spec.md §4.9's "Removed-node pass": nodes
// present previously but gone (or disabled) now are run through check
// against (old, nil) so contract predicates can emit their side-band
// diagnostics, but the result is always discarded — removed nodes are
// never yielded.
func (s *StateMethod) runRemovedNodePass(check func(old manifest.Node, hadOld bool, new manifest.Node) bool) {
	if s.Previous == nil || s.Previous.Manifest == nil {
		return
	}
	s.Previous.Manifest.Nodes.Each(func(id manifest.UniqueId, oldNode manifest.Node) bool {
		if s.isRemoved(id) {
			check(oldNode, true, nil)
		}
		return true
	})
}

func (s *StateMethod) isRemoved(id manifest.UniqueId) bool {
	if _, disabled := s.Manifest.Disabled[id]; disabled {
		return true
	}
	_, stillPresent := s.Manifest.Nodes.Get(id)
	return !stillPresent
}
