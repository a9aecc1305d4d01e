package manifest

// Manifest is the read-only view of a parsed project graph the selection
// core consumes (spec.md §3). Manifest construction and parsing are out of
// scope (spec.md §1) — callers build a Manifest however they like (the
// demo CLI in cmd/nodeselect builds one from JSON fixtures) and hand it to
// the selector/state packages.
type Manifest struct {
	ProjectName string
	AdapterType string

	Nodes          *OrderedMap[Node] // models, generic/singular tests
	Sources        *OrderedMap[Source]
	Exposures      *OrderedMap[Exposure]
	Metrics        *OrderedMap[Metric]
	SemanticModels *OrderedMap[SemanticModel]
	UnitTests      *OrderedMap[UnitTest]
	SavedQueries   *OrderedMap[SavedQuery]
	Macros         map[UniqueId]Macro

	// Disabled maps an id to the shells of every disabled instance parsed
	// for it; the state differ's removed-node pass consults only the
	// first (spec.md §4.9).
	Disabled map[UniqueId][]Node
}

// LookupNode finds a node by id across every mapping, synthesizing a Node
// from whichever kind-specific mapping holds it (spec.md §4.9,
// "Previous-node lookup"). The original implementation calls this
// synthesis `from_resource`; here every kind-specific struct already
// implements Node directly, so "synthesis" is simply returning it through
// the Node interface.
func (m *Manifest) LookupNode(id UniqueId) (Node, bool) {
	if n, ok := m.Nodes.Get(id); ok {
		return n, true
	}
	if n, ok := m.Sources.Get(id); ok {
		return n, true
	}
	if n, ok := m.Exposures.Get(id); ok {
		return n, true
	}
	if n, ok := m.Metrics.Get(id); ok {
		return n, true
	}
	if n, ok := m.SemanticModels.Get(id); ok {
		return n, true
	}
	if n, ok := m.UnitTests.Get(id); ok {
		return n, true
	}
	if n, ok := m.SavedQueries.Get(id); ok {
		return n, true
	}
	return nil, false
}

// New returns an empty Manifest ready to be populated.
func New(projectName, adapterType string) *Manifest {
	return &Manifest{
		ProjectName:    projectName,
		AdapterType:    adapterType,
		Nodes:          NewOrderedMap[Node](),
		Sources:        NewOrderedMap[Source](),
		Exposures:      NewOrderedMap[Exposure](),
		Metrics:        NewOrderedMap[Metric](),
		SemanticModels: NewOrderedMap[SemanticModel](),
		UnitTests:      NewOrderedMap[UnitTest](),
		SavedQueries:   NewOrderedMap[SavedQuery](),
		Macros:         make(map[UniqueId]Macro),
		Disabled:       make(map[UniqueId][]Node),
	}
}
