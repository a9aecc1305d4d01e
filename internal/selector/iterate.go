package selector

import "github.com/nodeselect/selectcore/internal/manifest"

// Kind-filtered iterators: the intersection of a kind's mapping with the
// included set, in the manifest's insertion order (spec.md §4.1). Each
// returns a plain slice rather than a Go iterator/channel — callers always
// fully consume the result into a set (spec.md §5), so a slice is the
// simplest thing that is still observably ordered.

func filterIncluded[V any](om *manifest.OrderedMap[V], included IdSet) []V {
	var out []V
	om.Each(func(id manifest.UniqueId, v V) bool {
		if included.Contains(id) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// ParsedNodes yields models and tests (spec.md §4.1).
func ParsedNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	return filterIncluded(m.Nodes, included)
}

// SourceNodes yields sources, typed.
func SourceNodes(m *manifest.Manifest, included IdSet) []manifest.Source {
	return filterIncluded(m.Sources, included)
}

// ExposureNodes yields exposures, typed.
func ExposureNodes(m *manifest.Manifest, included IdSet) []manifest.Exposure {
	return filterIncluded(m.Exposures, included)
}

// MetricNodes yields metrics, typed.
func MetricNodes(m *manifest.Manifest, included IdSet) []manifest.Metric {
	return filterIncluded(m.Metrics, included)
}

// SemanticModelNodes yields semantic models, typed.
func SemanticModelNodes(m *manifest.Manifest, included IdSet) []manifest.SemanticModel {
	return filterIncluded(m.SemanticModels, included)
}

// UnitTestNodes yields unit tests, typed.
func UnitTestNodes(m *manifest.Manifest, included IdSet) []manifest.UnitTest {
	return filterIncluded(m.UnitTests, included)
}

// SavedQueryNodes yields saved queries, typed.
func SavedQueryNodes(m *manifest.Manifest, included IdSet) []manifest.SavedQuery {
	return filterIncluded(m.SavedQueries, included)
}

func toNodes[V manifest.Node](vs []V) []manifest.Node {
	out := make([]manifest.Node, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// ParsedAndUnitNodes: parsed + unit_tests (spec.md §4.1).
func ParsedAndUnitNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	out := append([]manifest.Node{}, ParsedNodes(m, included)...)
	out = append(out, toNodes(UnitTestNodes(m, included))...)
	return out
}

// ConfigurableNodes: parsed + sources (spec.md §4.1, §4.6).
func ConfigurableNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	out := append([]manifest.Node{}, ParsedNodes(m, included)...)
	out = append(out, toNodes(SourceNodes(m, included))...)
	return out
}

// GroupableNodes: parsed + metrics (spec.md §4.1).
func GroupableNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	out := append([]manifest.Node{}, ParsedNodes(m, included)...)
	out = append(out, toNodes(MetricNodes(m, included))...)
	return out
}

// NonSourceNodes: parsed + exposures + metrics + unit_tests +
// semantic_models + saved_queries (spec.md §4.1).
func NonSourceNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	out := append([]manifest.Node{}, ParsedNodes(m, included)...)
	out = append(out, toNodes(ExposureNodes(m, included))...)
	out = append(out, toNodes(MetricNodes(m, included))...)
	out = append(out, toNodes(UnitTestNodes(m, included))...)
	out = append(out, toNodes(SemanticModelNodes(m, included))...)
	out = append(out, toNodes(SavedQueryNodes(m, included))...)
	return out
}

// AllNodes: parsed, sources, exposures, metrics, unit_tests,
// semantic_models, saved_queries (spec.md §4.1 — this exact order is
// observable per §8).
func AllNodes(m *manifest.Manifest, included IdSet) []manifest.Node {
	out := append([]manifest.Node{}, ParsedNodes(m, included)...)
	out = append(out, toNodes(SourceNodes(m, included))...)
	out = append(out, toNodes(ExposureNodes(m, included))...)
	out = append(out, toNodes(MetricNodes(m, included))...)
	out = append(out, toNodes(UnitTestNodes(m, included))...)
	out = append(out, toNodes(SemanticModelNodes(m, included))...)
	out = append(out, toNodes(SavedQueryNodes(m, included))...)
	return out
}
