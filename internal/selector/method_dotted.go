package selector

import (
	"strings"

	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
)

// splitDotted splits a selector into up to maxParts dot-separated pieces.
// The last piece absorbs any remaining dots.
func splitDotted(selector string, maxParts int) []string {
	var parts []string
	start := 0
	for i := 0; i < len(selector) && len(parts) < maxParts-1; i++ {
		if selector[i] == '.' {
			parts = append(parts, selector[start:i])
			start = i + 1
		}
	}
	parts = append(parts, selector[start:])
	return parts
}

// SourceMethod implements MethodSource (spec.md §4.4): `source_name`,
// `source_name.table_name`, or `package_name.source_name.table_name`,
// each part glob-matched; a selector with more than three parts is a
// user error.
type SourceMethod struct{ Base }

func NewSourceMethod(m *manifest.Manifest, args []string) *SourceMethod {
	return &SourceMethod{Base{Manifest: m, Arguments: args}}
}

func (s *SourceMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	parts := strings.Split(selector, ".")
	if len(parts) > 3 {
		return nil, selecterr.NewUserError(string(MethodSource), selector,
			"expected source_name, source_name.table_name, or package_name.source_name.table_name")
	}
	packagePattern, tablePattern := "*", "*"
	if len(parts) == 3 {
		packagePattern, parts = parts[0], parts[1:]
	}
	sourcePattern := parts[0]
	if len(parts) == 2 {
		tablePattern = parts[1]
	}

	var out []manifest.UniqueId
	for _, src := range SourceNodes(s.Manifest, included) {
		if !fnmatchCompatible(src.PackageName(), packagePattern) || !fnmatchCompatible(src.SourceName, sourcePattern) {
			continue
		}
		if !fnmatchCompatible(src.Name(), tablePattern) {
			continue
		}
		out = append(out, src.UniqueID())
	}
	return out, nil
}

// ExposureMethod implements MethodExposure (spec.md §4.4): fnmatch against
// the exposure's name.
type ExposureMethod struct{ Base }

func NewExposureMethod(m *manifest.Manifest, args []string) *ExposureMethod {
	return &ExposureMethod{Base{Manifest: m, Arguments: args}}
}

func (e *ExposureMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range ExposureNodes(e.Manifest, included) {
		if fnmatchCompatible(node.Name(), selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// MetricMethod implements MethodMetric (spec.md §4.4): fnmatch against the
// metric's name.
type MetricMethod struct{ Base }

func NewMetricMethod(m *manifest.Manifest, args []string) *MetricMethod {
	return &MetricMethod{Base{Manifest: m, Arguments: args}}
}

func (mm *MetricMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range MetricNodes(mm.Manifest, included) {
		if fnmatchCompatible(node.Name(), selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// SemanticModelMethod implements MethodSemanticModel (spec.md §4.4):
// fnmatch against the semantic model's name.
type SemanticModelMethod struct{ Base }

func NewSemanticModelMethod(m *manifest.Manifest, args []string) *SemanticModelMethod {
	return &SemanticModelMethod{Base{Manifest: m, Arguments: args}}
}

func (s *SemanticModelMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range SemanticModelNodes(s.Manifest, included) {
		if fnmatchCompatible(node.Name(), selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// SavedQueryMethod implements MethodSavedQuery (spec.md §4.4): fnmatch
// against the saved query's name.
type SavedQueryMethod struct{ Base }

func NewSavedQueryMethod(m *manifest.Manifest, args []string) *SavedQueryMethod {
	return &SavedQueryMethod{Base{Manifest: m, Arguments: args}}
}

func (s *SavedQueryMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range SavedQueryNodes(s.Manifest, included) {
		if fnmatchCompatible(node.Name(), selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// UnitTestMethod implements MethodUnitTest (spec.md §4.4): `model_name` or
// `model_name.unit_test_name`, matched against the unit test's own name
// since the Go manifest does not separately track the tested model.
type UnitTestMethod struct{ Base }

func NewUnitTestMethod(m *manifest.Manifest, args []string) *UnitTestMethod {
	return &UnitTestMethod{Base{Manifest: m, Arguments: args}}
}

func (u *UnitTestMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	parts := splitDotted(selector, 2)
	namePattern := parts[len(parts)-1]
	var out []manifest.UniqueId
	for _, node := range UnitTestNodes(u.Manifest, included) {
		if fnmatchCompatible(node.Name(), namePattern) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}
