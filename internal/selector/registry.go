package selector

import (
	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
)

// Registry is the single entrypoint spec.md §4.11 describes: it maps a
// MethodName to the constructed Method for a given manifest/arguments pair,
// and exposes Search as the one call site the CLI (or any future selector-
// expression evaluator) needs.
//
// State-aware methods (state:, result:, source_status:) are wired in via
// StateFactories, a small indirection that lets internal/selector stay free
// of a direct import on internal/state (which itself imports
// internal/selector for IdSet and MethodName) while still routing through
// one registry.
type Registry struct {
	Manifest    *manifest.Manifest
	ProjectRoot string

	// StateFactories supplies constructors for the three previous-state
	// methods. cmd/nodeselect wires these to internal/state's
	// constructors once a PreviousState is available.
	StateFactories map[MethodName]func(args []string) Method
}

// NewRegistry builds a Registry over every selector method that needs only
// the current manifest. Callers append entries to StateFactories for
// state/result/source_status before calling Search with those names.
func NewRegistry(m *manifest.Manifest, projectRoot string) *Registry {
	return &Registry{
		Manifest:       m,
		ProjectRoot:    projectRoot,
		StateFactories: make(map[MethodName]func(args []string) Method),
	}
}

func (r *Registry) build(name MethodName, args []string) (Method, error) {
	switch name {
	case MethodFQN:
		return NewFQNMethod(r.Manifest, args), nil
	case MethodTag:
		return NewTagMethod(r.Manifest, args), nil
	case MethodGroup:
		return NewGroupMethod(r.Manifest, args), nil
	case MethodAccess:
		return NewAccessMethod(r.Manifest, args), nil
	case MethodSource:
		return NewSourceMethod(r.Manifest, args), nil
	case MethodPath:
		return NewPathMethod(r.Manifest, args, r.ProjectRoot), nil
	case MethodFile:
		return NewFileMethod(r.Manifest, args), nil
	case MethodPackage:
		return NewPackageMethod(r.Manifest, args), nil
	case MethodConfig:
		return NewConfigMethod(r.Manifest, args), nil
	case MethodTestName:
		return NewTestNameMethod(r.Manifest, args), nil
	case MethodTestType:
		return NewTestTypeMethod(r.Manifest, args), nil
	case MethodResourceType:
		return NewResourceTypeMethod(r.Manifest, args), nil
	case MethodExposure:
		return NewExposureMethod(r.Manifest, args), nil
	case MethodMetric:
		return NewMetricMethod(r.Manifest, args), nil
	case MethodSemanticModel:
		return NewSemanticModelMethod(r.Manifest, args), nil
	case MethodSavedQuery:
		return NewSavedQueryMethod(r.Manifest, args), nil
	case MethodUnitTest:
		return NewUnitTestMethod(r.Manifest, args), nil
	case MethodVersion:
		return NewVersionMethod(r.Manifest, args), nil
	case MethodState, MethodResult, MethodSourceStatus:
		factory, ok := r.StateFactories[name]
		if !ok {
			return nil, selecterr.NewInternalError("no previous-state method registered for " + string(name))
		}
		return factory(args), nil
	default:
		return nil, selecterr.NewInternalError("unknown selector method " + string(name))
	}
}

// Search builds the named method and runs it. args is the matcher's
// construction-time arguments (§4.6's config attribute path; the other
// methods ignore it); selector is the per-call match string.
func (r *Registry) Search(name MethodName, args []string, included IdSet, selector string) ([]manifest.UniqueId, error) {
	method, err := r.build(name, args)
	if err != nil {
		return nil, err
	}
	return method.Search(included, selector)
}
