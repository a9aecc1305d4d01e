package state

import (
	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
	"github.com/nodeselect/selectcore/internal/selector"
)

// SourceStatusMethod implements `source_status:fresher` (spec.md §4.10):
// over current-state sources, match if the id is absent from previous-state
// sources or its max_loaded_at strictly increased. Runtime-error freshness
// results are excluded on either side.
type SourceStatusMethod struct {
	Manifest  *manifest.Manifest
	Previous  *manifest.PreviousState
	Arguments []string
}

func NewSourceStatusMethod(m *manifest.Manifest, prev *manifest.PreviousState, args []string) *SourceStatusMethod {
	return &SourceStatusMethod{Manifest: m, Previous: prev, Arguments: args}
}

func (f *SourceStatusMethod) Search(included selector.IdSet, sel string) ([]manifest.UniqueId, error) {
	if sel != "fresher" {
		return nil, selecterr.NewUserError(string(selector.MethodSourceStatus), sel, "not a known source_status selector")
	}
	if f.Previous == nil || f.Previous.SourcesCurrent == nil || f.Previous.SourcesPrevious == nil {
		return nil, selecterr.NewInternalError("source_status: selector used without previous freshness records")
	}

	previous := make(map[manifest.UniqueId]manifest.FreshnessResult, len(f.Previous.SourcesPrevious))
	for _, r := range f.Previous.SourcesPrevious {
		previous[r.UniqueId] = r
	}

	var out []manifest.UniqueId
	for _, cur := range f.Previous.SourcesCurrent {
		if cur.RuntimeError || !included.Contains(cur.UniqueId) {
			continue
		}
		prev, hadPrev := previous[cur.UniqueId]
		if !hadPrev {
			out = append(out, cur.UniqueId)
			continue
		}
		if prev.RuntimeError {
			continue
		}
		if cur.MaxLoadedAt != nil && prev.MaxLoadedAt != nil && cur.MaxLoadedAt.After(*prev.MaxLoadedAt) {
			out = append(out, cur.UniqueId)
		}
	}
	return out, nil
}
