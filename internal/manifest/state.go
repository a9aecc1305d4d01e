package manifest

import "time"

// Result is a single node's outcome from a previous invocation (spec.md
// §3), consulted by the result: selector method.
type Result struct {
	UniqueId UniqueId
	Status   string
}

// FreshnessResult is one source's freshness check outcome (spec.md §3,
// §4.10). MaxLoadedAt is nil when the check produced a runtime error
// rather than a timestamp.
type FreshnessResult struct {
	UniqueId     UniqueId
	MaxLoadedAt  *time.Time
	RuntimeError bool
}

// PreviousState bundles everything the state, result, and source_status
// selector methods compare the current Manifest against (spec.md §3).
// A nil PreviousState, or nil fields within it, trigger the internal
// errors spec.md §7 requires for `state:`, `result:`, and
// `source_status:` when previous state wasn't supplied.
type PreviousState struct {
	Manifest *Manifest
	Results  []Result

	// SourcesPrevious is the previous run's stored freshness results;
	// SourcesCurrent is this run's freshly computed ones. source_status:
	// fresher compares the two (spec.md §4.10).
	SourcesPrevious []FreshnessResult
	SourcesCurrent  []FreshnessResult
}
