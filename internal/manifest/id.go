// Package manifest models the node-selection core's read-only view of a
// parsed project graph: the heterogeneous node variants, the manifest that
// groups them by kind, and the previous-run state used by the state and
// result/source-status selector methods.
package manifest

// UniqueId names a node uniquely across every mapping in a Manifest.
type UniqueId string

func (id UniqueId) String() string { return string(id) }
