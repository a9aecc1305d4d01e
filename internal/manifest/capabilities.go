package manifest

// Capability interfaces a node variant may optionally implement. Absence of
// a capability is never an error: the state differ (spec.md §4.9, §6, §9)
// treats a node lacking a predicate as "never matches" for that
// sub-selector, exactly as spec.md §7 prescribes for any probed attribute
// a candidate doesn't have.

// SameContentser is implemented by node kinds whose content-equality check
// does not depend on the adapter/warehouse type: Source, Exposure, Metric,
// SemanticModel, UnitTest, SavedQuery.
type SameContentser interface {
	SameContents(old Node) bool
}

// SameContentsAdapterer is implemented by node kinds whose content-equality
// check is adapter-specific: Model and the two test kinds.
type SameContentsAdapterer interface {
	SameContentsAdapter(old Node, adapterType string) bool
}

// SameBodyer backs state:modified.body.
type SameBodyer interface {
	SameBody(old Node) bool
}

// SameConfiger backs state:modified.configs.
type SameConfiger interface {
	SameConfig(old Node) bool
}

// SamePersistedDescriber backs state:modified.persisted_descriptions.
type SamePersistedDescriber interface {
	SamePersistedDescription(old Node) bool
}

// SameRelationer backs state:modified.relation.
type SameRelationer interface {
	SameDatabaseRepresentation(old Node) bool
}

// SameContracter backs state:modified.contract.
type SameContracter interface {
	SameContract(old Node, adapterType string) bool
}

// SameContractRemover is consulted when a contracted node disappears
// between manifests (spec.md §4.9, "removed-node pass").
type SameContractRemover interface {
	SameContractRemoved() bool
}

// HasPatchPath is implemented by Model, the only variant carrying an
// optional `package://rel/path.yml` patch path (spec.md §4.5).
type HasPatchPath interface {
	GetPatchPath() *string
}

// HasTestMetadata is implemented by GenericTest (spec.md §4.7).
type HasTestMetadata interface {
	GetTestMetadataName() string
}
