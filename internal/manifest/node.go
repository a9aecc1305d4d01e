package manifest

// ResourceType discriminates the node variants a Manifest can hold. It is
// the Go stand-in for the tagged union spec.md §9 calls for in place of the
// original implementation's class hierarchy + isinstance checks.
type ResourceType string

const (
	ResourceModel         ResourceType = "model"
	ResourceSource        ResourceType = "source"
	ResourceTest          ResourceType = "test"
	ResourceUnitTest      ResourceType = "unit_test"
	ResourceExposure      ResourceType = "exposure"
	ResourceMetric        ResourceType = "metric"
	ResourceSemanticModel ResourceType = "semantic_model"
	ResourceSavedQuery    ResourceType = "saved_query"
	ResourceMacro         ResourceType = "macro"
)

// ParseResourceType maps a selector literal to a ResourceType, or reports
// that the literal is not one of the known resource kinds (spec.md §4.3,
// the resource_type matcher: "invalid selectors raise configuration
// error").
func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(s) {
	case ResourceModel, ResourceSource, ResourceTest, ResourceUnitTest,
		ResourceExposure, ResourceMetric, ResourceSemanticModel,
		ResourceSavedQuery, ResourceMacro:
		return ResourceType(s), true
	default:
		return "", false
	}
}

// Access is the visibility level of a model.
type Access string

const (
	AccessPublic    Access = "public"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
)

// Node is implemented by every variant a Manifest can hold. It exposes the
// fields spec.md §3 declares shared across all kinds.
type Node interface {
	UniqueID() UniqueId
	Name() string
	PackageName() string
	OriginalFilePath() string
	ResourceType() ResourceType
	FQN() []string
	Config() map[string]any
	Tags() []string
}

// Common holds the fields every node variant shares (spec.md §3).
type Common struct {
	ID       UniqueId
	NodeName string
	Package  string
	FilePath string
	Resource ResourceType
	Fqn      []string
	Cfg      map[string]any
	TagList  []string
}

func (c Common) UniqueID() UniqueId         { return c.ID }
func (c Common) Name() string               { return c.NodeName }
func (c Common) PackageName() string        { return c.Package }
func (c Common) OriginalFilePath() string   { return c.FilePath }
func (c Common) ResourceType() ResourceType { return c.Resource }
func (c Common) FQN() []string              { return c.Fqn }
func (c Common) Config() map[string]any     { return c.Cfg }
func (c Common) Tags() []string             { return c.TagList }

// DependsOn carries the macro-dependency edges used by the state differ's
// upstream-macro-change check (spec.md §4.9, §9).
type DependsOn struct {
	Macros []UniqueId
}

// Model is a parsed model node (spec.md §3).
type Model struct {
	Common
	AccessLevel     Access
	Version         *string
	LatestVersion   *string
	IsLatestVersion bool
	IsVersioned     bool
	DependsOn       DependsOn
	PatchPath       *string

	// Fields backing the same_* structural-equality predicates (spec.md
	// §6, §9) that the state differ consults. None of these are part of
	// the selector-matching surface of §4 itself.
	RawCode            string
	Database           string
	Schema             string
	Alias              string
	Description        string
	ColumnDescriptions map[string]string
	ContractEnforced   bool
	ContractChecksum   string
}

func (m Model) GetPatchPath() *string { return m.PatchPath }

// Source is a source table definition.
type Source struct {
	Common
	SourceName string
	Database   string
	Schema     string
	Identifier string
}

// GenericTest is a schema test generated from a generic test macro.
type GenericTest struct {
	Common
	TestMetadataName string
	RawCode          string
}

func (t GenericTest) GetTestMetadataName() string { return t.TestMetadataName }

// SingularTest is a one-off SQL test.
type SingularTest struct {
	Common
	RawCode string
}

// UnitTest is a unit test definition, a distinct kind from Test per
// spec.md §3.
type UnitTest struct {
	Common
}

// Exposure, Metric, SemanticModel, SavedQuery carry no fields beyond
// Common that the selection core inspects (spec.md §3).
type Exposure struct{ Common }
type Metric struct{ Common }
type SemanticModel struct{ Common }
type SavedQuery struct{ Common }

// Macro is never yielded by any selector method (it does not appear in any
// §4.1 iterator) but participates in the state differ's macro-dependency
// graph (spec.md §4.9).
type Macro struct {
	ID        UniqueId
	Name      string
	Package   string
	MacroSQL  string
	DependsOn DependsOn
}
