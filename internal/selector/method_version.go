package selector

import (
	"strconv"
	"strings"

	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
)

// VersionMethod implements MethodVersion (spec.md §4.8): latest,
// prerelease, old, none — restricted to models.
type VersionMethod struct{ Base }

func NewVersionMethod(m *manifest.Manifest, args []string) *VersionMethod {
	return &VersionMethod{Base{Manifest: m, Arguments: args}}
}

func (v *VersionMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	switch selector {
	case "latest", "prerelease", "old", "none":
	default:
		return nil, selecterr.NewUserError(string(MethodVersion), selector,
			"not a known version selector")
	}

	var out []manifest.UniqueId
	for _, node := range ParsedNodes(v.Manifest, included) {
		model, ok := node.(manifest.Model)
		if !ok {
			continue
		}
		if versionMatches(model, selector) {
			out = append(out, model.UniqueID())
		}
	}
	return out, nil
}

func versionMatches(m manifest.Model, selector string) bool {
	switch selector {
	case "latest":
		return m.IsLatestVersion
	case "none":
		return m.Version == nil
	case "prerelease":
		return m.Version != nil && m.LatestVersion != nil &&
			compareVersions(*m.Version, *m.LatestVersion) > 0
	case "old":
		return m.Version != nil && m.LatestVersion != nil &&
			compareVersions(*m.Version, *m.LatestVersion) < 0
	default:
		return false
	}
}

// compareVersions orders two version strings numerically segment-by-segment
// (dotted-decimal, e.g. "2" < "2.1" < "10"), falling back to a lexical
// comparison of any non-numeric segment. Versions in this domain are model
// version identifiers, not full semver, so a dedicated semver dependency
// would be the wrong tool; this is the narrow comparator spec.md §4.8's
// "domain version ordering" calls for.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var aPart, bPart string
		if i < len(as) {
			aPart = as[i]
		}
		if i < len(bs) {
			bPart = bs[i]
		}
		if c := compareSegment(aPart, bPart); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
