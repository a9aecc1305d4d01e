package selector

import (
	"strings"

	"github.com/nodeselect/selectcore/internal/manifest"
)

// ConfigMethod implements MethodConfig (spec.md §4.6). arguments encodes a
// dotted path into node.config; resolution descends by mapping indexing at
// each step, since Go config values are always map[string]any rather than
// attribute-bearing objects.
type ConfigMethod struct{ Base }

func NewConfigMethod(m *manifest.Manifest, args []string) *ConfigMethod {
	return &ConfigMethod{Base{Manifest: m, Arguments: args}}
}

func (c *ConfigMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	caseInsensitive := len(c.Arguments) == 1 && c.Arguments[0] == "severity"

	var out []manifest.UniqueId
	for _, node := range ConfigurableNodes(c.Manifest, included) {
		value, ok := descendConfig(node.Config(), c.Arguments)
		if !ok {
			continue
		}
		if configValueMatches(value, selector, caseInsensitive) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// descendConfig walks cfg by successive map-key lookups (spec.md §4.6: "an
// unresolved step causes the candidate to be skipped silently").
func descendConfig(cfg map[string]any, path []string) (any, bool) {
	var cur any = cfg
	for _, step := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[step]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// configValueMatches implements the corrected value-comparison rule of
// spec.md §4.6/§9: "selector equals value, OR selector is true/false
// (case-insensitive) and value is the matching boolean" — the source's
// ambiguous-precedence boolean expression is deliberately not replicated.
func configValueMatches(value any, selector string, caseInsensitive bool) bool {
	selectorIsTrue := strings.EqualFold(selector, "true")
	selectorIsFalse := strings.EqualFold(selector, "false")

	if seq, ok := value.([]any); ok {
		for _, elem := range seq {
			if configScalarEquals(elem, selector, caseInsensitive) {
				return true
			}
			if b, ok := elem.(bool); ok {
				if (selectorIsTrue && b) || (selectorIsFalse && !b) {
					return true
				}
			}
		}
		return false
	}

	if configScalarEquals(value, selector, caseInsensitive) {
		return true
	}
	if b, ok := value.(bool); ok {
		return (selectorIsTrue && b) || (selectorIsFalse && !b)
	}
	return false
}

func configScalarEquals(value any, selector string, caseInsensitive bool) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if caseInsensitive {
		return strings.EqualFold(s, selector)
	}
	return s == selector
}
