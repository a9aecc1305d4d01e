package selector

import "strings"

// isSelectedNode is the `is_selected_node` predicate of spec.md §4.2:
// hierarchical dotted matching with globs and versioned-model special
// casing.
func isSelectedNode(fqn []string, nodeSelector string, isVersioned bool) bool {
	if isVersioned {
		if len(fqn) >= 2 && fqn[len(fqn)-2] == nodeSelector {
			return true
		}
		flatSelector := strings.Split(nodeSelector, ".")
		if a, aok := joinLastTwo(fqn, "_"); aok {
			if b, bok := joinLastTwo(flatSelector, "_"); bok && a == b {
				return true
			}
		}
	} else if len(fqn) >= 1 && fqn[len(fqn)-1] == nodeSelector {
		return true
	}

	flatFqn := flattenDots(fqn)
	selectorParts := strings.Split(nodeSelector, ".")
	if len(flatFqn) < len(selectorParts) {
		return false
	}

	slurpFromIx := -1
	for i, part := range selectorParts {
		if hasWildcard(part) {
			slurpFromIx = i
			break
		} else if flatFqn[i] == part {
			continue
		} else {
			return false
		}
	}

	if slurpFromIx >= 0 {
		return fnmatchCompatible(
			strings.Join(flatFqn[slurpFromIx:], "."),
			strings.Join(selectorParts[slurpFromIx:], "."),
		)
	}

	return true
}

// flattenDots splits every fqn segment on "." and concatenates the
// results: "Dots in model names act as namespace separators" (spec.md
// §4.2 step 3).
func flattenDots(fqn []string) []string {
	var out []string
	for _, segment := range fqn {
		out = append(out, strings.Split(segment, ".")...)
	}
	return out
}

func hasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?[]")
}

// joinLastTwo joins the last two elements of parts with sep. ok is false
// if parts has fewer than two elements.
func joinLastTwo(parts []string, sep string) (joined string, ok bool) {
	if len(parts) < 2 {
		return "", false
	}
	return parts[len(parts)-2] + sep + parts[len(parts)-1], true
}

// nodeIsMatch implements QualifiedNameSelectorMethod.node_is_match
// (spec.md §4.2): tries the full fqn, then the package-stripped fqn, to
// permit cross-package matching.
func nodeIsMatch(qualifiedName string, fqn []string, isVersioned bool) bool {
	if isSelectedNode(fqn, qualifiedName, isVersioned) {
		return true
	}
	if len(fqn) > 1 {
		if isSelectedNode(fqn[1:], qualifiedName, isVersioned) {
			return true
		}
	}
	return false
}
