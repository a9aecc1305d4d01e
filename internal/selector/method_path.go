package selector

import (
	"path/filepath"
	"strings"

	"github.com/nodeselect/selectcore/internal/manifest"
)

// PathMethod implements MethodPath (spec.md §4.5): expands selector as a
// filesystem glob rooted at ProjectRoot, then matches a node whose
// original_file_path, patch_path, or an ancestor directory of either falls
// in the expanded set.
//
// ProjectRoot is an explicit constructor parameter rather than ambient
// context (spec.md §9's "replace context-variable access with an explicit
// configuration parameter on matcher construction"); cmd/nodeselect
// resolves it from internal/config before building the registry.
type PathMethod struct {
	Base
	ProjectRoot string
}

func NewPathMethod(m *manifest.Manifest, args []string, projectRoot string) *PathMethod {
	return &PathMethod{Base: Base{Manifest: m, Arguments: args}, ProjectRoot: projectRoot}
}

func (p *PathMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	root := p.ProjectRoot
	if root == "" {
		root = "."
	}

	matches, err := filepath.Glob(filepath.Join(root, selector))
	if err != nil {
		return nil, err
	}

	paths := make(map[string]bool, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(root, m)
		if err != nil {
			rel = m
		}
		paths[filepath.ToSlash(rel)] = true
	}

	var out []manifest.UniqueId
	for _, node := range AllNodes(p.Manifest, included) {
		if pathMatches(node.OriginalFilePath(), paths) {
			out = append(out, node.UniqueID())
			continue
		}
		if model, ok := node.(manifest.Model); ok && model.PatchPath != nil {
			stripped := stripPackagePrefix(*model.PatchPath)
			if pathMatches(stripped, paths) {
				out = append(out, node.UniqueID())
			}
		}
	}
	return out, nil
}

// pathMatches reports whether filePath, or any ancestor directory of it,
// appears in paths (spec.md §4.5's third bullet).
func pathMatches(filePath string, paths map[string]bool) bool {
	clean := filepath.ToSlash(filepath.Clean(filePath))
	if paths[clean] {
		return true
	}
	for dir := filepath.ToSlash(filepath.Dir(clean)); dir != "." && dir != "/"; dir = filepath.ToSlash(filepath.Dir(dir)) {
		if paths[dir] {
			return true
		}
	}
	return false
}

// stripPackagePrefix removes the "package://" scheme patch_path carries
// (spec.md §4.5, second bullet).
func stripPackagePrefix(patchPath string) string {
	if idx := strings.Index(patchPath, "://"); idx >= 0 {
		return patchPath[idx+3:]
	}
	return patchPath
}
