package selector

import (
	"path/filepath"
	"strings"

	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
)

// TagMethod implements MethodTag (spec.md §4.3): any tag on the node
// matches selector by fnmatch.
type TagMethod struct{ Base }

func NewTagMethod(m *manifest.Manifest, args []string) *TagMethod {
	return &TagMethod{Base{Manifest: m, Arguments: args}}
}

func (t *TagMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range AllNodes(t.Manifest, included) {
		for _, tag := range node.Tags() {
			if fnmatchCompatible(tag, selector) {
				out = append(out, node.UniqueID())
				break
			}
		}
	}
	return out, nil
}

// GroupMethod implements MethodGroup (spec.md §4.3): node.config['group']
// matches selector by fnmatch, over groupable_nodes.
type GroupMethod struct{ Base }

func NewGroupMethod(m *manifest.Manifest, args []string) *GroupMethod {
	return &GroupMethod{Base{Manifest: m, Arguments: args}}
}

func (g *GroupMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range GroupableNodes(g.Manifest, included) {
		group, ok := node.Config()["group"].(string)
		if ok && group != "" && fnmatchCompatible(group, selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// AccessMethod implements MethodAccess (spec.md §4.3): exact string
// equality with node.access, models only.
type AccessMethod struct{ Base }

func NewAccessMethod(m *manifest.Manifest, args []string) *AccessMethod {
	return &AccessMethod{Base{Manifest: m, Arguments: args}}
}

func (a *AccessMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range ParsedNodes(a.Manifest, included) {
		model, ok := node.(manifest.Model)
		if !ok {
			continue
		}
		if string(model.AccessLevel) == selector {
			out = append(out, model.UniqueID())
		}
	}
	return out, nil
}

// PackageMethod implements MethodPackage (spec.md §4.3): fnmatch against
// node.package_name, with `this` aliasing the current project name.
type PackageMethod struct{ Base }

func NewPackageMethod(m *manifest.Manifest, args []string) *PackageMethod {
	return &PackageMethod{Base{Manifest: m, Arguments: args}}
}

func (p *PackageMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	if selector == "this" && p.Manifest.ProjectName != "" {
		selector = p.Manifest.ProjectName
	}
	var out []manifest.UniqueId
	for _, node := range AllNodes(p.Manifest, included) {
		if fnmatchCompatible(node.PackageName(), selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// FileMethod implements MethodFile (spec.md §4.3): matches basename or
// stem of original_file_path.
type FileMethod struct{ Base }

func NewFileMethod(m *manifest.Manifest, args []string) *FileMethod {
	return &FileMethod{Base{Manifest: m, Arguments: args}}
}

func (f *FileMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	var out []manifest.UniqueId
	for _, node := range AllNodes(f.Manifest, included) {
		base := filepath.Base(node.OriginalFilePath())
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if fnmatchCompatible(base, selector) || fnmatchCompatible(stem, selector) {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}

// ResourceTypeMethod implements MethodResourceType (spec.md §4.3): literal
// enum equality; invalid selectors are a user-facing configuration error.
type ResourceTypeMethod struct{ Base }

func NewResourceTypeMethod(m *manifest.Manifest, args []string) *ResourceTypeMethod {
	return &ResourceTypeMethod{Base{Manifest: m, Arguments: args}}
}

func (r *ResourceTypeMethod) Search(included IdSet, selector string) ([]manifest.UniqueId, error) {
	rt, ok := manifest.ParseResourceType(selector)
	if !ok {
		return nil, selecterr.NewUserError(string(MethodResourceType), selector,
			"not a known resource type")
	}
	var out []manifest.UniqueId
	for _, node := range AllNodes(r.Manifest, included) {
		if node.ResourceType() == rt {
			out = append(out, node.UniqueID())
		}
	}
	return out, nil
}
