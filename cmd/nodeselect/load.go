package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nodeselect/selectcore/internal/manifest"
)

// manifestDoc is the on-disk JSON shape the demo CLI reads a manifest from.
// Real manifest construction is out of scope (spec.md §1); this is a
// minimal fixture format for exercising the selection core end to end,
// parsed the way the teacher's runner.go parses `kubectl -o json` output:
// into a partial struct, then reshaped into the domain types by hand.
type manifestDoc struct {
	ProjectName string `json:"project_name"`
	AdapterType string `json:"adapter_type"`

	Models []struct {
		UniqueID        string            `json:"unique_id"`
		Name            string            `json:"name"`
		Package         string            `json:"package_name"`
		OriginalPath    string            `json:"original_file_path"`
		Fqn             []string          `json:"fqn"`
		Config          map[string]any    `json:"config"`
		Tags            []string          `json:"tags"`
		Access          string            `json:"access"`
		Version         *string           `json:"version"`
		LatestVersion   *string           `json:"latest_version"`
		IsLatestVersion bool              `json:"is_latest_version"`
		IsVersioned     bool              `json:"is_versioned"`
		DependsOnMacros []string          `json:"depends_on_macros"`
		PatchPath       *string           `json:"patch_path"`
		RawCode         string            `json:"raw_code"`
		Database        string            `json:"database"`
		Schema          string            `json:"schema"`
		Alias           string            `json:"alias"`
		Description     string            `json:"description"`
		ColumnDescs     map[string]string `json:"column_descriptions"`
		ContractEnforced bool             `json:"contract_enforced"`
		ContractChecksum string           `json:"contract_checksum"`
	} `json:"models"`

	GenericTests []struct {
		UniqueID         string         `json:"unique_id"`
		Name             string         `json:"name"`
		Package          string         `json:"package_name"`
		OriginalPath     string         `json:"original_file_path"`
		Fqn              []string       `json:"fqn"`
		Config           map[string]any `json:"config"`
		Tags             []string       `json:"tags"`
		TestMetadataName string         `json:"test_metadata_name"`
		RawCode          string         `json:"raw_code"`
	} `json:"generic_tests"`

	SingularTests []struct {
		UniqueID     string         `json:"unique_id"`
		Name         string         `json:"name"`
		Package      string         `json:"package_name"`
		OriginalPath string         `json:"original_file_path"`
		Fqn          []string       `json:"fqn"`
		Config       map[string]any `json:"config"`
		Tags         []string       `json:"tags"`
		RawCode      string         `json:"raw_code"`
	} `json:"singular_tests"`

	UnitTests      []commonDoc `json:"unit_tests"`
	Exposures      []commonDoc `json:"exposures"`
	Metrics        []commonDoc `json:"metrics"`
	SemanticModels []commonDoc `json:"semantic_models"`
	SavedQueries   []commonDoc `json:"saved_queries"`

	Sources []struct {
		UniqueID     string         `json:"unique_id"`
		Name         string         `json:"name"`
		Package      string         `json:"package_name"`
		OriginalPath string         `json:"original_file_path"`
		Fqn          []string       `json:"fqn"`
		Config       map[string]any `json:"config"`
		Tags         []string       `json:"tags"`
		SourceName   string         `json:"source_name"`
		Database     string         `json:"database"`
		Schema       string         `json:"schema"`
		Identifier   string         `json:"identifier"`
	} `json:"sources"`

	Macros []struct {
		UniqueID        string   `json:"unique_id"`
		Name            string   `json:"name"`
		Package         string   `json:"package_name"`
		MacroSQL        string   `json:"macro_sql"`
		DependsOnMacros []string `json:"depends_on_macros"`
	} `json:"macros"`

	Disabled map[string][]string `json:"disabled"`
}

type commonDoc struct {
	UniqueID     string         `json:"unique_id"`
	Name         string         `json:"name"`
	Package      string         `json:"package_name"`
	OriginalPath string         `json:"original_file_path"`
	Fqn          []string       `json:"fqn"`
	Config       map[string]any `json:"config"`
	Tags         []string       `json:"tags"`
}

func (c commonDoc) toCommon(resource manifest.ResourceType) manifest.Common {
	return manifest.Common{
		ID:       manifest.UniqueId(c.UniqueID),
		NodeName: c.Name,
		Package:  c.Package,
		FilePath: c.OriginalPath,
		Resource: resource,
		Fqn:      c.Fqn,
		Cfg:      c.Config,
		TagList:  c.Tags,
	}
}

func macroIDs(ss []string) []manifest.UniqueId {
	out := make([]manifest.UniqueId, len(ss))
	for i, s := range ss {
		out[i] = manifest.UniqueId(s)
	}
	return out
}

// loadManifest reads and reshapes a manifest fixture from path.
func loadManifest(path string) (*manifest.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var doc manifestDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	m := manifest.New(doc.ProjectName, doc.AdapterType)

	for _, md := range doc.Models {
		model := manifest.Model{
			Common: manifest.Common{
				ID:       manifest.UniqueId(md.UniqueID),
				NodeName: md.Name,
				Package:  md.Package,
				FilePath: md.OriginalPath,
				Resource: manifest.ResourceModel,
				Fqn:      md.Fqn,
				Cfg:      md.Config,
				TagList:  md.Tags,
			},
			AccessLevel:        manifest.Access(md.Access),
			Version:            md.Version,
			LatestVersion:      md.LatestVersion,
			IsLatestVersion:    md.IsLatestVersion,
			IsVersioned:        md.IsVersioned,
			DependsOn:          manifest.DependsOn{Macros: macroIDs(md.DependsOnMacros)},
			PatchPath:          md.PatchPath,
			RawCode:            md.RawCode,
			Database:           md.Database,
			Schema:             md.Schema,
			Alias:              md.Alias,
			Description:        md.Description,
			ColumnDescriptions: md.ColumnDescs,
			ContractEnforced:   md.ContractEnforced,
			ContractChecksum:   md.ContractChecksum,
		}
		m.Nodes.Set(model.ID, model)
	}

	for _, td := range doc.GenericTests {
		test := manifest.GenericTest{
			Common: commonDoc{
				UniqueID: td.UniqueID, Name: td.Name, Package: td.Package,
				OriginalPath: td.OriginalPath, Fqn: td.Fqn, Config: td.Config, Tags: td.Tags,
			}.toCommon(manifest.ResourceTest),
			TestMetadataName: td.TestMetadataName,
			RawCode:          td.RawCode,
		}
		m.Nodes.Set(test.ID, test)
	}

	for _, td := range doc.SingularTests {
		test := manifest.SingularTest{
			Common: commonDoc{
				UniqueID: td.UniqueID, Name: td.Name, Package: td.Package,
				OriginalPath: td.OriginalPath, Fqn: td.Fqn, Config: td.Config, Tags: td.Tags,
			}.toCommon(manifest.ResourceTest),
			RawCode: td.RawCode,
		}
		m.Nodes.Set(test.ID, test)
	}

	for _, ud := range doc.UnitTests {
		ut := manifest.UnitTest{Common: ud.toCommon(manifest.ResourceUnitTest)}
		m.UnitTests.Set(ut.ID, ut)
	}
	for _, ed := range doc.Exposures {
		e := manifest.Exposure{Common: ed.toCommon(manifest.ResourceExposure)}
		m.Exposures.Set(e.ID, e)
	}
	for _, md := range doc.Metrics {
		met := manifest.Metric{Common: md.toCommon(manifest.ResourceMetric)}
		m.Metrics.Set(met.ID, met)
	}
	for _, sd := range doc.SemanticModels {
		sm := manifest.SemanticModel{Common: sd.toCommon(manifest.ResourceSemanticModel)}
		m.SemanticModels.Set(sm.ID, sm)
	}
	for _, sd := range doc.SavedQueries {
		sq := manifest.SavedQuery{Common: sd.toCommon(manifest.ResourceSavedQuery)}
		m.SavedQueries.Set(sq.ID, sq)
	}

	for _, sd := range doc.Sources {
		src := manifest.Source{
			Common: commonDoc{
				UniqueID: sd.UniqueID, Name: sd.Name, Package: sd.Package,
				OriginalPath: sd.OriginalPath, Fqn: sd.Fqn, Config: sd.Config, Tags: sd.Tags,
			}.toCommon(manifest.ResourceSource),
			SourceName: sd.SourceName,
			Database:   sd.Database,
			Schema:     sd.Schema,
			Identifier: sd.Identifier,
		}
		m.Sources.Set(src.ID, src)
	}

	for _, md := range doc.Macros {
		m.Macros[manifest.UniqueId(md.UniqueID)] = manifest.Macro{
			ID:        manifest.UniqueId(md.UniqueID),
			Name:      md.Name,
			Package:   md.Package,
			MacroSQL:  md.MacroSQL,
			DependsOn: manifest.DependsOn{Macros: macroIDs(md.DependsOnMacros)},
		}
	}

	for id, shells := range doc.Disabled {
		var disabled []manifest.Node
		for range shells {
			disabled = append(disabled, nil)
		}
		m.Disabled[manifest.UniqueId(id)] = disabled
	}

	return m, nil
}

// stateDoc is the on-disk shape of a previous-state fixture: a previous
// manifest plus run results and freshness records (spec.md §3).
type stateDoc struct {
	ManifestPath string `json:"manifest_path"`
	Results      []struct {
		UniqueID string `json:"unique_id"`
		Status   string `json:"status"`
	} `json:"results"`
	SourcesPrevious []freshnessDoc `json:"sources_previous"`
	SourcesCurrent  []freshnessDoc `json:"sources_current"`
}

type freshnessDoc struct {
	UniqueID     string     `json:"unique_id"`
	MaxLoadedAt  *time.Time `json:"max_loaded_at"`
	RuntimeError bool       `json:"runtime_error"`
}

// toFreshnessResults preserves a nil input as nil: absence of the
// sources_previous/sources_current key in the fixture (as opposed to an
// explicit empty list) is how a fixture author represents "no freshness
// records at all", which loadPreviousState's callers treat as a fatal
// internal error (spec.md §4.10).
func toFreshnessResults(ds []freshnessDoc) []manifest.FreshnessResult {
	if ds == nil {
		return nil
	}
	out := make([]manifest.FreshnessResult, len(ds))
	for i, d := range ds {
		out[i] = manifest.FreshnessResult{
			UniqueId:     manifest.UniqueId(d.UniqueID),
			MaxLoadedAt:  d.MaxLoadedAt,
			RuntimeError: d.RuntimeError,
		}
	}
	return out
}

// loadPreviousState reads a state fixture rooted at path, resolving its
// nested manifest_path relative to path's directory.
func loadPreviousState(path string) (*manifest.PreviousState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}

	var doc stateDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", path, err)
	}

	manifestPath := doc.ManifestPath
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(filepath.Dir(path), manifestPath)
	}
	prevManifest, err := loadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("load previous manifest: %w", err)
	}

	var results []manifest.Result
	if doc.Results != nil {
		results = make([]manifest.Result, len(doc.Results))
		for i, r := range doc.Results {
			results[i] = manifest.Result{UniqueId: manifest.UniqueId(r.UniqueID), Status: r.Status}
		}
	}

	return &manifest.PreviousState{
		Manifest:        prevManifest,
		Results:         results,
		SourcesPrevious: toFreshnessResults(doc.SourcesPrevious),
		SourcesCurrent:  toFreshnessResults(doc.SourcesCurrent),
	}, nil
}
