// Command nodeselect is a thin demo harness over the selection core: it
// loads a manifest (and optional previous-state) fixture, runs one or more
// dimension queries against it, and prints the matched unique_ids. It is
// not the CLI the original tool ships — expression parsing, graph
// operators, and manifest construction are all out of scope (spec.md §1)
// — it exists to exercise internal/selector and internal/state the way a
// real caller would.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodeselect/selectcore/internal/config"
	"github.com/nodeselect/selectcore/internal/manifest"
	"github.com/nodeselect/selectcore/internal/selecterr"
	"github.com/nodeselect/selectcore/internal/selectlog"
	"github.com/nodeselect/selectcore/internal/selector"
	"github.com/nodeselect/selectcore/internal/state"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		selectlog.Logger.Error().Err(err).Msg("nodeselect failed")
		os.Exit(1)
	}
}

func run(argv []string) error {
	opts, err := parseArgs(argv)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	projectRoot := opts.ProjectRoot
	if projectRoot == "" {
		projectRoot = cfg.ProjectRoot
	}

	m, err := loadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}

	var prev *manifest.PreviousState
	if opts.StatePath != "" {
		prev, err = loadPreviousState(opts.StatePath)
		if err != nil {
			return err
		}
	}

	registry := selector.NewRegistry(m, projectRoot)
	registry.StateFactories[selector.MethodState] = func(args []string) selector.Method {
		return state.NewStateMethod(m, prev, args)
	}
	registry.StateFactories[selector.MethodResult] = func(args []string) selector.Method {
		return state.NewResultMethod(m, prev, args)
	}
	registry.StateFactories[selector.MethodSourceStatus] = func(args []string) selector.Method {
		return state.NewSourceStatusMethod(m, prev, args)
	}

	universe := allUniqueIds(m)

	results := make(map[string][]manifest.UniqueId, len(opts.Queries))
	for _, q := range opts.Queries {
		selectlog.Logger.Debug().Str("method", q.Method).Str("selector", q.Selector).Msg("running query")
		ids, err := registry.Search(selector.MethodName(q.Method), q.Args, universe, q.Selector)
		if err != nil {
			return err
		}
		results[q.Method+":"+q.Selector] = ids
	}

	return printResults(cfg.OutputFormat, opts.Queries, results)
}

// allUniqueIds builds the initial `included` set: every node the manifest
// knows about (spec.md §3, "every selector method call is scoped to some
// subset of ids on the way in").
func allUniqueIds(m *manifest.Manifest) selector.IdSet {
	return selector.NewIdSet(allIds(m)...)
}

// allIds enumerates every id across every mapping.
func allIds(m *manifest.Manifest) []manifest.UniqueId {
	var ids []manifest.UniqueId
	m.Nodes.Each(func(id manifest.UniqueId, _ manifest.Node) bool { ids = append(ids, id); return true })
	m.Sources.Each(func(id manifest.UniqueId, _ manifest.Source) bool { ids = append(ids, id); return true })
	m.Exposures.Each(func(id manifest.UniqueId, _ manifest.Exposure) bool { ids = append(ids, id); return true })
	m.Metrics.Each(func(id manifest.UniqueId, _ manifest.Metric) bool { ids = append(ids, id); return true })
	m.SemanticModels.Each(func(id manifest.UniqueId, _ manifest.SemanticModel) bool { ids = append(ids, id); return true })
	m.UnitTests.Each(func(id manifest.UniqueId, _ manifest.UnitTest) bool { ids = append(ids, id); return true })
	m.SavedQueries.Each(func(id manifest.UniqueId, _ manifest.SavedQuery) bool { ids = append(ids, id); return true })
	return ids
}

func printResults(format string, queries []Query, results map[string][]manifest.UniqueId) error {
	switch format {
	case "json":
		out := make(map[string][]string, len(results))
		for key, ids := range results {
			strs := make([]string, len(ids))
			for i, id := range ids {
				strs[i] = string(id)
			}
			out[key] = strs
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "lines", "":
		for _, q := range queries {
			key := q.Method + ":" + q.Selector
			for _, id := range results[key] {
				fmt.Println(string(id))
			}
		}
		return nil
	default:
		return selecterr.NewInternalError("unknown output format " + format)
	}
}
