package main

import (
	"fmt"
	"strings"
)

// CLIOptions is the demo CLI's parsed invocation: a manifest, an optional
// previous-state fixture, and one or more dimension queries of the form
// `method:selector` or `method=arg1=arg2:selector` for methods whose
// construction takes arguments (config:). Composing
// these into the set-algebra/graph-operator expression language is out of
// scope (spec.md §1) — the demo CLI resolves each query independently and
// prints its result.
type CLIOptions struct {
	ManifestPath string
	StatePath    string
	ProjectRoot  string
	Queries      []Query
}

// Query is one `method:selector` (or `method=args:selector`) token.
type Query struct {
	Method   string
	Args     []string
	Selector string
}

func defaultCLIOptions() CLIOptions {
	return CLIOptions{ManifestPath: "manifest.json"}
}

// parseArgs parses the demo CLI's flags.
//
//	nodeselect --manifest FILE [--state FILE] [--project-root DIR] QUERY [QUERY ...]
func parseArgs(argv []string) (CLIOptions, error) {
	opts := defaultCLIOptions()

	var i int
	for i = 0; i < len(argv); i++ {
		a := argv[i]
		switch a {
		case "--manifest":
			if i+1 >= len(argv) {
				return opts, fmt.Errorf("--manifest requires a value")
			}
			opts.ManifestPath = argv[i+1]
			i++
			continue
		case "--state":
			if i+1 >= len(argv) {
				return opts, fmt.Errorf("--state requires a value")
			}
			opts.StatePath = argv[i+1]
			i++
			continue
		case "--project-root":
			if i+1 >= len(argv) {
				return opts, fmt.Errorf("--project-root requires a value")
			}
			opts.ProjectRoot = argv[i+1]
			i++
			continue
		}
		if strings.HasPrefix(a, "-") {
			return opts, fmt.Errorf("unknown flag: %s", a)
		}
		break
	}

	for _, tok := range argv[i:] {
		q, err := parseQuery(tok)
		if err != nil {
			return opts, err
		}
		opts.Queries = append(opts.Queries, q)
	}
	if len(opts.Queries) == 0 {
		return opts, fmt.Errorf("at least one method:selector query is required")
	}
	return opts, nil
}

// parseQuery splits "method=arg1=arg2:selector" into its parts. The
// selector is everything after the last colon, so the method and argument
// part may contain colons but the selector cannot.
func parseQuery(tok string) (Query, error) {
	idx := strings.LastIndex(tok, ":")
	if idx < 0 {
		return Query{}, fmt.Errorf("query %q is missing a \"method:selector\" colon", tok)
	}
	head, selector := tok[:idx], tok[idx+1:]

	parts := strings.Split(head, "=")
	return Query{Method: parts[0], Args: parts[1:], Selector: selector}, nil
}
