package selector

import "github.com/gobwas/glob"

// globCache memoizes compiled glob patterns for the lifetime of the
// process. Selection runs single-threaded and synchronously (spec.md §5),
// so a plain map needs no locking. The matching engine itself is
// gobwas/glob rather than a hand-rolled fnmatch (SPEC_FULL.md §4.2).
var globCache = make(map[string]glob.Glob)

// compileCached compiles pattern (with gobwas/glob's default separator-free
// mode, matching fnmatch's "a path-sensitive `*` is still a wildcard
// across segments once we've already split the name into dotted
// components") and caches the result.
func compileCached(pattern string) (glob.Glob, error) {
	if g, ok := globCache[pattern]; ok {
		return g, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	globCache[pattern] = g
	return g, nil
}

// fnmatchCompatible reports whether name matches pattern using fnmatch-like
// glob semantics (*, ?, [...]) — spec.md §4.2's `fnmatch_compatible`, and
// §4.3's plain `fnmatch` used by tag/group/package/file. A pattern that
// fails to compile is compared to name by literal string equality rather
// than raising an error; glob compile errors never propagate as user
// errors for these dimensions.
func fnmatchCompatible(name, pattern string) bool {
	g, err := compileCached(pattern)
	if err != nil {
		return name == pattern
	}
	return g.Match(name)
}
