package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_ShouldApplyDefaultManifestPath_WhenNoFlagGiven(t *testing.T) {
	opts, err := parseArgs([]string{"tag:nightly"})
	require.NoError(t, err)
	assert.Equal(t, "manifest.json", opts.ManifestPath)
	assert.Equal(t, []Query{{Method: "tag", Selector: "nightly"}}, opts.Queries)
}

func TestParseArgs_ShouldParseFlags_BeforeQueries(t *testing.T) {
	opts, err := parseArgs([]string{"--manifest", "m.json", "--state", "s.json", "--project-root", "/proj", "fqn:staging.orders"})
	require.NoError(t, err)
	assert.Equal(t, "m.json", opts.ManifestPath)
	assert.Equal(t, "s.json", opts.StatePath)
	assert.Equal(t, "/proj", opts.ProjectRoot)
	assert.Equal(t, []Query{{Method: "fqn", Selector: "staging.orders"}}, opts.Queries)
}

func TestParseArgs_ShouldError_WhenNoQueriesGiven(t *testing.T) {
	_, err := parseArgs([]string{"--manifest", "m.json"})
	assert.Error(t, err)
}

func TestParseQuery_ShouldSplitMethodArgsAndSelector(t *testing.T) {
	q, err := parseQuery("config=severity:warn")
	require.NoError(t, err)
	assert.Equal(t, "config", q.Method)
	assert.Equal(t, []string{"severity"}, q.Args)
	assert.Equal(t, "warn", q.Selector)
}

func TestParseQuery_ShouldError_WhenNoColonPresent(t *testing.T) {
	_, err := parseQuery("justtext")
	assert.Error(t, err)
}

func TestParseQuery_ShouldSplitOnLastColon_SoDottedSelectorsSurvive(t *testing.T) {
	q, err := parseQuery("fqn:staging.orders")
	require.NoError(t, err)
	assert.Equal(t, "fqn", q.Method)
	assert.Equal(t, "staging.orders", q.Selector)
}
