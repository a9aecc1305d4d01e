// Package config loads the demo CLI's ambient configuration: the default
// project root used by the path: selector method (spec.md §4.5, "resolve
// a project root from ambient context") and the output format. It is
// consumed only by cmd/nodeselect — the core selector/state packages never
// read ambient configuration themselves (spec.md §9, "replace
// context-variable access with an explicit configuration parameter on
// matcher construction").
//
// Backed by spf13/viper, grounded on the pack repo smilemakc-mbflow, which
// uses viper for exactly this "optional config file + env var overrides"
// shape (see DESIGN.md).
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the demo CLI's resolved configuration.
type Config struct {
	// ProjectRoot is the directory path: selectors are resolved relative
	// to. Empty means "use the process working directory" (spec.md §4.5).
	ProjectRoot string
	// OutputFormat is "lines" (default) or "json".
	OutputFormat string
}

// Load reads .nodeselect.yaml from the given search paths (typically just
// ["."]), overlaid with NODESELECT_* environment variables, and returns
// the resolved Config. A missing config file is not an error; every field
// falls back to its zero-value default.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName(".nodeselect")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("NODESELECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("project_root", "")
	v.SetDefault("output_format", "lines")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		ProjectRoot:  v.GetString("project_root"),
		OutputFormat: v.GetString("output_format"),
	}, nil
}
