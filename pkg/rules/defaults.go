package rules

import (
	_ "embed"
)

//go:embed embedded/time_periods.yaml
var defaultConfig []byte

// DefaultYAML returns the default rule config as written to a fresh
// user config file.
func DefaultYAML() []byte {
	return defaultConfig
}

// Default returns the built-in rule list used when no user config can
// be loaded. The embedded config is the single source of truth for
// both this list and the file written by init.
func Default() RuleList {
	list, err := Parse(defaultConfig)
	if err != nil {
		// The embedded config is covered by tests; reaching this
		// means the binary itself is broken.
		panic(err)
	}
	return list
}
