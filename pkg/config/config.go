// Package config loads whichperiod's app-level settings: embedded
// defaults, overlaid by an optional config.toml, overlaid by
// WHICHPERIOD_* environment variables. The time-period rules
// themselves are a separate concern, handled by pkg/rules.
package config

import (
	_ "embed"
	"errors"

	"github.com/pelletier/go-toml/v2"

	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// Settings holds the user-tunable behavior of the CLI.
type Settings struct {
	// FallbackPeriod is printed when no rule matches the query date.
	FallbackPeriod string `koanf:"fallback_period" toml:"fallback_period"`

	// Color selects colored output: auto, always, or never.
	Color string `koanf:"color" toml:"color"`

	// SystemConfig and UserConfig override the rule config paths.
	// Empty values mean the standard locations.
	SystemConfig string `koanf:"system_config" toml:"system_config"`
	UserConfig   string `koanf:"user_config" toml:"user_config"`
}

// DefaultTOML returns the embedded default settings file content.
func DefaultTOML() []byte {
	return defaultSettings
}

// Default returns the embedded default settings.
func Default() *Settings {
	var s Settings
	if err := toml.Unmarshal(defaultSettings, &s); err != nil {
		// The embedded settings are covered by tests.
		panic(err)
	}
	return &s
}

// TOML renders the effective settings back as TOML, for `whichperiod
// config`.
func (s *Settings) TOML() ([]byte, error) {
	out, err := toml.Marshal(s)
	if err != nil {
		return nil, perioderr.Wrap(err, perioderr.ErrInternal, "cannot render settings")
	}
	return out, nil
}

func (s *Settings) validate() error {
	switch s.Color {
	case "auto", "always", "never":
	default:
		return perioderr.Newf(perioderr.ErrConfigParse,
			"color must be auto, always, or never, got %q", s.Color)
	}
	return nil
}

// rawBytesProvider implements a koanf provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
