package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/whichperiod/whichperiod/pkg/logging"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

// envPrefix maps WHICHPERIOD_FALLBACK_PERIOD to fallback_period, etc.
const envPrefix = "WHICHPERIOD_"

// Load builds the effective settings: embedded defaults, then the
// settings file at path if it exists, then environment variables.
func Load(path string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{defaultSettings}, toml.Parser()); err != nil {
		return nil, perioderr.Wrap(err, perioderr.ErrInternal, "failed to load built-in settings")
	}

	// 2. Settings file, when present
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, perioderr.Wrapf(err, perioderr.ErrConfigParse,
				"failed to load settings from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, perioderr.Wrap(err, perioderr.ErrConfigLoad, "failed to load env vars")
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, perioderr.Wrap(err, perioderr.ErrConfigParse, "failed to decode settings")
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}
