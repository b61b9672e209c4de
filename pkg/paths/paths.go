// Package paths provides centralized path handling for whichperiod.
// It follows the XDG Base Directory specification for user files and
// supports environment overrides for testing and packaging.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the user config directory
	EnvConfigDir = "WHICHPERIOD_CONFIG_DIR"

	// EnvSystemConfigDir overrides the system config directory
	EnvSystemConfigDir = "WHICHPERIOD_SYSTEM_CONFIG_DIR"
)

// Well-known file and directory names. These define where whichperiod
// looks for its inputs and are not user-configurable beyond the
// environment overrides above.
const (
	// AppDirName is the per-app directory under config/state roots
	AppDirName = "whichperiod"

	// RuleConfigFile is the rule config file name in both layers
	RuleConfigFile = "time_periods.yaml"

	// SettingsFile is the app settings file name
	SettingsFile = "config.toml"

	// DefaultSystemConfigDir is the system-layer config directory
	DefaultSystemConfigDir = "/etc/whichperiod"
)

// Paths resolves the locations of whichperiod's config files.
type Paths struct {
	configDir string
	systemDir string
}

// New builds a Paths using XDG directories, honoring the environment
// overrides. getenv is usually os.Getenv; tests inject their own.
func New(getenv func(string) string) *Paths {
	p := &Paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		systemDir: DefaultSystemConfigDir,
	}
	if dir := getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	}
	if dir := getenv(EnvSystemConfigDir); dir != "" {
		p.systemDir = dir
	}
	return p
}

// ConfigDir returns the user config directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// UserRuleConfig returns the path of the user rule config.
func (p *Paths) UserRuleConfig() string {
	return filepath.Join(p.configDir, RuleConfigFile)
}

// SystemRuleConfig returns the path of the system rule config.
func (p *Paths) SystemRuleConfig() string {
	return filepath.Join(p.systemDir, RuleConfigFile)
}

// SettingsPath returns the path of the app settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.configDir, SettingsFile)
}
