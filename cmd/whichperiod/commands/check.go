package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/whichperiod/whichperiod/pkg/config"
	"github.com/whichperiod/whichperiod/pkg/logging"
	"github.com/whichperiod/whichperiod/pkg/match"
	"github.com/whichperiod/whichperiod/pkg/paths"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
	"github.com/whichperiod/whichperiod/pkg/rules"
	"github.com/whichperiod/whichperiod/pkg/style"
)

const dateLayout = "2006-01-02"

// runCheck is the root command action: resolve the query date's
// period and print its name.
func runCheck(cmd *cobra.Command, dateArg string, long bool) error {
	logger := logging.GetLogger("cmd.check")

	p := paths.New(os.Getenv)
	settings := loadSettings(p)
	style.Init(settings.Color)

	query := time.Now()
	if dateArg != "" {
		parsed, err := time.Parse(dateLayout, dateArg)
		if err != nil {
			return perioderr.Wrapf(err, perioderr.ErrInvalidInput,
				"--date must be YYYY-MM-DD, got %q", dateArg)
		}
		query = parsed
	}

	system, user := loadRuleLayers(cmd, p, settings, true)

	m, ok := match.ResolveAndMatch(system, user, query)
	if !ok {
		logger.Info().Str("date", query.Format(dateLayout)).Msg("No rule matched")
		fmt.Fprintln(cmd.OutOrStdout(), style.RenderFallback(settings.FallbackPeriod))
		return nil
	}

	logger.Info().
		Str("date", query.Format(dateLayout)).
		Str("period", m.Key).
		Msg("Matched period")

	if long {
		fmt.Fprintln(cmd.OutOrStdout(), style.RenderMatch(m))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), style.PeriodStyle.Render(m.Key))
	}
	return nil
}

// loadSettings loads app settings, degrading to the embedded defaults
// with a warning when the settings file is broken.
func loadSettings(p *paths.Paths) *config.Settings {
	logger := logging.GetLogger("cmd")

	settings, err := config.Load(p.SettingsPath())
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring broken settings file, using defaults")
		settings = config.Default()
	}
	return settings
}

// loadRuleLayers loads the system and user rule configs. The system
// layer is optional: a missing file is fine and a broken one only
// warns. The user layer is created from the built-in defaults when
// missing (ensure=true); if it cannot be loaded the built-in default
// rules are used instead, per the degradation policy for config
// sources.
func loadRuleLayers(cmd *cobra.Command, p *paths.Paths, settings *config.Settings, ensure bool) (system, user rules.RuleList) {
	logger := logging.GetLogger("cmd")

	systemPath := settings.SystemConfig
	if systemPath == "" {
		systemPath = p.SystemRuleConfig()
	}
	if _, err := os.Stat(systemPath); err == nil {
		system, err = rules.Load(systemPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", systemPath).
				Msg("Skipping unreadable system rule config")
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping system config %s: %v\n", systemPath, err)
			system = nil
		}
	}

	userPath := settings.UserConfig
	if userPath == "" {
		userPath = p.UserRuleConfig()
	}
	if ensure {
		if wrote, err := writeDefaultRuleConfig(userPath, false); err != nil {
			logger.Warn().Err(err).Str("path", userPath).Msg("Cannot create default user config")
		} else if wrote {
			logger.Info().Str("path", userPath).Msg("Wrote default user config")
		}
	}

	var err error
	user, err = rules.Load(userPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", userPath).
			Msg("Falling back to built-in default rules")
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping user config %s: %v\n", userPath, err)
		user = rules.Default()
	}

	return system, user
}
