package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/whichperiod/whichperiod/pkg/config"
	"github.com/whichperiod/whichperiod/pkg/paths"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
	"github.com/whichperiod/whichperiod/pkg/rules"
)

func newInitCmd() *cobra.Command {
	var (
		force    bool
		settings bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New(os.Getenv)

			wrote, err := writeDefaultRuleConfig(p.UserRuleConfig(), force)
			if err != nil {
				return err
			}
			if !wrote {
				return perioderr.Newf(perioderr.ErrInvalidInput,
					"%s already exists, use --force to overwrite", p.UserRuleConfig())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p.UserRuleConfig())

			if settings {
				if err := writeFileOnce(p.SettingsPath(), config.DefaultTOML(), force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p.SettingsPath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&settings, "settings", false, MsgFlagSettings)

	return cmd
}

// writeDefaultRuleConfig writes the embedded default rule config to
// path. Without force an existing file is left alone and (false, nil)
// is returned.
func writeDefaultRuleConfig(path string, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	if err := writeFileOnce(path, rules.DefaultYAML(), true); err != nil {
		return false, err
	}
	return true, nil
}

func writeFileOnce(path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return perioderr.Newf(perioderr.ErrInvalidInput,
			"%s already exists, use --force to overwrite", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return perioderr.Wrapf(err, perioderr.ErrConfigLoad,
			"cannot create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return perioderr.Wrapf(err, perioderr.ErrConfigLoad,
			"cannot write %s", path)
	}
	return nil
}
