package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whichperiod/whichperiod/pkg/paths"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New(os.Getenv)
			settings := loadSettings(p)

			out, err := settings.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
