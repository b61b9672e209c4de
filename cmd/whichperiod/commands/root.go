// Package commands wires up the whichperiod CLI.
package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/whichperiod/whichperiod/internal/version"
	"github.com/whichperiod/whichperiod/pkg/logging"
)

// NewRootCmd creates and returns the root command. Running it with no
// subcommand evaluates the rules against today (or --date).
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dateArg   string
		long      bool
	)

	rootCmd := &cobra.Command{
		Use:     "whichperiod",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, dateArg, long)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&dateArg, "date", "d", "", MsgFlagDate)
	rootCmd.Flags().BoolVarP(&long, "long", "l", false, MsgFlagLong)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
