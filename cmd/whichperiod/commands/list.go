package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/whichperiod/whichperiod/pkg/match"
	"github.com/whichperiod/whichperiod/pkg/paths"
	"github.com/whichperiod/whichperiod/pkg/rules"
	"github.com/whichperiod/whichperiod/pkg/style"
)

func newListCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New(os.Getenv)
			settings := loadSettings(p)
			style.Init(settings.Color)

			if year == 0 {
				year = time.Now().Year()
			}

			system, user := loadRuleLayers(cmd, p, settings, false)
			merged := rules.Merge(system, user)

			rows := make([]style.WindowRow, 0, len(merged))
			for _, rule := range merged {
				row := style.WindowRow{
					Key:     rule.Key,
					Date:    rule.RawDate,
					Comment: rule.Comment,
				}
				if w, err := match.Expand(rule, year); err != nil {
					row.Err = err
				} else {
					row.Window = style.FormatWindow(w)
				}
				rows = append(rows, row)
			}

			table, err := style.RenderWindowTable(year, rows)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, MsgFlagYear)

	return cmd
}
