package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEffectivenessCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "effectiveness <defender> <attacker>",
		Aliases: []string{"eff"},
		Short:   "Print the multiplier of an attacking type on a defending type",
		Long: `Print how strongly the attacker type acts on the defender type.

Pairs without an entry in the chart print the neutral multiplier 1.

Example:
  monstermaker effectiveness fire water`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defender, attacker := args[0], args[1]

			c, err := loadChart(f)
			if err != nil {
				return err
			}

			m, err := c.Effectiveness(defender, attacker)
			if err != nil {
				return err
			}

			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"defender":   defender,
					"attacker":   attacker,
					"multiplier": m,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(m))
			return nil
		},
	}
}
