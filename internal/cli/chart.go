package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// chartRowJSON is one defender row of the effectiveness matrix.
type chartRowJSON struct {
	Defender typeJSON      `json:"defender"`
	Against  []matchupJSON `json:"against"`
}

// matchupJSON is one explicit entry of a defender row.
type matchupJSON struct {
	Attacker   typeJSON `json:"attacker"`
	Multiplier float64  `json:"multiplier"`
}

func newChartCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the full defender x attacker effectiveness matrix",
		Long: `Print every defender (rows) against every attacker (columns).

JSON output lists only the explicit entries of each defender; missing
attackers are neutral.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart(f)
			if err != nil {
				return err
			}

			ids := c.Registry.Types()
			names := c.TypeNames(ids)

			if f.jsonMode {
				rows := make([]chartRowJSON, len(ids))
				for i, d := range ids {
					against := make([]matchupJSON, 0)
					for a, m := range c.Registry.Relations(d) {
						against = append(against, matchupJSON{
							Attacker:   typeJSON{ID: a, Name: names[a]},
							Multiplier: m,
						})
					}
					sort.Slice(against, func(x, y int) bool {
						return against[x].Attacker.ID < against[y].Attacker.ID
					})
					rows[i] = chartRowJSON{Defender: typeJSON{ID: d, Name: names[i]}, Against: against}
				}
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "DEF\\ATK\t%s\n", strings.Join(names, "\t"))
			for i, d := range ids {
				cells := make([]string, len(ids))
				for j, a := range ids {
					cells[j] = formatNumber(c.Registry.Effectiveness(d, a))
				}
				fmt.Fprintf(tw, "%s\t%s\n", names[i], strings.Join(cells, "\t"))
			}
			return tw.Flush()
		},
	}
}
