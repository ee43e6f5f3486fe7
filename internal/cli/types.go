package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monstermaker429/monstermaker-core/pkg/types"
)

// typeJSON is the JSON form of a type in command output.
type typeJSON struct {
	ID   types.TypeID `json:"id"`
	Name string       `json:"name"`
}

func newTypesCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the types in the chart",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart(f)
			if err != nil {
				return err
			}

			ids := c.Registry.Types()
			names := c.TypeNames(ids)

			if f.jsonMode {
				out := make([]typeJSON, len(ids))
				for i, id := range ids {
					out[i] = typeJSON{ID: id, Name: names[i]}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME")
			for i, id := range ids {
				fmt.Fprintf(tw, "%d\t%s\n", id, names[i])
			}
			return tw.Flush()
		},
	}
}
