package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monstermaker429/monstermaker-core/pkg/monstermaker"
)

const modulePath = "github.com/monstermaker429/monstermaker-core"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the monstermaker version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "monstermaker v%s\nmodule: %s\n", monstermaker.Version, modulePath)
			return nil
		},
	}
}
