package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monstermaker429/monstermaker-core/internal/chart"
	"github.com/monstermaker429/monstermaker-core/pkg/types"
)

// speciesJSON is the JSON form of a species with type names resolved.
type speciesJSON struct {
	ID       uint16               `json:"id"`
	Name     string               `json:"name"`
	Types    []string             `json:"types"`
	Bestiary *types.BestiaryEntry `json:"bestiary,omitempty"`
}

func newSpeciesCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "species [id]",
		Short: "List species, or show one species by id",
		Args:  rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id uint16
			if len(args) == 1 {
				n, err := strconv.ParseUint(args[0], 10, 16)
				if err != nil {
					return fmt.Errorf("%w: invalid species id %q", errUsage, args[0])
				}
				id = uint16(n)
			}

			c, err := loadChart(f)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return listSpecies(cmd.OutOrStdout(), c, f.jsonMode)
			}

			s, err := c.Dex.Get(id)
			if err != nil {
				return fmt.Errorf("species %d: %w", id, err)
			}
			return showSpecies(cmd.OutOrStdout(), c, s, f.jsonMode)
		},
	}
}

func toSpeciesJSON(c *chart.Chart, s *types.Species) speciesJSON {
	return speciesJSON{
		ID:       s.ID,
		Name:     s.Name,
		Types:    c.TypeNames(s.Types),
		Bestiary: s.Bestiary,
	}
}

func listSpecies(w io.Writer, c *chart.Chart, jsonMode bool) error {
	all := c.Dex.All()

	if jsonMode {
		out := make([]speciesJSON, len(all))
		for i, s := range all {
			out[i] = toSpeciesJSON(c, s)
		}
		return writeJSON(w, out)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTYPES")
	for _, s := range all {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, s.Name, strings.Join(c.TypeNames(s.Types), "/"))
	}
	return tw.Flush()
}

func showSpecies(w io.Writer, c *chart.Chart, s *types.Species, jsonMode bool) error {
	if jsonMode {
		return writeJSON(w, toSpeciesJSON(c, s))
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", s.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Types:\t%s\n", strings.Join(c.TypeNames(s.Types), "/"))
	if b := s.Bestiary; b != nil {
		fmt.Fprintf(tw, "Category:\t%s\n", b.Category)
		fmt.Fprintf(tw, "Description:\t%s\n", b.Description)
		fmt.Fprintf(tw, "Weight:\t%s kg\n", formatNumber(b.WeightKilograms()))
		fmt.Fprintf(tw, "Height:\t%s m\n", formatNumber(b.HeightMeters()))
	}
	return tw.Flush()
}
