package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/monstermaker429/monstermaker-core/internal/chart"
	"github.com/monstermaker429/monstermaker-core/internal/paths"
)

// configHeader is written above the generated definition.
const configHeader = `# monstermaker configuration
#
# bestiary: attach category, description, weight and height to species.
# types:    each entry lists the multipliers attacking types have on it;
#           pairs that are not listed default to 1.0.
# species:  types are referenced by name.

`

func newInitCmd(f *rootFlags) *cobra.Command {
	var bestiary bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with the built-in\ntype chart. An existing config.yaml is left untouched.",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(f.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			path := paths.ConfigFile(configDir)
			written, err := writeConfigIfMissing(path, bestiary)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			out := cmd.OutOrStdout()
			if !written {
				fmt.Fprintln(out, "Config already exists:", path)
				return nil
			}
			fmt.Fprintln(out, "Wrote", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bestiary, "bestiary", false, "enable bestiary fields in the generated config")
	return cmd
}

// writeConfigIfMissing creates config.yaml with the built-in chart if the
// file does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string, bestiary bool) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	def := chart.DefaultDefinition()
	def.Bestiary = bestiary

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&def); err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
