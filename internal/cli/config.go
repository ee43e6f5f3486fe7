// Config loading for the monstermaker CLI.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/monstermaker429/monstermaker-core/internal/chart"
	"github.com/monstermaker429/monstermaker-core/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyBestiary = "bestiary"
	cfgKeyTypes    = "types"
	cfgKeySpecies  = "species"
)

// loadConfig reads config.yaml from configDir using Viper.
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBestiary, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config file, using defaults", "dir", configDir)
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	slog.Debug("read config", "file", v.ConfigFileUsed())
	return v, nil
}

// decodeDefinition turns the loaded configuration into a chart Definition.
// When the config declares no types the built-in chart is used; the
// bestiary switch from config still applies to it.
func decodeDefinition(v *viper.Viper) (chart.Definition, error) {
	var def chart.Definition
	if err := v.Unmarshal(&def); err != nil {
		return chart.Definition{}, fmt.Errorf("decode config: %w", err)
	}

	if !v.IsSet(cfgKeyTypes) || len(def.Types) == 0 {
		builtin := chart.DefaultDefinition()
		builtin.Bestiary = def.Bestiary
		if v.IsSet(cfgKeySpecies) {
			builtin.Species = def.Species
		}
		return builtin, nil
	}
	return def, nil
}

// loadChart resolves the config directory, reads config.yaml and builds the
// chart it describes.
func loadChart(f *rootFlags) (*chart.Chart, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	def, err := decodeDefinition(v)
	if err != nil {
		return nil, err
	}

	c, err := chart.Build(def)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}
	return c, nil
}
