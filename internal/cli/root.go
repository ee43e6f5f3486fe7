// Package cli implements the monstermaker command-line interface, a
// read-only inspector for the configured type chart.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/monstermaker429/monstermaker-core/internal/chart"
	"github.com/monstermaker429/monstermaker-core/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

// NewRootCmd creates the top-level "monstermaker" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "monstermaker",
		Short: "Inspect a Monster Maker type chart",
		Long:  "monstermaker loads the type chart and species from config.yaml\nand answers effectiveness queries against it.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), f.verbose)
		},
	}

	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/monstermaker)")
	root.PersistentFlags().BoolVar(&f.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))
	root.AddCommand(newTypesCmd(f))
	root.AddCommand(newEffectivenessCmd(f))
	root.AddCommand(newChartCmd(f))
	root.AddCommand(newSpeciesCmd(f))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "monstermaker:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUsage),
		errors.Is(err, types.ErrTypeNotFound),
		errors.Is(err, types.ErrAmbiguousType),
		errors.Is(err, types.ErrSpeciesNotFound),
		errors.Is(err, chart.ErrInvalidSpeciesID),
		errors.Is(err, chart.ErrInvalidMultiplier):
		return exitUserError
	default:
		return exitSysError
	}
}

// setupLogging installs the default slog logger. Warnings and errors are
// always shown; --verbose adds info and debug records.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// exactArgs is cobra.ExactArgs with errors classified as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %s", errUsage, err)
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs with errors classified as usage errors.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return fmt.Errorf("%w: %s", errUsage, err)
		}
		return nil
	}
}
