// Package cli implements the galaxon command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/internal/config"
	"github.com/mossy2100/galaxon-core/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath        string
	relativeTolerance float64
	absoluteTolerance float64

	// tolerance is resolved from config, environment and flags before any
	// subcommand runs.
	tolerance floats.Tolerance

	lookupEnv config.LookupFunc = os.LookupEnv
	newLogger                   = logger.Configure
)

var rootCmd = &cobra.Command{
	Use:   "galaxon",
	Short: "Tolerance-aware comparison of numbers and versions",
	Long: `galaxon compares floating-point numbers exactly or within a tolerance,
orders semantic versions, and pretty-prints structured data.

The tolerance is taken from, in increasing order of precedence: the built-in
defaults, a YAML or .env file (--config or GALAXON_CONFIG), the
GALAXON_RELATIVE_TOLERANCE and GALAXON_ABSOLUTE_TOLERANCE environment
variables, and the --rel and --abs flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML or .env config file")
	flags.Float64Var(&relativeTolerance, "rel", floats.DefaultRelativeTolerance, "relative tolerance")
	flags.Float64Var(&absoluteTolerance, "abs", floats.DefaultAbsoluteTolerance, "absolute tolerance")
}

// ExecuteContext runs the command tree against os.Args. Commands see ctx,
// with the configured logger attached, through cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, lookupEnv)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("rel") {
		cfg.Tolerance.Relative = relativeTolerance
	}

	if flags.Changed("abs") {
		cfg.Tolerance.Absolute = absoluteTolerance
	}

	if err := cfg.Tolerance.Validate(); err != nil {
		return err
	}

	tolerance = cfg.Tolerance

	log := newLogger(cfg.Log)
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))

	log.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("tolerance", tolerance.String()))

	return nil
}

func printLine(cmd *cobra.Command, a ...any) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), a...)
}
