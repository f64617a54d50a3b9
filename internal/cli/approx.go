package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/logger"
	"github.com/spf13/cobra"
)

// ErrNotApproxEqual is returned by approx --strict when the values differ.
var ErrNotApproxEqual = errors.New("values are not approximately equal")

var approxStrict bool

var approxCmd = &cobra.Command{
	Use:   "approx <a> <b>",
	Short: "Report whether two numbers are approximately equal",
	Long: `Prints true if |a-b| <= max(rel*max(|a|,|b|), abs), false otherwise.
NaN is never approximately equal to anything. Equal infinities are.`,
	Args: cobra.ExactArgs(2),
	RunE: runApprox,
}

func init() {
	approxCmd.Flags().BoolVar(&approxStrict, "strict", false, "exit non-zero when the values are not approximately equal")
	rootCmd.AddCommand(approxCmd)
}

func runApprox(cmd *cobra.Command, args []string) error {
	a, err := parseFloat(args[0])
	if err != nil {
		return err
	}

	b, err := parseFloat(args[1])
	if err != nil {
		return err
	}

	equal := tolerance.ApproxEqual(a, b)

	logger.Get(cmd.Context()).Debug("approx",
		logger.Value("a", a),
		logger.Value("b", b),
		logger.Value("absoluteDifference", floats.AbsoluteDifference(a, b)),
		logger.Value("relativeDifference", floats.RelativeDifference(a, b)),
		slog.Bool("equal", equal))

	printLine(cmd, equal)

	if !equal && approxStrict {
		return fmt.Errorf("%w: %s and %s (%s)", ErrNotApproxEqual, args[0], args[1], tolerance)
	}

	return nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}

	return f, nil
}
