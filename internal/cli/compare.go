package cli

import (
	"strconv"

	"github.com/mossy2100/galaxon-core/compare"
	"github.com/mossy2100/galaxon-core/logger"
	"github.com/mossy2100/galaxon-core/sortable"
	"github.com/spf13/cobra"
)

var compareApprox bool

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Order two numbers",
	Long: `Prints -1, 0 or 1 as a is less than, equal to or greater than b.
Integers are compared exactly, even against floats. With --approx, values
within tolerance of each other compare equal. NaN cannot be ordered.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareApprox, "approx", false, "treat values within tolerance as equal")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	b, err := parseNumber(args[1])
	if err != nil {
		return err
	}

	var o compare.Ordering
	if compareApprox {
		o, err = compare.ApproxCompare(a, b, tolerance)
	} else {
		o, err = compare.Compare(a, b)
	}

	if err != nil {
		logger.Get(cmd.Context()).Error("compare failed", "error", err)

		return err
	}

	logger.Get(cmd.Context()).Debug("compare",
		logger.Value("a", a.Float64()),
		logger.Value("b", b.Float64()),
		"ordering", o.String())

	printLine(cmd, int(o))

	return nil
}

// parseNumber reads s as an Int when it is a base-10 integer that fits in
// an int, otherwise as a Float.
func parseNumber(s string) (sortable.Number, error) {
	if n, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return sortable.Int(n), nil
	}

	f, err := parseFloat(s)
	if err != nil {
		return nil, err
	}

	return sortable.Float(f), nil
}
