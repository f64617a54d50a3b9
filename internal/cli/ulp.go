package cli

import (
	"fmt"

	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/stringify"
	"github.com/spf13/cobra"
)

var ulpNeighbours bool

var ulpCmd = &cobra.Command{
	Use:   "ulp <x>",
	Short: "Print the unit in the last place of a number",
	Args:  cobra.ExactArgs(1),
	RunE:  runULP,
}

func init() {
	ulpCmd.Flags().BoolVar(&ulpNeighbours, "neighbours", false, "also print the adjacent representable values")
	rootCmd.AddCommand(ulpCmd)
}

func runULP(cmd *cobra.Command, args []string) error {
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}

	printLine(cmd, stringify.Float(floats.ULP(x)))

	if ulpNeighbours {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "down: %s\nup: %s\n",
			stringify.Float(floats.NextDown(x)), stringify.Float(floats.NextUp(x)))
	}

	return nil
}
