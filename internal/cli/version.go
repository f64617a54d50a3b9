package cli

import (
	"fmt"

	"github.com/mossy2100/galaxon-core/compare"
	semver "github.com/mossy2100/galaxon-core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "galaxon version %s\n", version)
	},
}

var versionCompareCmd = &cobra.Command{
	Use:   "version-compare <v1> <v2>",
	Short: "Order two semantic versions",
	Long: `Prints -1, 0 or 1 as v1 is older than, the same as or newer than v2.
Versions are MAJOR[.MINOR[.PATCH]] with an optional leading "v".`,
	Args: cobra.ExactArgs(2),
	RunE: runVersionCompare,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(versionCompareCmd)
}

func runVersionCompare(cmd *cobra.Command, args []string) error {
	v1, err := semver.Parse(args[0])
	if err != nil {
		return err
	}

	v2, err := semver.Parse(args[1])
	if err != nil {
		return err
	}

	o, err := compare.Compare(v1, v2)
	if err != nil {
		return err
	}

	printLine(cmd, int(o))

	return nil
}
