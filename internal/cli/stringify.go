package cli

import (
	"fmt"
	"io"

	"github.com/mossy2100/galaxon-core/stringify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	stringifyIndent  string
	stringifyCompact bool
)

var stringifyCmd = &cobra.Command{
	Use:   "stringify",
	Short: "Pretty-print YAML or JSON read from stdin",
	Args:  cobra.NoArgs,
	RunE:  runStringify,
}

func init() {
	stringifyCmd.Flags().StringVar(&stringifyIndent, "indent", "  ", "indentation for nested values")
	stringifyCmd.Flags().BoolVar(&stringifyCompact, "compact", false, "print everything on one line")
	rootCmd.AddCommand(stringifyCmd)
}

func runStringify(cmd *cobra.Command, _ []string) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// JSON is a subset of YAML, so one decoder covers both.
	var doc any
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	var opts []stringify.Option
	if !stringifyCompact {
		opts = append(opts, stringify.WithPretty(stringifyIndent))
	}

	printLine(cmd, stringify.Value(doc, opts...))

	return nil
}
