package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/registry"
)

// NewAddrCmd creates the addr command
func NewAddrCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "addr <address>",
		Short: "Show the named function at an address",
		Long: `Look up the named function starting at a hex address. Values at or
above the address base are treated as absolute; smaller values as
relative. Unnamed functions are not indexed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := parseFormat(format)
			if err != nil {
				return err
			}
			logger := newLogger()

			value, err := registry.ParseHex(args[0])
			if err != nil {
				return err
			}

			entries, base, _, err := loadEntries(logger)
			if err != nil {
				return err
			}

			relative := value
			if value >= base {
				relative = value - base
			}

			index := registry.BuildNameIndex(entries)
			entry, ok := index[relative]
			if !ok {
				return fmt.Errorf("no named function at %s", args[0])
			}

			rendered, err := formatEntries(outputFormat, base, []*registry.Entry{entry})
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			return writeReport(logger, cmd.OutOrStdout(), output, rendered)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")

	return cmd
}
