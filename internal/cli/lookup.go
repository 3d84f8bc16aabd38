package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/registry"
)

// NewLookupCmd creates the lookup command
func NewLookupCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "lookup <name>",
		Aliases: []string{"find"},
		Short:   "Find a function by exact or demangled name",
		Long: `Find a function by name. The exact name is tried first. If nothing
matches, every mangled name in the registry is demangled and an entry
whose demangled form contains the query is returned. When several
entries qualify, which one wins is unspecified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := parseFormat(format)
			if err != nil {
				return err
			}
			logger := newLogger()

			entries, base, _, err := loadEntries(logger)
			if err != nil {
				return err
			}

			match := registry.FindFuzzy(entries, args[0])
			if match == nil {
				return fmt.Errorf("no function matches %q", args[0])
			}

			rendered, err := formatEntries(outputFormat, base, []*registry.Entry{match})
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
