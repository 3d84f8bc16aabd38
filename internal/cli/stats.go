package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/registry"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"progress"},
		Short:   "Show decompilation progress per status",
		Long: `Tally the registry by decompilation status and report function and
byte counts, plus the overall decompiled percentages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := parseFormat(format)
			if err != nil {
				return err
			}
			logger := newLogger()

			entries, _, _, err := loadEntries(logger)
			if err != nil {
				return err
			}

			report := newTallyReport(registry.TallyEntries(entries))
			rendered, err := formatTally(outputFormat, report)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			return writeReport(logger, cmd.OutOrStdout(), output, rendered)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}
