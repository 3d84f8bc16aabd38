// Package cli implements the symreg command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "symreg",
	Short: "symreg - function registry tooling for matching decompilation",
	Long: `symreg maintains the function listing of a matching-decompilation
project. The listing is a single flat CSV-style file recording every
function in the target executable: address, decompilation status,
size and name.

symreg validates the listing, rewrites it in canonical form, reports
decompilation progress and resolves functions by name or address,
including fuzzy lookups through C++ demangling.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig   string
	flagRegistry string
	flagLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Project config file (skips discovery)")
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "Registry file (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewFmtCmd())
	rootCmd.AddCommand(NewStatsCmd())
	rootCmd.AddCommand(NewLookupCmd())
	rootCmd.AddCommand(NewAddrCmd())
	rootCmd.AddCommand(NewDemangleCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("symreg version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
