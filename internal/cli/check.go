package cli

import (
	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/registry"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the function registry",
		Long: `Load the function registry and enforce its invariants: well-formed
records, names on every decompiled function and no duplicate names.
On success a short summary is printed, including a fingerprint of the
file contents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			entries, _, path, err := loadEntries(logger)
			if err != nil {
				return err
			}

			fingerprint, err := registry.Fingerprint(path)
			if err != nil {
				return err
			}

			named := 0
			for i := range entries {
				if entries[i].Name != "" {
					named++
				}
			}

			cmd.Printf("%s: OK\n", path)
			cmd.Printf("Functions:   %d (%d named)\n", len(entries), named)
			cmd.Printf("Fingerprint: %s\n", fingerprint)
			return nil
		},
	}
}
