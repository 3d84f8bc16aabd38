package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/internal/safe"
	"github.com/decompkit/symreg/pkg/registry"
)

// NewFmtCmd creates the fmt command
func NewFmtCmd() *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the registry in canonical form",
		Long: `Load the registry, validate it and rewrite the whole file so address
and size formatting is canonical. Entry order is preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			base, err := cfg.AddressBase()
			if err != nil {
				return err
			}
			path := registryPath(cfg)

			entries, err := registry.NewLoader(base, logger).Load(path)
			if err != nil {
				return err
			}

			if backup {
				if err := safe.CopyFile(path, path+".bak"); err != nil {
					return fmt.Errorf("failed to back up registry: %w", err)
				}
				logger.Debug().Str("path", path+".bak").Msg("Saved backup")
			}

			if err := registry.NewWriter(base, logger).Write(path, entries); err != nil {
				return err
			}

			cmd.Printf("Rewrote %d entries to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&backup, "backup", false, "Save a .bak copy before rewriting")

	return cmd
}
