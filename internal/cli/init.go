package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/internal/config"
	"github.com/decompkit/symreg/internal/constants"
	"github.com/decompkit/symreg/pkg/registry"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a project config and empty registry",
		Long: `Write a default .symreg.yaml into the current directory and create
an empty function listing at the configured path if none exists yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			configPath := filepath.Join(wd, constants.ConfigFile)
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists", configPath)
			}

			cfg := config.Default()
			if err := cfg.Save(configPath); err != nil {
				return err
			}

			listingPath := filepath.Join(wd, cfg.Registry.Path)
			if _, err := os.Stat(listingPath); err == nil {
				cmd.Printf("Initialized %s (registry %s already exists)\n", configPath, listingPath)
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(listingPath), 0755); err != nil {
				return fmt.Errorf("failed to create registry directory: %w", err)
			}
			base, err := cfg.AddressBase()
			if err != nil {
				return err
			}
			if err := registry.NewWriter(base, logger).Write(listingPath, nil); err != nil {
				return err
			}

			cmd.Printf("Initialized %s and %s\n", configPath, listingPath)
			return nil
		},
	}
}
