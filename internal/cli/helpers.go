package cli

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/decompkit/symreg/internal/config"
	"github.com/decompkit/symreg/internal/logging"
	"github.com/decompkit/symreg/pkg/registry"
)

// newLogger builds the CLI logger from the persistent flags.
func newLogger() zerolog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = flagLogLevel
	return logging.New(cfg)
}

// resolveConfig loads the project configuration. An explicit --config
// wins; otherwise the config is discovered from the working directory.
// With --registry set, commands can run outside any project, falling
// back to the default configuration.
func resolveConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}

	cfg, err := config.Resolve()
	if err != nil {
		if flagRegistry != "" && errors.Is(err, config.ErrNoProject) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// registryPath returns the listing file the command operates on.
func registryPath(cfg *config.Config) string {
	if flagRegistry != "" {
		return flagRegistry
	}
	return cfg.RegistryPath()
}

// loadEntries resolves the configuration, then loads and validates the
// registry. It returns the entries, the address base and the file path.
func loadEntries(logger zerolog.Logger) ([]registry.Entry, uint64, string, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, 0, "", err
	}
	base, err := cfg.AddressBase()
	if err != nil {
		return nil, 0, "", err
	}

	path := registryPath(cfg)
	entries, err := registry.NewLoader(base, logger).Load(path)
	if err != nil {
		return nil, 0, "", err
	}
	return entries, base, path, nil
}
