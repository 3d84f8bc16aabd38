// Package config resolves and loads the project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/decompkit/symreg/internal/constants"
	"github.com/decompkit/symreg/pkg/registry"
)

// Config is the project configuration stored in .symreg.yaml at the
// project root.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`

	// root is the directory the config was loaded from. Relative paths
	// resolve against it.
	root string
}

// RegistryConfig locates the function listing and fixes how its
// addresses are interpreted.
type RegistryConfig struct {
	// Path is the registry file location, relative to the project root.
	Path string `yaml:"path,omitempty"`
	// Base is the load address of the target executable, as hex text.
	Base string `yaml:"base,omitempty"`
}

// Default returns the configuration used when no file or field overrides
// it.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			Path: constants.DefaultRegistryPath,
			Base: fmt.Sprintf("0x%x", constants.DefaultAddressBase),
		},
	}
}

// Load reads the config file at path. Missing fields fall back to
// defaults; the file itself must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Registry.Path == "" {
		config.Registry.Path = constants.DefaultRegistryPath
	}
	if config.Registry.Base == "" {
		config.Registry.Base = fmt.Sprintf("0x%x", constants.DefaultAddressBase)
	}
	config.root = filepath.Dir(path)

	// Reject a bad base here rather than on first use.
	if _, err := config.AddressBase(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the config to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// RegistryPath returns the path of the registry file, resolved against
// the project root when relative.
func (c *Config) RegistryPath() string {
	if filepath.IsAbs(c.Registry.Path) || c.root == "" {
		return c.Registry.Path
	}
	return filepath.Join(c.root, c.Registry.Path)
}

// AddressBase parses the configured base address.
func (c *Config) AddressBase() (uint64, error) {
	base, err := registry.ParseHex(c.Registry.Base)
	if err != nil {
		return 0, fmt.Errorf("invalid registry base %q: %w", c.Registry.Base, err)
	}
	return base, nil
}

// Root returns the project root directory the config was loaded from.
func (c *Config) Root() string {
	return c.root
}
