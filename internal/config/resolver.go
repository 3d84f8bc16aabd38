package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decompkit/symreg/internal/constants"
)

// ErrNoProject reports that no project marker was found in the working
// directory or any of its parents.
var ErrNoProject = errors.New("project root not found")

// FindRoot walks up from dir and returns the first directory containing
// the project marker file.
func FindRoot(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	current := start
	for {
		marker := filepath.Join(current, constants.ConfigFile)
		if _, err := os.Stat(marker); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory",
				ErrNoProject, constants.ConfigFile, start)
		}
		current = parent
	}
}

// Resolve locates and loads the project configuration. The SYMREG_CONFIG
// environment variable short-circuits discovery with an explicit config
// file path; otherwise the marker is searched from the working directory
// upward.
func Resolve() (*Config, error) {
	if path := os.Getenv("SYMREG_CONFIG"); path != "" {
		return Load(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := FindRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(filepath.Join(root, constants.ConfigFile))
}
