package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decompkit/symreg/internal/constants"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, constants.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir switches into dir until the test ends, standing in for
// testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "registry:\n  path: lists/fns.csv\n  base: \"0x8000000000\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lists/fns.csv", cfg.Registry.Path)
	assert.Equal(t, filepath.Join(dir, "lists/fns.csv"), cfg.RegistryPath())
	assert.Equal(t, dir, cfg.Root())

	base, err := cfg.AddressBase()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000000000), base)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "registry: {}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultRegistryPath, cfg.Registry.Path)
	assert.Equal(t, filepath.Join(dir, constants.DefaultRegistryPath), cfg.RegistryPath())

	base, err := cfg.AddressBase()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultAddressBase, base)
}

func TestLoad_AbsoluteRegistryPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "registry:\n  path: /srv/decomp/functions.csv\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/decomp/functions.csv", cfg.RegistryPath())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), constants.ConfigFile))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "registry: [not a map\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("bad base", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "registry:\n  base: \"0xnope\"\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0xnope")
	})
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.ConfigFile)

	cfg := Default()
	cfg.Registry.Path = "data/fn.csv"
	require.NoError(t, cfg.Save(path))
	assert.FileExists(t, path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/fn.csv", loaded.Registry.Path)

	base, err := loaded.AddressBase()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultAddressBase, base)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "registry: {}\n")

	nested := filepath.Join(root, "src", "game", "ai")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)

	// The root itself also resolves.
	found, err = FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRoot_NotFound(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestResolve_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "registry:\n  path: env/fns.csv\n")
	t.Setenv("SYMREG_CONFIG", path)

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "env/fns.csv", cfg.Registry.Path)
}

func TestResolve_WalksUpFromWorkingDirectory(t *testing.T) {
	t.Setenv("SYMREG_CONFIG", "")

	root := t.TempDir()
	writeConfigFile(t, root, "registry:\n  path: walk/fns.csv\n")
	nested := filepath.Join(root, "build", "obj")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "walk/fns.csv", cfg.Registry.Path)
}
