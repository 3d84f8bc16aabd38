package registry

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the file at path with xxh3-128 and returns the hex
// digest. Fingerprints decide whether a cached snapshot is stale without
// re-parsing the whole registry.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open registry: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash registry: %w", err)
	}
	sum := h.Sum128().Bytes()
	return hex.EncodeToString(sum[:]), nil
}

// Cache holds a loaded registry snapshot pinned to the fingerprint of the
// file it came from. Long-lived tools ask the cache instead of re-parsing
// the file on every operation.
type Cache struct {
	path   string
	loader *Loader

	mu          sync.RWMutex
	loaded      bool
	entries     []Entry
	fingerprint string
}

// NewCache returns an empty cache for the registry at path. Nothing is
// read until the first Snapshot or Refresh call.
func NewCache(path string, base uint64, logger zerolog.Logger) *Cache {
	return &Cache{
		path:   path,
		loader: NewLoader(base, logger),
	}
}

// Snapshot returns the cached entries, loading the file on first use.
// Callers must treat the returned slice as immutable while scans run
// against it.
func (c *Cache) Snapshot() ([]Entry, error) {
	c.mu.RLock()
	if c.loaded {
		entries := c.entries
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.entries, nil
	}
	return c.reload()
}

// Fingerprint returns the digest of the file backing the current
// snapshot, or "" before the first load.
func (c *Cache) Fingerprint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fingerprint
}

// Stale re-hashes the backing file and reports whether it no longer
// matches the loaded snapshot. An unloaded cache is always stale.
func (c *Cache) Stale() (bool, error) {
	current, err := Fingerprint(c.path)
	if err != nil {
		return false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loaded || current != c.fingerprint, nil
}

// Refresh reloads the registry if the backing file changed since the
// last load. It reports whether a reload happened.
func (c *Cache) Refresh() (bool, error) {
	current, err := Fingerprint(c.path)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && current == c.fingerprint {
		return false, nil
	}
	if _, err := c.reload(); err != nil {
		return false, err
	}
	return true, nil
}

// reload must be called with mu held for writing. It hashes before
// parsing: if the file changes in between, the stored fingerprint is
// older than the entries and the next Stale check fires again.
func (c *Cache) reload() ([]Entry, error) {
	fingerprint, err := Fingerprint(c.path)
	if err != nil {
		return nil, err
	}
	entries, err := c.loader.Load(c.path)
	if err != nil {
		return nil, err
	}

	c.entries = entries
	c.fingerprint = fingerprint
	c.loaded = true
	return entries, nil
}
