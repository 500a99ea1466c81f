package repositories

import (
	"encoding/json"
	"errors"
	"flight-parser/domain"
	"log/slog"
	"os"
	"path/filepath"
)

// KeychainFileCache keeps every cached keychain in a single JSON document.
// The document is read on each lookup and rewritten whole on each insert.
// There is no locking: two processes storing at the same time race and the
// last writer wins.
type KeychainFileCache struct {
	path string
	log  *slog.Logger
}

func NewKeychainFileCache(path string, log *slog.Logger) *KeychainFileCache {
	return &KeychainFileCache{path: path, log: log}
}

func (c *KeychainFileCache) Path() string {
	return c.path
}

// Load returns the persisted mapping. A missing, unreadable or malformed
// document yields an empty mapping; the next Save overwrites it.
func (c *KeychainFileCache) Load() map[domain.Fingerprint]domain.CacheEntry {
	entries := make(map[domain.Fingerprint]domain.CacheEntry)
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries
	}
	if err != nil {
		c.log.Warn("Unable to read keychain cache, starting empty", "path", c.path, "error", err)
		return entries
	}
	var loaded map[domain.Fingerprint]domain.CacheEntry
	if err := json.Unmarshal(data, &loaded); err != nil {
		c.log.Warn("Keychain cache is corrupt, starting empty", "path", c.path, "error", err)
		return entries
	}
	for fp, entry := range loaded {
		entries[fp] = entry
	}
	return entries
}

// Save replaces the document with entries. Failures are only logged.
func (c *KeychainFileCache) Save(entries map[domain.Fingerprint]domain.CacheEntry) {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		c.log.Warn("Unable to create keychain cache directory", "path", c.path, "error", err)
		return
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		c.log.Warn("Unable to serialize keychain cache", "error", err)
		return
	}
	// Write next to the target then rename, so readers never see half a document.
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".keychain-cache-*")
	if err != nil {
		c.log.Warn("Unable to write keychain cache", "path", c.path, "error", err)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		c.log.Warn("Unable to write keychain cache", "path", c.path, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		c.log.Warn("Unable to write keychain cache", "path", c.path, "error", err)
		return
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		c.log.Warn("Unable to write keychain cache", "path", c.path, "error", err)
	}
}

func (c *KeychainFileCache) Lookup(fp domain.Fingerprint) (domain.Keychains, bool) {
	entry, ok := c.Load()[fp]
	if !ok {
		return nil, false
	}
	keychains, err := DecodeEntry(entry)
	if err != nil {
		c.log.Warn("Ignoring undecodable keychain cache entry", "fingerprint", fp.Short(), "error", err)
		return nil, false
	}
	return keychains, true
}

func (c *KeychainFileCache) Store(fp domain.Fingerprint, keychains domain.Keychains) {
	entry, err := EncodeEntry(keychains)
	if err != nil {
		c.log.Warn("Keychains not cached", "fingerprint", fp.Short(), "error", err)
		return
	}
	entries := c.Load()
	entries[fp] = entry
	c.Save(entries)
}

func (c *KeychainFileCache) Entries() (map[domain.Fingerprint]domain.CacheEntry, error) {
	return c.Load(), nil
}

func (c *KeychainFileCache) Purge() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
