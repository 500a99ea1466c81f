package repositories

import (
	"encoding/json"
	"errors"
	"flight-parser/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const keychainPrefix = "keychain:"

// KeychainBadgerCache stores one badger key per fingerprint, so inserts are
// transactional and never rewrite unrelated entries.
type KeychainBadgerCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewKeychainBadgerCache(db *badger.DB, log *slog.Logger) *KeychainBadgerCache {
	return &KeychainBadgerCache{db: db, log: log}
}

func keychainKey(fp domain.Fingerprint) []byte {
	return []byte(keychainPrefix + string(fp))
}

func (c *KeychainBadgerCache) Lookup(fp domain.Fingerprint) (domain.Keychains, bool) {
	var entry domain.CacheEntry
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keychainKey(fp))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Unable to read keychain entry", "fingerprint", fp.Short(), "error", err)
		return nil, false
	}
	keychains, err := DecodeEntry(entry)
	if err != nil {
		c.log.Warn("Ignoring undecodable keychain cache entry", "fingerprint", fp.Short(), "error", err)
		return nil, false
	}
	return keychains, true
}

func (c *KeychainBadgerCache) Store(fp domain.Fingerprint, keychains domain.Keychains) {
	entry, err := EncodeEntry(keychains)
	if err != nil {
		c.log.Warn("Keychains not cached", "fingerprint", fp.Short(), "error", err)
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		c.log.Warn("Keychains not cached", "fingerprint", fp.Short(), "error", err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keychainKey(fp), data)
	})
	if err != nil {
		c.log.Warn("Unable to write keychain entry", "fingerprint", fp.Short(), "error", err)
	}
}

// Entries lists every stored entry, skipping values that are not valid entries.
func (c *KeychainBadgerCache) Entries() (map[domain.Fingerprint]domain.CacheEntry, error) {
	entries := make(map[domain.Fingerprint]domain.CacheEntry)
	prefix := []byte(keychainPrefix)
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			fp := domain.Fingerprint(item.Key()[len(prefix):])
			err := item.Value(func(v []byte) error {
				var entry domain.CacheEntry
				if err := json.Unmarshal(v, &entry); err != nil {
					c.log.Warn("Skipping malformed keychain entry", "fingerprint", fp.Short(), "error", err)
					return nil
				}
				entries[fp] = entry
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during keychain scan: %w", err)
	}
	return entries, nil
}

func (c *KeychainBadgerCache) Purge() error {
	return c.db.DropPrefix([]byte(keychainPrefix))
}
