package repositories

import (
	"encoding/json"
	"flight-parser/domain"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const (
	fpA domain.Fingerprint = "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92"
	fpB domain.Fingerprint = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"
)

func newFileCache(t *testing.T) *KeychainFileCache {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewKeychainFileCache(filepath.Join(t.TempDir(), "cache", "keychains.json"), log)
}

func TestKeychainFileCache_Load(t *testing.T) {
	t.Run("missing document is an empty mapping", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)

		entries := cache.Load()

		req.NotNil(entries)
		req.Empty(entries)
	})

	t.Run("garbage document is an empty mapping", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)
		req.NoError(os.MkdirAll(filepath.Dir(cache.Path()), 0o755))
		req.NoError(os.WriteFile(cache.Path(), []byte{0xde, 0xad, 0xbe, 0xef, '{'}, 0o644))

		entries := cache.Load()

		req.NotNil(entries)
		req.Empty(entries)
	})

	t.Run("unreadable document is an empty mapping", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)
		// A directory at the document path cannot be read as a file.
		req.NoError(os.MkdirAll(cache.Path(), 0o755))

		req.Empty(cache.Load())
	})

	t.Run("null document is an empty mapping", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)
		req.NoError(os.MkdirAll(filepath.Dir(cache.Path()), 0o755))
		req.NoError(os.WriteFile(cache.Path(), []byte("null"), 0o644))

		entries := cache.Load()

		req.NotNil(entries)
		req.Empty(entries)
	})
}

func TestKeychainFileCache_SaveThenLoad(t *testing.T) {
	req := require.New(t)
	cache := newFileCache(t)
	jsonEntry, err := EncodeEntry(map[string]any{"aesKey": "a2V5"})
	req.NoError(err)
	cborEntry, err := EncodeEntry(map[any]any{uint64(7): "seven"})
	req.NoError(err)
	entries := map[domain.Fingerprint]domain.CacheEntry{fpA: jsonEntry, fpB: cborEntry}

	cache.Save(entries)
	loaded := cache.Load()

	req.Len(loaded, 2)
	req.Equal(domain.EncodingJSON, loaded[fpA].Type)
	req.JSONEq(string(jsonEntry.Value), string(loaded[fpA].Value))
	req.Equal(domain.EncodingCBOR, loaded[fpB].Type)
	req.JSONEq(string(cborEntry.Value), string(loaded[fpB].Value))

	// The persisted layout is {"<fingerprint>": {"type": ..., "value": ...}}.
	raw, err := os.ReadFile(cache.Path())
	req.NoError(err)
	var document map[string]map[string]any
	req.NoError(json.Unmarshal(raw, &document))
	req.Equal("json", document[string(fpA)]["type"])
	req.Equal("cbor", document[string(fpB)]["type"])
}

func TestKeychainFileCache_SaveRecoversFromCorruption(t *testing.T) {
	req := require.New(t)
	cache := newFileCache(t)
	req.NoError(os.MkdirAll(filepath.Dir(cache.Path()), 0o755))
	req.NoError(os.WriteFile(cache.Path(), []byte("not json at all"), 0o644))

	cache.Store(fpA, []any{"k1"})

	keychains, ok := cache.Lookup(fpA)
	req.True(ok)
	req.Equal([]any{"k1"}, keychains)
}

func TestKeychainFileCache_SaveFailureIsSwallowed(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	req.NoError(os.WriteFile(blocker, []byte("x"), 0o644))
	// The parent of the document is a regular file, so the directory cannot be created.
	cache := NewKeychainFileCache(filepath.Join(blocker, "keychains.json"), logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NotPanics(func() { cache.Store(fpA, "value") })
	_, ok := cache.Lookup(fpA)
	req.False(ok)
}

func TestKeychainFileCache_LookupAndStore(t *testing.T) {
	t.Run("miss on empty cache", func(t *testing.T) {
		req := require.New(t)
		_, ok := newFileCache(t).Lookup(fpA)
		req.False(ok)
	})

	t.Run("store keeps existing entries", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)

		cache.Store(fpA, "first")
		cache.Store(fpB, "second")

		req.Len(cache.Load(), 2)
		got, ok := cache.Lookup(fpA)
		req.True(ok)
		req.Equal("first", got)
	})

	t.Run("undecodable entry is a miss", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)
		cache.Save(map[domain.Fingerprint]domain.CacheEntry{
			fpA: {Type: "pickle", Value: json.RawMessage(`"gASVAAAA"`)},
		})

		_, ok := cache.Lookup(fpA)
		req.False(ok)
	})

	t.Run("unencodable keychains are dropped", func(t *testing.T) {
		req := require.New(t)
		cache := newFileCache(t)

		cache.Store(fpA, func() {})

		req.Empty(cache.Load())
	})
}

func TestKeychainFileCache_Purge(t *testing.T) {
	req := require.New(t)
	cache := newFileCache(t)
	cache.Store(fpA, "value")

	req.NoError(cache.Purge())
	req.NoError(cache.Purge())

	entries, err := cache.Entries()
	req.NoError(err)
	req.Empty(entries)
}
