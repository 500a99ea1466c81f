package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flight.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestFingerprinter_Fingerprint(t *testing.T) {
	t.Run("matches the sha256 of the content", func(t *testing.T) {
		req := require.New(t)
		content := []byte("1,2,3\n4,5,6\n")
		path := writeTempFile(t, content)

		fp, err := NewFingerprinter(64).Fingerprint(path)

		req.NoError(err)
		sum := sha256.Sum256(content)
		req.Equal(hex.EncodeToString(sum[:]), string(fp))
		req.Len(string(fp), 64)
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		req := require.New(t)
		path := writeTempFile(t, []byte("altitude,velocity\n10,2\n"))
		hasher := NewFingerprinter(1)

		first, err := hasher.Fingerprint(path)
		req.NoError(err)
		second, err := hasher.Fingerprint(path)
		req.NoError(err)

		req.Equal(first, second)
	})

	t.Run("does not depend on the chunk size", func(t *testing.T) {
		req := require.New(t)
		content := make([]byte, 300*1024+17)
		_, err := rand.Read(content)
		req.NoError(err)
		path := writeTempFile(t, content)

		reference, err := newFingerprinterWithChunk(1).Fingerprint(path)
		req.NoError(err)
		for _, size := range []int{7, 512, 4096, 64 * 1024, 1024 * 1024} {
			fp, err := newFingerprinterWithChunk(size).Fingerprint(path)
			req.NoError(err)
			req.Equal(reference, fp, "chunk size %d", size)
		}
	})

	t.Run("empty file has the empty sha256", func(t *testing.T) {
		req := require.New(t)
		path := writeTempFile(t, nil)

		fp, err := NewFingerprinter(0).Fingerprint(path)

		req.NoError(err)
		req.Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", string(fp))
	})

	t.Run("fails on unreadable path", func(t *testing.T) {
		req := require.New(t)

		_, err := NewFingerprinter(64).Fingerprint(filepath.Join(t.TempDir(), "missing.txt"))

		req.Error(err)
		req.ErrorIs(err, os.ErrNotExist)
	})
}
