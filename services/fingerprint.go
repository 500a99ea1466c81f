package services

import (
	_ "crypto/sha256"
	"flight-parser/domain"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/opencontainers/go-digest"
)

const defaultChunkSize = 64 * domain.KB

// Fingerprinter computes the content fingerprint of a file by streaming it
// chunk by chunk into a SHA-256 digester.
type Fingerprinter struct {
	chunkSize  int
	bufferPool *sync.Pool
}

// NewFingerprinter returns a Fingerprinter reading chunkSizeKb kilobytes at a time.
// A non-positive size falls back to 64 KB.
func NewFingerprinter(chunkSizeKb int) *Fingerprinter {
	return newFingerprinterWithChunk(chunkSizeKb * domain.KB)
}

func newFingerprinterWithChunk(chunkSize int) *Fingerprinter {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Fingerprinter{
		chunkSize: chunkSize,
		bufferPool: &sync.Pool{
			New: func() any {
				b := make([]byte, chunkSize)
				return &b
			},
		},
	}
}

func (f *Fingerprinter) Fingerprint(path string) (domain.Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	defer file.Close()

	bufPtr := f.bufferPool.Get().(*[]byte)
	defer f.bufferPool.Put(bufPtr)
	buf := *bufPtr

	digester := digest.Canonical.Digester()
	hash := digester.Hash()
	for {
		n, err := file.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", path, err)
		}
	}
	return domain.Fingerprint(digester.Digest().Encoded()), nil
}
