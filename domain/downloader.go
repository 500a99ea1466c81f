package domain

import (
	"errors"
	"flight-parser/domain/mimetypes"
	"os"
)

// TmpFilePattern names downloaded flight logs inside the temporary directory.
const TmpFilePattern = "flight-*.log"

// TmpFile is a downloaded flight log waiting to be decoded.
type TmpFile struct {
	Path              string
	Size              int64
	RawMimeType       string
	EffectiveMimeType mimetypes.MIME
}

// Remove deletes the file from disk. Removing an already deleted file is not an error.
func (t *TmpFile) Remove() error {
	if t == nil || t.Path == "" {
		return nil
	}
	if err := os.Remove(t.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

const KB = 1024
const MB = KB * KB
