package domain

// Fingerprint is the lowercase hex SHA-256 of a file's full content.
// It is a lookup key only and never proves anything about the file's origin.
type Fingerprint string

// Short returns a prefix suitable for logs and listings.
func (f Fingerprint) Short() string {
	if len(f) > 12 {
		return string(f[:12])
	}
	return string(f)
}
