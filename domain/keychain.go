package domain

import "encoding/json"

// Keychains is the opaque artifact returned by a decoder's key-retrieval step.
// Its shape belongs to the decoder; the cache only stores and returns it.
type Keychains = any

type EntryEncoding string

const (
	// EncodingJSON stores the artifact as plain JSON.
	EncodingJSON EntryEncoding = "json"
	// EncodingCBOR stores base64(CBOR) for artifacts JSON cannot represent.
	EncodingCBOR EntryEncoding = "cbor"
)

// CacheEntry is the persisted form of a Keychains value.
type CacheEntry struct {
	Type  EntryEncoding   `json:"type"`
	Value json.RawMessage `json:"value"`
}
