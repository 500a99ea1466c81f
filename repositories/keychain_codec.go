package repositories

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flight-parser/domain"
	perrors "flight-parser/errors"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// EncodeEntry writes keychains as plain JSON when possible and falls back to
// base64-wrapped CBOR, tagging the entry so DecodeEntry knows which path to take.
// Only values made of JSON-native kinds take the JSON path: encoding/json would
// silently turn []byte into a base64 string.
func EncodeEntry(keychains domain.Keychains) (domain.CacheEntry, error) {
	if jsonNative(reflect.ValueOf(keychains)) {
		if raw, err := json.Marshal(keychains); err == nil {
			return domain.CacheEntry{Type: domain.EncodingJSON, Value: raw}, nil
		}
	}
	bin, err := cbor.Marshal(keychains)
	if err != nil {
		return domain.CacheEntry{}, fmt.Errorf("keychains are neither json nor cbor encodable: %w", err)
	}
	raw, err := json.Marshal(base64.StdEncoding.EncodeToString(bin))
	if err != nil {
		return domain.CacheEntry{}, err
	}
	return domain.CacheEntry{Type: domain.EncodingCBOR, Value: raw}, nil
}

// DecodeEntry is the exact inverse of EncodeEntry.
// JSON numbers come back as json.Number so large integers survive.
func DecodeEntry(entry domain.CacheEntry) (domain.Keychains, error) {
	switch entry.Type {
	case domain.EncodingJSON:
		dec := json.NewDecoder(bytes.NewReader(entry.Value))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode json entry: %w", err)
		}
		return v, nil
	case domain.EncodingCBOR:
		var encoded string
		if err := json.Unmarshal(entry.Value, &encoded); err != nil {
			return nil, fmt.Errorf("decode cbor entry: %w", err)
		}
		bin, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode cbor entry: %w", err)
		}
		var v any
		if err := cbor.Unmarshal(bin, &v); err != nil {
			return nil, fmt.Errorf("decode cbor entry: %w", err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", perrors.ErrUnknownEncoder, entry.Type)
	}
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// jsonNative reports whether v decodes back from JSON with the same shape:
// nil, bools, numbers, strings, string-keyed maps and non-byte slices.
func jsonNative(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if v.Type() == jsonNumberType {
		return true
	}
	switch v.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Interface, reflect.Pointer:
		return v.IsNil() || jsonNative(v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if !jsonNative(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := v.MapRange()
		for iter.Next() {
			if !jsonNative(iter.Value()) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
