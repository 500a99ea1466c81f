package mimetypes

import "mime"

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextCSV   MIME = "text/csv"

	ApplicationJSON        MIME = "application/json"
	ApplicationZip         MIME = "application/zip"
	ApplicationOctetStream MIME = "application/octet-stream"
)

var known = []MIME{TextPlain, TextCSV, ApplicationJSON, ApplicationZip, ApplicationOctetStream}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// ToMIME strips parameters from a detected media type and maps it onto a known MIME.
func ToMIME(detected string) MIME {
	for _, m := range known {
		if _, ok := Matches(detected, m); ok {
			return m
		}
	}
	return Unknown
}

// IsText reports whether a log of this type can be read line by line.
func IsText(m MIME) bool {
	return m == TextPlain || m == TextCSV || m == ApplicationJSON
}
