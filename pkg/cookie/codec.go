package cookie

import (
	"net/url"
	"strings"
)

// Encoder turns a raw value into a string safe to place in a Set-Cookie header.
type Encoder func(value string) string

// Decoder reverses an Encoder. A failed decode makes the Manager fall back
// to the raw header value.
type Decoder func(value string) (string, error)

// encodeValue percent-encodes everything outside the cookie-octet range
// so arbitrary strings survive a Set/Get round trip.
func encodeValue(value string) string {
	return url.PathEscape(value)
}

func decodeValue(value string) (string, error) {
	if !strings.Contains(value, "%") {
		return value, nil
	}
	return url.PathUnescape(value)
}

// RawEncoder writes values unchanged. Values containing bytes that are not
// allowed in a cookie are then rejected with ErrInvalidCookie.
func RawEncoder(value string) string { return value }

// RawDecoder returns header values unchanged.
func RawDecoder(value string) (string, error) { return value, nil }
