package deeplink

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/morikuni/failure/v2"
)

const upperhex = "0123456789ABCDEF"

// unreserved reports whether c is left as-is by EncodeComponent:
// ASCII letters, digits and - _ . ! ~ * ' ( )
func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// EncodeComponent percent-encodes s for use as a single URI component.
// It escapes exactly what ECMAScript's encodeURIComponent escapes.
func EncodeComponent(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", failure.New(ErrEncode,
			failure.Message("Text to encode is not valid UTF-8"))
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String(), nil
}

// DecodeComponent reverses EncodeComponent. '+' is kept literally.
func DecodeComponent(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(ErrInvalidLink),
			failure.Message("Malformed percent-encoding"))
	}
	if !utf8.ValidString(decoded) {
		return "", failure.New(ErrInvalidLink,
			failure.Message("Decoded text is not valid UTF-8"))
	}
	return decoded, nil
}
