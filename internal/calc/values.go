package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/vipcxj/iset/intervalset"
)

// The numeric parsers use base 0, so 0x / 0o / 0b prefixes work on the
// command line.

func parseUint8(s string) (intervalset.Uint8, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	return intervalset.Uint8(n), err
}

func parseUint16(s string) (intervalset.Uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	return intervalset.Uint16(n), err
}

func parseUint32(s string) (intervalset.Uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	return intervalset.Uint32(n), err
}

func parseUint64(s string) (intervalset.Uint64, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	return intervalset.Uint64(n), err
}

func parseInt8(s string) (intervalset.Int8, error) {
	n, err := strconv.ParseInt(s, 0, 8)
	return intervalset.Int8(n), err
}

func parseInt16(s string) (intervalset.Int16, error) {
	n, err := strconv.ParseInt(s, 0, 16)
	return intervalset.Int16(n), err
}

func parseInt32(s string) (intervalset.Int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	return intervalset.Int32(n), err
}

func parseInt64(s string) (intervalset.Int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	return intervalset.Int64(n), err
}

// parseChar accepts a single literal character or a U+XXXX code point.
// The U+ form is the way to spell characters the range syntax reserves,
// like '.' or ','.
func parseChar(s string) (intervalset.Rune, error) {
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid code point %q", s)
		}
		if n > unicode.MaxRune || (n >= 0xD800 && n <= 0xDFFF) {
			return 0, errors.Errorf("not a Unicode scalar value: %s", s)
		}
		return intervalset.Rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && s != "�" {
		return 0, errors.Errorf("expected a single character or U+XXXX, got %q", s)
	}
	return intervalset.Rune(r), nil
}
