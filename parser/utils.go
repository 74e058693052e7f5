package parser

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

var EncodingError = errors.New("EncodingError")

// Decode a UTF16LE buffer into a string. The whole buffer must be
// valid - an odd byte count or an unpaired surrogate is an error
// rather than being replaced with U+FFFD.
func UTF16ToString(buf []byte) (string, error) {
	if len(buf)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte count %v",
			EncodingError, len(buf))
	}

	u16s := make([]uint16, len(buf)/2)
	for i := range u16s {
		u16s[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}

	for i := 0; i < len(u16s); i++ {
		c := u16s[i]
		switch {
		case c >= 0xd800 && c < 0xdc00:
			if i+1 >= len(u16s) ||
				u16s[i+1] < 0xdc00 || u16s[i+1] > 0xdfff {
				return "", fmt.Errorf(
					"%w: unpaired surrogate at code unit %v",
					EncodingError, i)
			}
			i++

		case c >= 0xdc00 && c <= 0xdfff:
			return "", fmt.Errorf(
				"%w: unpaired surrogate at code unit %v",
				EncodingError, i)
		}
	}

	return string(utf16.Decode(u16s)), nil
}

// Strip the trailing NUL padding from a string field.
func TrimNulls(s string) string {
	return strings.TrimRight(s, "\x00")
}
