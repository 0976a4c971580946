package eth

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidHex = errors.New("invalid hex")

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Decodes a byte payload. The 0x prefix is optional.
// Odd length input and non-hex characters
// return an error wrapping ErrInvalidHex.
// Empty input returns an empty, non-nil slice.
func DecodeHex(s string) ([]byte, error) {
	h := trim0x(s)
	if len(h)%2 == 1 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(h))
	}
	b := make([]byte, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		hi, ok := nibble(h[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidHex, h[i], i)
		}
		lo, ok := nibble(h[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidHex, h[i+1], i+1)
		}
		b[i/2] = hi<<4 | lo
	}
	return b, nil
}

// Decodes a numeric payload (a json-rpc quantity).
// Unlike DecodeHex, odd length input is left-padded with 0.
func DecodeQuantity(s string) ([]byte, error) {
	h := trim0x(s)
	if len(h)%2 == 1 {
		h = "0" + h
	}
	return DecodeHex(h)
}

// 0x prefixed, lowercase hex encoded string
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
