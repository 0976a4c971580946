// big endian, unsigned integer decoding
package bint

import "github.com/holiman/uint256"

// Decodes big-endian byte array into a uint64
// left-padded zero bytes are ignored.
// Only the trailing 8 bytes are kept if len(b) > 8
func Decode(b []byte) uint64 {
	var n uint64
	for i := 0; i < len(b); i++ {
		n = n << 8
		n += uint64(b[i])
	}
	return n
}

// Number of significant bytes in b
// (the length of b without left-padded zero bytes).
func Size(b []byte) int {
	for i := range b {
		if b[i] != 0 {
			return len(b) - i
		}
	}
	return 0
}

// Decodes big-endian byte array into a 256bit integer.
// Only the trailing 32 bytes are kept if len(b) > 32
func Uint256(b []byte) uint256.Int {
	var i uint256.Int
	i.SetBytes(b)
	return i
}
