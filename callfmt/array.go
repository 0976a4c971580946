package callfmt

import "github.com/indexsupply/ethcall/eth"

// Array is an immutable, fixed-length view of a byte sequence.
// Arrays are comparable: a == b when their contents are equal.
// The zero value is an empty Array.
type Array struct {
	s string
}

// Copies b. Later changes to b are not visible through the Array.
func NewArray(b []byte) Array {
	return Array{s: string(b)}
}

func (a Array) Len() int { return len(a.s) }

// Panics if i is out of range.
func (a Array) At(i int) byte { return a.s[i] }

// Returns a copy of the contents.
func (a Array) Bytes() []byte { return []byte(a.s) }

// Returns the contents as a 32 byte word.
// ok is false unless Len() == 32.
func (a Array) Word() (w [32]byte, ok bool) {
	if len(a.s) != 32 {
		return w, false
	}
	copy(w[:], a.s)
	return w, true
}

func (a Array) String() string {
	return eth.EncodeHex([]byte(a.s))
}
