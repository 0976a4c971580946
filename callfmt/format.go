package callfmt

import (
	"fmt"
	"strings"
)

// Selects the representation of numeric fields.
// The zero value is not a valid format.
type NumberFormat uint8

const (
	_ NumberFormat = iota
	NumberHex
	NumberStr
	NumberBigInt
	NumberNative
	NumberU256
)

var numberNames = [...]string{
	NumberHex:    "NUMBER_HEX",
	NumberStr:    "NUMBER_STR",
	NumberBigInt: "NUMBER_BIGINT",
	NumberNative: "NUMBER_NUMBER",
	NumberU256:   "NUMBER_U256",
}

func (f NumberFormat) Valid() bool {
	return f > 0 && int(f) < len(numberNames)
}

func (f NumberFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("NumberFormat(%d)", f)
	}
	return numberNames[f]
}

// Accepts the full name (NUMBER_HEX) or the short
// name (HEX). Case insensitive.
func ParseNumberFormat(s string) (NumberFormat, error) {
	i, ok := lookup(numberNames[:], "NUMBER_", s)
	if !ok {
		return 0, fmt.Errorf("%w: number %q", ErrUnsupportedFormat, s)
	}
	return NumberFormat(i), nil
}

func (f NumberFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return []byte(f.String()), nil
}

func (f *NumberFormat) UnmarshalText(b []byte) error {
	nf, err := ParseNumberFormat(string(b))
	*f = nf
	return err
}

// Selects the representation of byte-array fields.
// The zero value is not a valid format.
type BytesFormat uint8

const (
	_ BytesFormat = iota
	BytesHex
	BytesBuffer
	BytesArray
)

var bytesNames = [...]string{
	BytesHex:    "BYTES_HEX",
	BytesBuffer: "BYTES_BUFFER",
	BytesArray:  "BYTES_UINT8ARRAY",
}

func (f BytesFormat) Valid() bool {
	return f > 0 && int(f) < len(bytesNames)
}

func (f BytesFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("BytesFormat(%d)", f)
	}
	return bytesNames[f]
}

// Accepts the full name (BYTES_BUFFER) or the short
// name (BUFFER). Case insensitive.
func ParseBytesFormat(s string) (BytesFormat, error) {
	i, ok := lookup(bytesNames[:], "BYTES_", s)
	if !ok {
		return 0, fmt.Errorf("%w: bytes %q", ErrUnsupportedFormat, s)
	}
	return BytesFormat(i), nil
}

func (f BytesFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return []byte(f.String()), nil
}

func (f *BytesFormat) UnmarshalText(b []byte) error {
	bf, err := ParseBytesFormat(string(b))
	*f = bf
	return err
}

func lookup(names []string, prefix, s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	for i := range names {
		if names[i] == "" {
			continue
		}
		if names[i] == s || names[i] == prefix+s {
			return i, true
		}
	}
	return 0, false
}

// Config selects the output representation for each kind
// of field in a response. The two selectors are independent:
// Number never affects bytes fields and Bytes never affects
// numeric fields.
type Config struct {
	Number NumberFormat `json:"number"`
	Bytes  BytesFormat  `json:"bytes"`

	// Permits NumberNative and NumberU256 to keep
	// only the low order bits of values that don't fit.
	Lossy bool `json:"lossy,omitempty"`
}

var Default = Config{Number: NumberBigInt, Bytes: BytesHex}

func (c Config) Validate() error {
	if !c.Number.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.Number)
	}
	if !c.Bytes.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.Bytes)
	}
	return nil
}

func (c Config) String() string {
	s := fmt.Sprintf("number=%s bytes=%s", c.Number, c.Bytes)
	if c.Lossy {
		s += " lossy"
	}
	return s
}
