// ethereum json-rpc types
package eth

import (
	"fmt"
	"strconv"
)

type Uint64 uint64

func decode(b string) (uint64, error) {
	if len(b) > 16 {
		return 0, fmt.Errorf("%w: %d digits overflows uint64", ErrInvalidHex, len(b))
	}
	var res uint64
	for i := range b {
		n, ok := nibble(b[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHex, b)
		}
		res = (res << 4) | uint64(n)
	}
	return res, nil
}

func unquote(data []byte) ([]byte, error) {
	if len(data) < 4 || data[0] != '"' || data[len(data)-1] != '"' {
		return nil, fmt.Errorf("must be a quoted 0x string. got: %.32s", data)
	}
	return []byte(trim0x(string(data[1 : len(data)-1]))), nil
}

func (hn *Uint64) UnmarshalJSON(data []byte) error {
	data, err := unquote(data)
	if err != nil {
		return err
	}
	n, err := decode(string(data))
	*hn = Uint64(n)
	return err
}

func (hn Uint64) MarshalJSON() ([]byte, error) {
	return []byte(`"0x` + strconv.FormatUint(uint64(hn), 16) + `"`), nil
}

type Bytes []byte

func (hb *Bytes) Bytes() []byte {
	return []byte(*hb)
}

func (hb *Bytes) UnmarshalJSON(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("must be at leaset 4 bytes")
	}
	b, err := DecodeHex(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	hb.Write(b)
	return nil
}

func (hb Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + EncodeHex(hb) + `"`), nil
}

func (hb Bytes) String() string {
	return EncodeHex(hb)
}

// Replaces the contents of hb with p.
// Reuses the underlying array when it is large enough.
func (hb *Bytes) Write(p []byte) (int, error) {
	if len(*hb) < len(p) {
		*hb = append(*hb, make([]byte, len(p)-len(*hb))...)
	}
	*hb = (*hb)[:len(p)]
	return copy(*hb, p), nil
}

// Appends p to hb, growing it as needed.
func (hb *Bytes) Append(p ...byte) {
	*hb = append(*hb, p...)
}
