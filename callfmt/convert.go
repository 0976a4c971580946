package callfmt

import (
	"fmt"
	"math/big"

	"github.com/indexsupply/ethcall/bint"
	"github.com/indexsupply/ethcall/eth"

	"github.com/shopspring/decimal"
)

// Returns b in the representation selected by f.
// The result never aliases b.
func FormatBytes(b []byte, f BytesFormat) (Value, error) {
	switch f {
	case BytesHex:
		return Value{Rep: RepHex, Hex: eth.EncodeHex(b)}, nil
	case BytesBuffer:
		buf := make(eth.Bytes, len(b))
		copy(buf, b)
		return Value{Rep: RepBuf, Buf: buf}, nil
	case BytesArray:
		return Value{Rep: RepArray, Array: NewArray(b)}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Interprets s as a big-endian unsigned integer (odd
// length allowed) and returns it in the representation
// selected by f.
//
// NumberNative and NumberU256 return ErrPrecisionLoss
// when the value needs more than 64 or 256 bits.
// With lossy set, the low order bits are kept instead.
func FormatNumber(s string, f NumberFormat, lossy bool) (Value, error) {
	b, err := eth.DecodeQuantity(s)
	if err != nil {
		return Value{}, err
	}
	switch f {
	case NumberHex:
		return Value{Rep: RepHex, Hex: "0x" + new(big.Int).SetBytes(b).Text(16)}, nil
	case NumberStr:
		d := decimal.NewFromBigInt(new(big.Int).SetBytes(b), 0)
		return Value{Rep: RepDec, Dec: d.String()}, nil
	case NumberBigInt:
		return Value{Rep: RepBig, Big: new(big.Int).SetBytes(b)}, nil
	case NumberNative:
		if n := bint.Size(b); n > 8 && !lossy {
			return Value{}, fmt.Errorf("%w: %s needs %d bytes. uint64 holds 8", ErrPrecisionLoss, s, n)
		}
		return Value{Rep: RepNum, Num: bint.Decode(b)}, nil
	case NumberU256:
		if n := bint.Size(b); n > 32 && !lossy {
			return Value{}, fmt.Errorf("%w: %s needs %d bytes. uint256 holds 32", ErrPrecisionLoss, s, n)
		}
		return Value{Rep: RepU256, U256: bint.Uint256(b)}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}
