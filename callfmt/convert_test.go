package callfmt

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/indexsupply/ethcall/eth"

	"kr.dev/diff"
)

var (
	zero32  = "0x" + strings.Repeat("00", 32)
	owner   = "0xABCDEF0123456789abcdef0123456789ABCD1234"
	owner32 = "0x" + strings.Repeat("0", 24) + strings.ToLower(owner[2:])
)

func TestFormatBytes_Zero(t *testing.T) {
	b, err := eth.DecodeHex(zero32)
	diff.Test(t, t.Fatalf, nil, err)

	v, err := FormatBytes(b, BytesHex)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, RepHex, v.Rep)
	diff.Test(t, t.Errorf, zero32, v.Hex)

	v, err = FormatBytes(b, BytesBuffer)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, RepBuf, v.Rep)
	diff.Test(t, t.Errorf, eth.Bytes(make([]byte, 32)), v.Buf)

	v, err = FormatBytes(b, BytesArray)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, RepArray, v.Rep)
	diff.Test(t, t.Errorf, 32, v.Array.Len())
	w, ok := v.Array.Word()
	diff.Test(t, t.Errorf, true, ok)
	diff.Test(t, t.Errorf, [32]byte{}, w)
}

func TestFormatBytes_Address(t *testing.T) {
	b, err := eth.DecodeHex("0x" + strings.Repeat("0", 24) + owner[2:])
	diff.Test(t, t.Fatalf, nil, err)
	want, err := eth.DecodeHex(owner32)
	diff.Test(t, t.Fatalf, nil, err)

	v, err := FormatBytes(b, BytesHex)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, owner32, v.Hex)

	v, err = FormatBytes(b, BytesBuffer)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, eth.Bytes(want), v.Buf)

	v, err = FormatBytes(b, BytesArray)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, NewArray(want), v.Array)
}

func TestFormatBytes_Equivalent(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0xff, 0x00}, 40),
	}
	for _, b := range inputs {
		for _, f := range []BytesFormat{BytesHex, BytesBuffer, BytesArray} {
			v, err := FormatBytes(b, f)
			diff.Test(t, t.Fatalf, nil, err)
			got, ok := v.Bytes()
			diff.Test(t, t.Fatalf, true, ok)
			if !bytes.Equal(b, got) {
				t.Errorf("%s: want %x got %x", f, b, got)
			}
		}
	}
}

func TestFormatBytes_NoAlias(t *testing.T) {
	b := []byte{1, 2, 3}

	v, err := FormatBytes(b, BytesBuffer)
	diff.Test(t, t.Fatalf, nil, err)
	v.Buf[0] = 42
	v.Buf.Append(4)
	diff.Test(t, t.Errorf, []byte{1, 2, 3}, b)

	v, err = FormatBytes(b, BytesArray)
	diff.Test(t, t.Fatalf, nil, err)
	b[0] = 42
	diff.Test(t, t.Errorf, byte(1), v.Array.At(0))
	v.Array.Bytes()[1] = 42
	diff.Test(t, t.Errorf, byte(2), v.Array.At(1))
}

func TestFormatBytes_Unsupported(t *testing.T) {
	for _, f := range []BytesFormat{0, 4, 255} {
		_, err := FormatBytes([]byte{1}, f)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: want ErrUnsupportedFormat got: %v", f, err)
		}
	}
}

func TestArray(t *testing.T) {
	a, b := NewArray([]byte{1, 2}), NewArray([]byte{1, 2})
	diff.Test(t, t.Errorf, true, a == b)
	diff.Test(t, t.Errorf, false, a == NewArray([]byte{1, 2, 0}))
	diff.Test(t, t.Errorf, true, Array{} == NewArray(nil))
	diff.Test(t, t.Errorf, "0x0102", a.String())
	_, ok := a.Word()
	diff.Test(t, t.Errorf, false, ok)
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		input string
		hex   string
		dec   string
	}{
		{"0x0", "0x0", "0"},
		{"0x", "0x0", "0"},
		{zero32, "0x0", "0"},
		{"0x2a", "0x2a", "42"},
		{"0x002A", "0x2a", "42"},
		{"0x1167e6e", "0x1167e6e", "18251374"},
		{"0xffffffffffffffff", "0xffffffffffffffff", "18446744073709551615"},
		{"0x10000000000000000", "0x10000000000000000", "18446744073709551616"},
		{
			"0x" + strings.Repeat("f", 64),
			"0x" + strings.Repeat("f", 64),
			"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
	}
	for _, tc := range cases {
		v, err := FormatNumber(tc.input, NumberHex, false)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.hex, v.Hex)

		v, err = FormatNumber(tc.input, NumberStr, false)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.dec, v.Dec)

		v, err = FormatNumber(tc.input, NumberBigInt, false)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.dec, v.Big.String())

		v, err = FormatNumber(tc.input, NumberU256, false)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.dec, v.U256.Dec())
	}
}

func TestFormatNumber_Equivalent(t *testing.T) {
	inputs := []string{"0x0", "0x1", "0xdeadbeef", "0x" + strings.Repeat("9", 50)}
	for _, input := range inputs {
		want, ok := new(big.Int).SetString(strings.TrimPrefix(input, "0x"), 16)
		diff.Test(t, t.Fatalf, true, ok)
		for _, f := range []NumberFormat{NumberHex, NumberStr, NumberBigInt, NumberU256} {
			v, err := FormatNumber(input, f, false)
			diff.Test(t, t.Fatalf, nil, err)
			got, ok := v.BigInt()
			diff.Test(t, t.Fatalf, true, ok)
			if got.Cmp(want) != 0 {
				t.Errorf("%s %s: want %s got %s", input, f, want, got)
			}
		}
	}
}

func TestFormatNumber_Native(t *testing.T) {
	v, err := FormatNumber("0x0", NumberNative, false)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, RepNum, v.Rep)
	diff.Test(t, t.Errorf, uint64(0), v.Num)

	v, err = FormatNumber("0x00000000000000000000ffffffffffffffff", NumberNative, false)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, uint64(1<<64-1), v.Num)

	_, err = FormatNumber("0x10000000000000000", NumberNative, false)
	diff.Test(t, t.Errorf, true, errors.Is(err, ErrPrecisionLoss))

	v, err = FormatNumber("0x10000000000000002", NumberNative, true)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, uint64(2), v.Num)
}

func TestFormatNumber_U256(t *testing.T) {
	wide := "0x1" + strings.Repeat("0", 63) + "7"
	_, err := FormatNumber(wide, NumberU256, false)
	diff.Test(t, t.Errorf, true, errors.Is(err, ErrPrecisionLoss))

	v, err := FormatNumber(wide, NumberU256, true)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, uint64(7), v.U256.Uint64())
}

func TestFormatNumber_Errors(t *testing.T) {
	for _, f := range []NumberFormat{NumberHex, NumberStr, NumberBigInt, NumberNative, NumberU256} {
		_, err := FormatNumber("0x2g", f, false)
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("%s: want ErrInvalidHex got: %v", f, err)
		}
	}
	_, err := FormatNumber("0x2a", NumberFormat(0), false)
	diff.Test(t, t.Errorf, true, errors.Is(err, ErrUnsupportedFormat))
}
