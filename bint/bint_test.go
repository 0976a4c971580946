package bint

import (
	"testing"

	"kr.dev/diff"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		input []byte
		want  uint64
	}{
		{nil, 0},
		{[]byte{0x00}, 0},
		{[]byte{0x00, 0x00, 0x2a}, 42},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<64 - 1},
		{[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a}, 42},
	}
	for _, tc := range cases {
		diff.Test(t, t.Errorf, tc.want, Decode(tc.input))
	}
}

func TestSize(t *testing.T) {
	diff.Test(t, t.Errorf, 0, Size(nil))
	diff.Test(t, t.Errorf, 0, Size(make([]byte, 32)))
	diff.Test(t, t.Errorf, 1, Size([]byte{0, 0, 1}))
	diff.Test(t, t.Errorf, 3, Size([]byte{1, 0, 0}))
}

func TestUint256(t *testing.T) {
	b := make([]byte, 32)
	b[31] = 0x2a
	got := Uint256(b)
	diff.Test(t, t.Errorf, uint64(42), got.Uint64())

	got = Uint256([]byte{0x01, 0x00})
	diff.Test(t, t.Errorf, uint64(256), got.Uint64())
}
