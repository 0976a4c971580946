package eth

import (
	"encoding/json"
	"errors"
	"testing"

	"kr.dev/diff"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		input string
		want  uint64
		err   error
	}{
		{
			input: "2a",
			want:  42,
			err:   nil,
		},
		{
			input: "1167e6e", //odd length
			want:  18251374,
			err:   nil,
		},
		{
			input: "ffffffffffffffff",
			want:  1<<64 - 1,
			err:   nil,
		},
	}
	for _, tc := range cases {
		got, err := decode(tc.input)
		diff.Test(t, t.Fatalf, tc.err, err)
		diff.Test(t, t.Errorf, tc.want, got)
	}
}

func TestDecode_Error(t *testing.T) {
	for _, input := range []string{"2g", "10000000000000000"} {
		_, err := decode(input)
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("input %q: want ErrInvalidHex got: %v", input, err)
		}
	}
}

func TestUint64(t *testing.T) {
	var item = struct{ N Uint64 }{}
	err := json.Unmarshal([]byte(`{"N": "0x2a"}`), &item)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, Uint64(42), item.N)

	b, err := json.Marshal(item)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, `{"N":"0x2a"}`, string(b))

	err = json.Unmarshal([]byte(`{"N": 42}`), &item)
	if err == nil {
		t.Errorf("expected error for unquoted number")
	}
}

func TestBytes(t *testing.T) {
	cases := []struct {
		input string
		want  Bytes
		err   error
	}{
		{
			input: `{"D": "0x2a"}`,
			want:  []byte{0x2a},
			err:   nil,
		},
		{
			input: `{"D": "0X2A00"}`,
			want:  []byte{0x2a, 0x00},
			err:   nil,
		},
	}
	for _, tc := range cases {
		var item = struct{ D Bytes }{}
		err := json.Unmarshal([]byte(tc.input), &item)
		diff.Test(t, t.Fatalf, tc.err, err)
		diff.Test(t, t.Errorf, tc.want, item.D)
	}

	var item = struct{ D Bytes }{}
	err := json.Unmarshal([]byte(`{"D": "0x2a0"}`), &item)
	diff.Test(t, t.Errorf, true, errors.Is(err, ErrInvalidHex))
}

func TestBytes_Write(t *testing.T) {
	var x Bytes
	diff.Test(t, t.Errorf, 0, len(x))
	diff.Test(t, t.Errorf, 0, cap(x))

	x.Write(make([]byte, 32))
	diff.Test(t, t.Errorf, 32, len(x))
	diff.Test(t, t.Errorf, 32, cap(x))

	x.Write(make([]byte, 16))
	diff.Test(t, t.Errorf, 16, len(x))
	diff.Test(t, t.Errorf, 32, cap(x))

	x.Append(0x01)
	diff.Test(t, t.Errorf, 17, len(x))
	diff.Test(t, t.Errorf, byte(0x01), x[16])
}

func TestBytes_String(t *testing.T) {
	diff.Test(t, t.Errorf, "0x00ff", Bytes{0x00, 0xff}.String())
	diff.Test(t, t.Errorf, "0x", Bytes{}.String())
}
