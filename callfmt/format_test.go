package callfmt

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"kr.dev/diff"
)

func TestParseNumberFormat(t *testing.T) {
	cases := []struct {
		input string
		want  NumberFormat
	}{
		{"NUMBER_HEX", NumberHex},
		{"hex", NumberHex},
		{"STR", NumberStr},
		{"number_bigint", NumberBigInt},
		{"NUMBER", NumberNative},
		{"NUMBER_NUMBER", NumberNative},
		{" u256 ", NumberU256},
	}
	for _, tc := range cases {
		got, err := ParseNumberFormat(tc.input)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.want, got)
	}
	for _, input := range []string{"", "BYTES_HEX", "NUMBER_", "float"} {
		_, err := ParseNumberFormat(input)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("input %q: want ErrUnsupportedFormat got: %v", input, err)
		}
	}
}

func TestParseBytesFormat(t *testing.T) {
	cases := []struct {
		input string
		want  BytesFormat
	}{
		{"BYTES_HEX", BytesHex},
		{"HEX", BytesHex},
		{"buffer", BytesBuffer},
		{"BYTES_UINT8ARRAY", BytesArray},
		{"Uint8Array", BytesArray},
	}
	for _, tc := range cases {
		got, err := ParseBytesFormat(tc.input)
		diff.Test(t, t.Fatalf, nil, err)
		diff.Test(t, t.Errorf, tc.want, got)
	}
	for _, input := range []string{"", "NUMBER_HEX", "BYTES_STRING"} {
		_, err := ParseBytesFormat(input)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("input %q: want ErrUnsupportedFormat got: %v", input, err)
		}
	}
}

func TestFormat_String(t *testing.T) {
	diff.Test(t, t.Errorf, "NUMBER_NUMBER", NumberNative.String())
	diff.Test(t, t.Errorf, "NumberFormat(0)", NumberFormat(0).String())
	diff.Test(t, t.Errorf, "BYTES_UINT8ARRAY", BytesArray.String())
	diff.Test(t, t.Errorf, "BytesFormat(9)", BytesFormat(9).String())
	diff.Test(t, t.Errorf, "number=NUMBER_BIGINT bytes=BYTES_HEX", Default.String())
}

func TestConfig_Validate(t *testing.T) {
	diff.Test(t, t.Errorf, nil, Default.Validate())
	cases := []Config{
		{},
		{Number: NumberHex},
		{Bytes: BytesHex},
		{Number: NumberFormat(42), Bytes: BytesHex},
		{Number: NumberHex, Bytes: BytesFormat(42)},
	}
	for _, c := range cases {
		if err := c.Validate(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("config %+v: want ErrUnsupportedFormat got: %v", c, err)
		}
	}
}

func TestConfig_JSON(t *testing.T) {
	var c Config
	err := json.Unmarshal([]byte(`{"number": "STR", "bytes": "BYTES_BUFFER", "lossy": true}`), &c)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, Config{Number: NumberStr, Bytes: BytesBuffer, Lossy: true}, c)

	b, err := json.Marshal(Default)
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, `{"number":"NUMBER_BIGINT","bytes":"BYTES_HEX"}`, string(b))

	err = json.Unmarshal([]byte(`{"number": "FLOAT", "bytes": "HEX"}`), &c)
	if err == nil {
		t.Errorf("expected error for unknown number format")
	}
}
