package wos

import (
	"testing"

	"github.com/goccy/go-json"
	"kr.dev/diff"
)

func TestUnmarshal(t *testing.T) {
	t.Setenv("XXX", "https://sepolia.example")
	cases := []struct {
		input []byte
		want  string
		err   bool
	}{
		{[]byte(`10`), "", true},
		{[]byte(`"10"`), "10", false},
		{[]byte(`"$XXX"`), "https://sepolia.example", false},
		{[]byte(`"$xxx"`), "https://sepolia.example", false},
		{[]byte(`"$ETHCALL_UNSET_TEST_VAR"`), "", true},
	}
	for _, tc := range cases {
		var got EnvString
		err := json.Unmarshal(tc.input, &got)
		diff.Test(t, t.Errorf, tc.err, err != nil)
		diff.Test(t, t.Errorf, tc.want, got.String())
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("ETHCALL_TEST_URL", "ws://localhost:8546")
	got, err := Getenv("$ethcall_test_url")
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, "ws://localhost:8546", got)

	got, err = Getenv("plain")
	diff.Test(t, t.Fatalf, nil, err)
	diff.Test(t, t.Errorf, "plain", got)
}
