// test helpers
package tc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func NoErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("expected no error. got: %s", err)
	}
}

func WantErr(tb testing.TB, want, got error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Errorf("want error: %v got: %v", want, got)
	}
}

func WantGot(tb testing.TB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(want, got) {
		tb.Error(pretty.Sprintf("want: %# v got: %# v", want, got))
	}
}
