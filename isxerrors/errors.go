// error wrapping for cleanup paths where
// the wrapped error is usually nil
package isxerrors

import "golang.org/x/xerrors"

// Wraps xerrors.Errorf but returns nil unless
// one of args is a non-nil error.
//
//	check(isxerrors.Errorf("closing %s: %w", url, c.Close()))
func Errorf(format string, args ...any) error {
	for i := range args {
		if err, ok := args[i].(error); ok && err != nil {
			return xerrors.Errorf(format, args...)
		}
	}
	return nil
}
