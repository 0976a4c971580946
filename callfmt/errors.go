package callfmt

import (
	"errors"

	"github.com/indexsupply/ethcall/eth"
)

var (
	// Malformed hex input: odd length or non-hex characters.
	ErrInvalidHex = eth.ErrInvalidHex

	// A Config names a representation that doesn't exist.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// The value does not fit the requested fixed-width representation
	// and Config.Lossy is not set.
	ErrPrecisionLoss = errors.New("precision loss")

	// A bytes or number field held something other than a hex string.
	ErrUnexpectedType = errors.New("unexpected type")
)
