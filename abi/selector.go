// function selectors for contract calls
package abi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/indexsupply/ethcall/isxhash"
)

// Removes whitespace and parameter names:
// "transfer(address to, uint256 amount)" becomes
// "transfer(address,uint256)".
// Nested tuples are not supported.
func Normalize(sig string) (string, error) {
	lp, rp := strings.IndexByte(sig, '('), strings.LastIndexByte(sig, ')')
	if lp <= 0 || rp != len(strings.TrimRightFunc(sig, unicode.IsSpace))-1 || rp < lp {
		return "", fmt.Errorf("invalid signature %q. must be name(type,...)", sig)
	}
	name := strings.TrimSpace(sig[:lp])
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return "", fmt.Errorf("invalid function name in %q", sig)
	}
	inner := strings.TrimSpace(sig[lp+1 : rp])
	if inner == "" {
		return name + "()", nil
	}
	var types []string
	for _, p := range strings.Split(inner, ",") {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			return "", fmt.Errorf("empty parameter in %q", sig)
		}
		types = append(types, fields[0])
	}
	return name + "(" + strings.Join(types, ",") + ")", nil
}

// First 4 bytes of the keccak of the normalized signature.
func Selector(sig string) ([4]byte, error) {
	n, err := Normalize(sig)
	if err != nil {
		return [4]byte{}, err
	}
	return isxhash.Keccak4([]byte(n)), nil
}
