// Small wrapper around sha3 package to
// canonicalize how data is to be hashed
package isxhash

import "golang.org/x/crypto/sha3"

// Leading 4 bytes of the hash. Used for function selectors.
func Keccak4(d []byte) [4]byte {
	return [4]byte(Keccak(d)[:4])
}

func Keccak(d []byte) []byte {
	k := sha3.NewLegacyKeccak256()
	k.Write(d)
	return k.Sum(nil)
}
