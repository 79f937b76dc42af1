package hash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
)

// Size is the number of bytes in a sha256 digest.
const Size = 32

// ErrBadHashFormat reports text that is not a valid 64-character
// hexadecimal sha256 digest.
var ErrBadHashFormat = errors.New("bad sha256 hash format")

// Sha256 is the raw 32-byte form of a sha256 digest.
// Equality is byte-wise; the zero value is the all-zero digest.
type Sha256 [Size]byte

// FromHex converts the 64-character hexadecimal form of a sha256 digest
// into its raw 32-byte representation. Decoding is strict: any other
// length, or any non-hex character, fails with an error matching
// ErrBadHashFormat. Both upper- and lowercase digits are accepted.
func FromHex(s string) (Sha256, error) {
	var h Sha256
	if len(s) != Size*2 {
		return h, fmt.Errorf("%w: want %d hex characters, got %d", ErrBadHashFormat, Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrBadHashFormat, err)
	}
	copy(h[:], b)
	return h, nil
}

// FromDigest finalizes a streaming sha256 accumulator into a Sha256.
func FromDigest(d hash.Hash) Sha256 {
	var h Sha256
	copy(h[:], d.Sum(nil))
	return h
}

// Hex returns the canonical 64-character lowercase hexadecimal form.
// It is the inverse of FromHex for every 32-byte value.
func (h Sha256) Hex() string { return hex.EncodeToString(h[:]) }
