package chaocipher

import "errors"

var (
	// ErrAlphabetLength is returned when the two disks are empty or do
	// not share the same length.
	ErrAlphabetLength = errors.New("chaocipher: disks must be non-empty and equal in length")

	// ErrDuplicateLetter is returned when a disk contains a repeated
	// character, which would make the substitution ambiguous.
	ErrDuplicateLetter = errors.New("chaocipher: disk contains a duplicate character")

	// ErrUnknownCipher is returned by CipherAlphabets for a Spec whose
	// Name is not one of the supported mono ciphers.
	ErrUnknownCipher = errors.New("chaocipher: unknown cipher name")
)

// nadir is the resting index for the character displaced from the
// zenith on each permutation step. Disks shorter than nadir+1 clamp it
// to their last position.
const nadir = 13

// Spec names a monoalphabetic cipher and carries its parameters; it is
// consumed by CipherAlphabets to seed one disk.
//
// Name selects the cipher: "caesar" (Shift), "atbash" (no parameters),
// "keyword" (Keyword), or "affine" (A, B).
type Spec struct {
	Name    string
	Shift   int
	A, B    int
	Keyword string
}
