package mono

import (
	"strings"

	"github.com/katalvlaran/cryptology/alphabet"
)

// ROT13Encrypt shifts every letter by half the alphabet length. For the
// default 26-letter alphabet this is the classic ROT13. The cipher is
// self-inverse only when the alphabet length is even; for odd lengths the
// same half-length shift is applied but no involution is guaranteed.
func ROT13Encrypt(text string, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	half := len([]rune(c.alphabet)) / 2
	return translate(strings.ToLower(text), c.alphabet, alphabet.Shifted(c.alphabet, half)), nil
}

// ROT13Decrypt applies the same half-alphabet shift as ROT13Encrypt.
func ROT13Decrypt(text string, opts ...Option) (string, error) {
	return ROT13Encrypt(text, opts...)
}
