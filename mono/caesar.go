package mono

import (
	"strings"

	"github.com/katalvlaran/cryptology/alphabet"
)

// CaesarEncrypt shifts every alphabet letter of text by shift positions,
// wrapping around. Input is lowercased first; other characters pass
// through. Negative and out-of-range shifts wrap via modulo.
// Complexity: O(len(text)).
func CaesarEncrypt(text string, shift int, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), c.alphabet, alphabet.Shifted(c.alphabet, shift)), nil
}

// CaesarDecrypt reverses CaesarEncrypt for the same shift and alphabet.
func CaesarDecrypt(text string, shift int, opts ...Option) (string, error) {
	return CaesarEncrypt(text, -shift, opts...)
}
