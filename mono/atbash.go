package mono

import (
	"strings"

	"github.com/katalvlaran/cryptology/alphabet"
)

// AtbashEncrypt replaces each letter with its mirror: the first alphabet
// letter with the last, the second with the second-to-last, and so on.
// Complexity: O(len(text)).
func AtbashEncrypt(text string, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), c.alphabet, alphabet.Reversed(c.alphabet)), nil
}

// AtbashDecrypt is identical to AtbashEncrypt: mirroring twice restores
// the original text (the cipher is an involution).
func AtbashDecrypt(text string, opts ...Option) (string, error) {
	return AtbashEncrypt(text, opts...)
}
