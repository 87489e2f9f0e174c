package chaocipher

import (
	"fmt"

	"github.com/katalvlaran/cryptology/alphabet"
	"github.com/katalvlaran/cryptology/mono"
)

// diskBase is the historical disk: the uppercase alphabet plus space, so
// word boundaries survive the cipher.
const diskBase = alphabet.EnglishUpper + " "

// DefaultAlphabets returns the stock disk pair: the left disk in
// standard order and the right disk reversed, so the identity pairing
// is avoided from the first character.
func DefaultAlphabets() (left, right string) {
	return diskBase, alphabet.Reversed(diskBase)
}

// KeywordAlphabets builds a disk pair from two keywords using keyed
// alphabets over A–Z. An empty keyword leaves that disk in standard
// order.
func KeywordAlphabets(leftKeyword, rightKeyword string) (left, right string) {
	return mono.KeywordAlphabet(alphabet.EnglishUpper, leftKeyword),
		mono.KeywordAlphabet(alphabet.EnglishUpper, rightKeyword)
}

// CipherAlphabets seeds each disk with a monoalphabetic permutation of
// the historical disk, letting one key vocabulary drive both cipher
// families.
func CipherAlphabets(left, right Spec) (string, string, error) {
	l, err := produce(left)
	if err != nil {
		return "", "", err
	}
	r, err := produce(right)
	if err != nil {
		return "", "", err
	}
	return l, r, nil
}

func produce(s Spec) (string, error) {
	switch s.Name {
	case "caesar":
		return mono.CaesarAlphabet(diskBase, s.Shift), nil
	case "atbash":
		return mono.AtbashAlphabet(diskBase), nil
	case "keyword":
		return mono.KeywordAlphabet(diskBase, s.Keyword), nil
	case "affine":
		return mono.AffineAlphabet(diskBase, s.A, s.B)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCipher, s.Name)
	}
}
