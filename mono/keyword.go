package mono

import (
	"strings"
	"unicode"
)

// KeywordEncrypt substitutes through a keyed alphabet: the deduplicated
// keyword letters first, then the remaining alphabet in natural order.
// A keyword contributing no alphabet letter yields ErrEmptyKey.
// Complexity: O(len(keyword) + len(text)).
func KeywordEncrypt(text, keyword string, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	keyed, err := keyedAlphabet(c.alphabet, keyword)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), c.alphabet, keyed), nil
}

// KeywordDecrypt reverses KeywordEncrypt for the same keyword and alphabet.
func KeywordDecrypt(text, keyword string, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	keyed, err := keyedAlphabet(c.alphabet, keyword)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), keyed, c.alphabet), nil
}

// keyedAlphabet builds the cipher alphabet for a keyword: keyword letters
// deduplicated in first-occurrence order, then the unused base letters.
// Keyword case is folded toward the case the base actually contains, so
// the same keyword keys lowercase cipher alphabets and uppercase disks.
func keyedAlphabet(base, keyword string) (string, error) {
	inBase := make(map[rune]bool, len(base))
	for _, r := range base {
		inBase[r] = true
	}
	fold := func(r rune) (rune, bool) {
		if inBase[r] {
			return r, true
		}
		if lo := unicode.ToLower(r); inBase[lo] {
			return lo, true
		}
		if up := unicode.ToUpper(r); inBase[up] {
			return up, true
		}
		return r, false
	}

	var b strings.Builder
	seen := make(map[rune]bool, len(base))
	for _, r := range keyword {
		r, ok := fold(r)
		if ok && !seen[r] {
			b.WriteRune(r)
			seen[r] = true
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyKey
	}
	for _, r := range base {
		if !seen[r] {
			b.WriteRune(r)
			seen[r] = true
		}
	}
	return b.String(), nil
}
