package square

import "strings"

// Filler letters inserted by segmentation. The secondary filler avoids
// producing a doubled-X digram when the letter being padded is X itself.
const (
	fillerPrimary   = 'X'
	fillerSecondary = 'Q'
)

// Normalize reduces text to the polygraphic working set: uppercase ASCII
// letters with J merged into I; everything else is stripped.
// Complexity: O(len(text)).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			// keep
		case r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
		default:
			continue
		}
		if r == 'J' {
			r = 'I'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Segment normalizes text and splits it into digrams for encryption.
// When a forming pair would double a letter, the pair is completed with a
// filler instead and the walk resumes from the second occurrence; a
// trailing single letter is completed the same way. The result always has
// even letter count. Padding is lossy: decrypted output may retain filler
// letters, which callers strip heuristically if at all.
func Segment(text string) []Digram {
	norm := Normalize(text)
	ds := make([]Digram, 0, len(norm)/2+1)
	for i := 0; i < len(norm); {
		a := norm[i]
		if i+1 < len(norm) && norm[i+1] != a {
			ds = append(ds, Digram{a, norm[i+1]})
			i += 2
			continue
		}
		// Doubled letter or trailing single: pad and advance one.
		ds = append(ds, Digram{a, filler(a)})
		i++
	}
	return ds
}

// Pairs normalizes text and splits it into strict consecutive digrams,
// padding only a trailing single letter. This is the decrypt-side walk:
// two- and four-square ciphertext may contain legitimately doubled pairs
// that must not be re-split.
func Pairs(text string) []Digram {
	norm := Normalize(text)
	ds := make([]Digram, 0, len(norm)/2+1)
	for i := 0; i < len(norm); i += 2 {
		if i+1 < len(norm) {
			ds = append(ds, Digram{norm[i], norm[i+1]})
		} else {
			ds = append(ds, Digram{norm[i], filler(norm[i])})
		}
	}
	return ds
}

// Join concatenates digrams back into a string.
func Join(ds []Digram) string {
	b := make([]byte, 0, len(ds)*2)
	for _, d := range ds {
		b = append(b, d[0], d[1])
	}
	return string(b)
}

func filler(letter byte) byte {
	if letter == fillerPrimary {
		return fillerSecondary
	}
	return fillerPrimary
}
