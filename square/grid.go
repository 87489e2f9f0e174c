package square

import (
	"strings"

	"github.com/katalvlaran/cryptology/alphabet"
)

// Grid is a 5×5 matrix of 25 distinct uppercase letters (I/J merged),
// a permutation of its base alphabet. Immutable after construction.
type Grid struct {
	cells [Size * Size]byte
	// index maps letter-'A' to its row-major cell, -1 when absent (J and
	// any letter dropped by a custom base).
	index [26]int8
}

// NewGrid builds a key grid over the standard 25-letter base
// (alphabet.PlayfairBase). The key is uppercased, stripped to letters,
// J-merged and deduplicated preserving first occurrence; unused base
// letters follow in natural order. Returns ErrEmptyKey when no letter
// survives normalization.
func NewGrid(key string) (*Grid, error) {
	return NewGridFromAlphabet(key, alphabet.PlayfairBase)
}

// NewGridFromAlphabet builds a key grid over a caller-supplied base
// alphabet, typically one produced by the mono package's *Alphabet
// helpers. The base passes through the same normalization as the key and
// is topped up from alphabet.PlayfairBase so the grid always holds
// exactly 25 distinct letters.
func NewGridFromAlphabet(key, base string) (*Grid, error) {
	keyLetters := Normalize(key)
	if len(keyLetters) == 0 {
		return nil, ErrEmptyKey
	}

	// Key first, then the base, then the standard set as a safety net for
	// short custom bases. Dedup keeps first occurrence, so key order wins.
	seq := dedupLetters(keyLetters + Normalize(base) + alphabet.PlayfairBase)

	g := &Grid{}
	for i := range g.index {
		g.index[i] = -1
	}
	for i := 0; i < Size*Size; i++ {
		g.cells[i] = seq[i]
		g.index[seq[i]-'A'] = int8(i)
	}
	return g, nil
}

// At returns the letter at (row, col). Callers pass coordinates obtained
// from Position, already in range.
func (g *Grid) At(row, col int) byte {
	return g.cells[row*Size+col]
}

// Position returns the coordinate of letter within the grid. The letter
// must already be normalized (uppercase, J merged); ErrLetterNotInGrid is
// an invariant violation, not expected flow. Complexity: O(1).
func (g *Grid) Position(letter byte) (Coord, error) {
	if letter < 'A' || letter > 'Z' || g.index[letter-'A'] < 0 {
		return Coord{}, ErrLetterNotInGrid
	}
	i := int(g.index[letter-'A'])
	return Coord{Row: i / Size, Col: i % Size}, nil
}

// Letters returns the grid content row-major as a 25-letter string.
func (g *Grid) Letters() string {
	return string(g.cells[:])
}

// String renders the grid as five space-separated rows, one per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(g.At(r, c))
		}
	}
	return b.String()
}

// dedupLetters removes duplicate bytes preserving first occurrence.
// Input is already normalized uppercase letters.
func dedupLetters(s string) string {
	var seen [26]bool
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !seen[c-'A'] {
			b = append(b, c)
			seen[c-'A'] = true
		}
	}
	return string(b)
}
