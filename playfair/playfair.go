package playfair

import "github.com/katalvlaran/cryptology/square"

// Encrypt enciphers plaintext with the Playfair cipher under key.
// The plaintext is normalized and segmented with duplicate splitting and
// padding; the result is uppercase and even-length.
// Returns square.ErrEmptyKey for keys without letters.
func Encrypt(plaintext, key string) (string, error) {
	return transform(plaintext, key, square.Segment, +1)
}

// Decrypt reverses Encrypt under the same key. Ciphertext is paired
// strictly; filler letters introduced during encryption remain in the
// output.
func Decrypt(ciphertext, key string) (string, error) {
	return transform(ciphertext, key, square.Pairs, -1)
}

// transform runs the digram walk in either direction: shift +1 encrypts,
// -1 decrypts.
func transform(text, key string, split func(string) []square.Digram, shift int) (string, error) {
	g, err := square.NewGrid(key)
	if err != nil {
		return "", err
	}

	ds := split(text)
	out := make([]square.Digram, len(ds))
	for i, d := range ds {
		sub, err := substitute(g, d, shift)
		if err != nil {
			return "", err
		}
		out[i] = sub
	}
	return square.Join(out), nil
}

// substitute applies the Playfair geometry rules to one digram.
func substitute(g *square.Grid, d square.Digram, shift int) (square.Digram, error) {
	p1, err := g.Position(d[0])
	if err != nil {
		return square.Digram{}, err
	}
	p2, err := g.Position(d[1])
	if err != nil {
		return square.Digram{}, err
	}

	switch {
	case p1.Row == p2.Row:
		return square.Digram{
			g.At(p1.Row, wrap(p1.Col+shift)),
			g.At(p2.Row, wrap(p2.Col+shift)),
		}, nil
	case p1.Col == p2.Col:
		return square.Digram{
			g.At(wrap(p1.Row+shift), p1.Col),
			g.At(wrap(p2.Row+shift), p2.Col),
		}, nil
	default:
		// Rectangle: swap columns, keep rows. Symmetric, so encrypt and
		// decrypt coincide here.
		return square.Digram{
			g.At(p1.Row, p2.Col),
			g.At(p2.Row, p1.Col),
		}, nil
	}
}

// wrap keeps a shifted index inside [0, Size) for shifts of ±1.
func wrap(i int) int {
	return (i + square.Size) % square.Size
}
