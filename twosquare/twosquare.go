package twosquare

import "github.com/katalvlaran/cryptology/square"

// Encrypt enciphers plaintext with the vertical Two-Square cipher. key1
// keys the top grid (first digram letters), key2 the bottom grid (second
// letters). Output is uppercase and even-length.
// Returns square.ErrEmptyKey when either key has no letters.
func Encrypt(plaintext, key1, key2 string) (string, error) {
	return transform(plaintext, key1, key2, square.Segment)
}

// Decrypt reverses Encrypt under the same keys. The column-swap rule is
// an involution, so the substitution itself is identical; only the
// segmentation differs (strict pairing, no duplicate splitting).
func Decrypt(ciphertext, key1, key2 string) (string, error) {
	return transform(ciphertext, key1, key2, square.Pairs)
}

func transform(text, key1, key2 string, split func(string) []square.Digram) (string, error) {
	top, err := square.NewGrid(key1)
	if err != nil {
		return "", err
	}
	bottom, err := square.NewGrid(key2)
	if err != nil {
		return "", err
	}

	ds := split(text)
	out := make([]square.Digram, len(ds))
	for i, d := range ds {
		sub, err := substitute(top, bottom, d)
		if err != nil {
			return "", err
		}
		out[i] = sub
	}
	return square.Join(out), nil
}

// substitute swaps columns between the two grids: each letter keeps its
// row and takes its partner's column.
func substitute(top, bottom *square.Grid, d square.Digram) (square.Digram, error) {
	p1, err := top.Position(d[0])
	if err != nil {
		return square.Digram{}, err
	}
	p2, err := bottom.Position(d[1])
	if err != nil {
		return square.Digram{}, err
	}
	return square.Digram{
		top.At(p1.Row, p2.Col),
		bottom.At(p2.Row, p1.Col),
	}, nil
}
