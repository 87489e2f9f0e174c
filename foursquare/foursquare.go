package foursquare

import "github.com/katalvlaran/cryptology/square"

// quad bundles the four grids by block position.
type quad struct {
	tl, tr, bl, br *square.Grid
}

// Encrypt enciphers plaintext with the Four-Square cipher. Keys map to
// grids as key1→top-left, key2→top-right, key3→bottom-left,
// key4→bottom-right. Output is uppercase and even-length.
// Returns square.ErrEmptyKey when any key has no letters.
func Encrypt(plaintext, key1, key2, key3, key4 string) (string, error) {
	q, err := newQuad(key1, key2, key3, key4)
	if err != nil {
		return "", err
	}

	ds := square.Segment(plaintext)
	out := make([]square.Digram, len(ds))
	for i, d := range ds {
		sub, err := q.encrypt(d)
		if err != nil {
			return "", err
		}
		out[i] = sub
	}
	return square.Join(out), nil
}

// Decrypt reverses Encrypt under the same four keys, pairing the
// ciphertext strictly.
func Decrypt(ciphertext, key1, key2, key3, key4 string) (string, error) {
	q, err := newQuad(key1, key2, key3, key4)
	if err != nil {
		return "", err
	}

	ds := square.Pairs(ciphertext)
	out := make([]square.Digram, len(ds))
	for i, d := range ds {
		sub, err := q.decrypt(d)
		if err != nil {
			return "", err
		}
		out[i] = sub
	}
	return square.Join(out), nil
}

func newQuad(key1, key2, key3, key4 string) (quad, error) {
	var q quad
	var err error
	if q.tl, err = square.NewGrid(key1); err != nil {
		return quad{}, err
	}
	if q.tr, err = square.NewGrid(key2); err != nil {
		return quad{}, err
	}
	if q.bl, err = square.NewGrid(key3); err != nil {
		return quad{}, err
	}
	if q.br, err = square.NewGrid(key4); err != nil {
		return quad{}, err
	}
	return q, nil
}

// encrypt reads the cross-grid rectangle: plaintext letters live in the
// TL and BR grids, ciphertext letters come from TR and BL.
func (q quad) encrypt(d square.Digram) (square.Digram, error) {
	p1, err := q.tl.Position(d[0])
	if err != nil {
		return square.Digram{}, err
	}
	p2, err := q.br.Position(d[1])
	if err != nil {
		return square.Digram{}, err
	}
	return square.Digram{
		q.tr.At(p1.Row, p2.Col),
		q.bl.At(p2.Row, p1.Col),
	}, nil
}

// decrypt inverts encrypt: ciphertext letters live in TR and BL, and
// their coordinates recover the TL and BR plaintext cells.
func (q quad) decrypt(d square.Digram) (square.Digram, error) {
	p1, err := q.tr.Position(d[0])
	if err != nil {
		return square.Digram{}, err
	}
	p2, err := q.bl.Position(d[1])
	if err != nil {
		return square.Digram{}, err
	}
	return square.Digram{
		q.tl.At(p1.Row, p2.Col),
		q.br.At(p2.Row, p1.Col),
	}, nil
}
