package chaocipher

import "unicode"

// Encrypt enciphers text with the given left (ciphertext) and right
// (plaintext) disks. Characters absent from the right disk in either
// case are dropped; case is folded toward the disk.
func Encrypt(text, left, right string) (string, error) {
	l, r, err := disks(left, right)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, len(text))
	for _, ch := range prepare(text, r) {
		c := l[index(r, ch)]
		out = append(out, c)
		permute(l, c)
		permute(r, ch)
	}
	return string(out), nil
}

// Decrypt runs the same machine in reverse: it indexes the left disk
// and reads the right one. With the disks used for encryption it
// restores the prepared plaintext.
func Decrypt(text, left, right string) (string, error) {
	l, r, err := disks(left, right)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, len(text))
	for _, ch := range prepare(text, l) {
		p := r[index(l, ch)]
		out = append(out, p)
		permute(l, ch)
		permute(r, p)
	}
	return string(out), nil
}

// disks validates the pair and materializes both as rune slices.
func disks(left, right string) ([]rune, []rune, error) {
	l, r := []rune(left), []rune(right)
	if len(l) == 0 || len(l) != len(r) {
		return nil, nil, ErrAlphabetLength
	}
	for _, d := range [2][]rune{l, r} {
		seen := make(map[rune]bool, len(d))
		for _, ch := range d {
			if seen[ch] {
				return nil, nil, ErrDuplicateLetter
			}
			seen[ch] = true
		}
	}
	return l, r, nil
}

// prepare keeps only characters the disk can place, folding case toward
// the disk when the literal rune is absent.
func prepare(text string, disk []rune) []rune {
	out := make([]rune, 0, len(text))
	for _, ch := range text {
		switch {
		case index(disk, ch) >= 0:
			out = append(out, ch)
		case index(disk, unicode.ToUpper(ch)) >= 0:
			out = append(out, unicode.ToUpper(ch))
		case index(disk, unicode.ToLower(ch)) >= 0:
			out = append(out, unicode.ToLower(ch))
		}
	}
	return out
}

// index is a linear scan; disks are short enough that a map would not pay.
func index(disk []rune, ch rune) int {
	for i, c := range disk {
		if c == ch {
			return i
		}
	}
	return -1
}

// permute advances the disk after a character is processed: the
// character moves to the zenith, then its former neighbour drops to the
// nadir. Both halves operate in place.
func permute(disk []rune, ch rune) {
	i := index(disk, ch)
	copy(disk[1:i+1], disk[:i])
	disk[0] = ch

	if len(disk) < 2 {
		return
	}
	at := nadir
	if at > len(disk)-1 {
		at = len(disk) - 1
	}
	v := disk[1]
	copy(disk[1:at], disk[2:at+1])
	disk[at] = v
}
