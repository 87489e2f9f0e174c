// Package mono implements the monoalphabetic substitution ciphers:
// Caesar, Atbash, ROT13, Keyword, and Affine.
//
// What:
//
//   - Each cipher is a fixed position→position map over one alphabet;
//     encrypt and decrypt are pure O(len(text)) transforms.
//   - Input is case-folded to lowercase; characters outside the alphabet
//     pass through unchanged. Output is lowercase by convention
//     (polygraphic ciphers are the uppercase family).
//   - The working alphabet defaults to alphabet.English and can be
//     overridden per call with WithAlphabet.
//   - The *Alphabet producers (CaesarAlphabet, AtbashAlphabet,
//     AffineAlphabet, KeywordAlphabet) apply a cipher to the alphabet
//     itself, yielding the permuted alphabet strings consumed by keyed
//     grids and Chaocipher disks.
//
// Why:
//
//   - These ciphers are breakable by design; they exist for teaching,
//     puzzles, and as building blocks for the polygraphic and
//     polyalphabetic packages.
//
// Errors:
//
//   - ErrNotCoprime: affine multiplier a with gcd(a, len(alphabet)) != 1.
//   - ErrEmptyKey: keyword with no usable alphabet letter.
//   - alphabet.ErrBadAlphabet: empty or duplicated alphabet override.
package mono
