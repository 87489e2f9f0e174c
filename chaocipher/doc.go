// Package chaocipher implements John F. Byrne's Chaocipher (1918), a
// polyalphabetic substitution cipher built on two rotating disks.
//
// What
//
// Two same-length, duplicate-free alphabets act as disks: the right disk
// indexes plaintext, the left disk supplies ciphertext. After every
// character both disks are permuted — the processed character moves to
// the zenith (front), and the character then sitting beside it drops to
// the nadir — so the substitution alphabet changes with each step.
// Encryption and decryption run the same machine, which makes the
// transform self-reciprocal given the same starting disks.
//
// Disk pairs come from DefaultAlphabets, KeywordAlphabets, or
// CipherAlphabets, the last of which seeds disks with mono-cipher
// permutations (Caesar, Atbash, Keyword, Affine).
//
// Why
//
//   - The dynamic alphabet defeats the frequency analysis that breaks
//     the monoalphabetic family.
//   - Disk construction composes with the mono package, so a single key
//     vocabulary drives both cipher families.
//
// Complexity
//
//   - Encrypt/Decrypt: O(n·m) for n input characters over disks of
//     length m (index scan plus in-place permutation per character).
//
// Errors
//
//   - ErrAlphabetLength    — disks empty or of different lengths.
//   - ErrDuplicateLetter   — a disk repeats a character.
//   - ErrUnknownCipher     — CipherAlphabets got an unrecognized name.
//
// See types.go for disk specs and sentinel errors.
package chaocipher
