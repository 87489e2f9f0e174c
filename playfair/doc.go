// Package playfair implements the Playfair cipher: digram substitution
// over a single 5×5 key grid.
//
// What:
//
//   - Encrypt builds the grid from the key (square.NewGrid), segments the
//     plaintext (square.Segment), and substitutes each digram:
//     same row — columns shift right by one, wrapping;
//     same column — rows shift down by one, wrapping;
//     rectangle — each letter takes its partner's column, its own row.
//   - Decrypt pairs the ciphertext strictly (square.Pairs) and applies
//     the inverse shifts; the rectangle rule is its own inverse.
//   - Output is uppercase; decrypted text may retain the X/Q fillers the
//     segmenter inserted (lossy padding, documented in package square).
//
// Why:
//
//   - The 1854 Wheatstone–Playfair cipher is the classic digram
//     substitution and the template the two- and four-square variants
//     generalize.
//
// Errors:
//
//   - square.ErrEmptyKey: key with no usable letters.
//
// Complexity: O(len(key) + len(text)) time, O(1) grid memory.
package playfair
