// Package alphabet defines the named character sets shared by every
// cipher in this module, plus small pure helpers for deriving new
// alphabets from them.
//
// What:
//
//   - Named constants: English (lowercase, the monoalphabetic default),
//     EnglishUpper, PlayfairBase (25 letters, I/J merged — the polygraphic
//     default), EnglishWithDigits (36 characters for 6×6 squares), Digits.
//   - Dedup, Shifted, Reversed — order-preserving derivations used to
//     build keyed and cipher-produced alphabets.
//   - SquareSize and FitSquare — sizing helpers for Polybius-style grids.
//   - Validate — the shared invariant check (non-empty, duplicate-free).
//
// Why:
//
//   - Every cipher accepts an alphabet override; centralizing the defaults
//     keeps normalization consistent across the whole module.
//   - An alphabet is plain data: an ordered sequence of unique characters.
//     All helpers are pure functions over strings and never mutate input.
//
// Errors:
//
//   - ErrBadAlphabet: empty alphabet, or one containing duplicate runes.
package alphabet
