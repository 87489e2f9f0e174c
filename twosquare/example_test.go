// File: twosquare/example_test.go
package twosquare_test

import (
	"fmt"

	"github.com/katalvlaran/cryptology/twosquare"
)

// ExampleEncrypt demonstrates the vertical two-square column swap and its
// involution: decryption is the same substitution over strict pairs.
func ExampleEncrypt() {
	enc, _ := twosquare.Encrypt("Hello", "EXAMPLE", "KEYWORD")
	dec, _ := twosquare.Decrypt(enc, "EXAMPLE", "KEYWORD")
	fmt.Println(enc)
	fmt.Println(dec)

	// Output:
	// HEDTFK
	// HELXLO
}
