package foursquare_test

import (
	"fmt"

	"github.com/katalvlaran/cryptology/foursquare"
)

// ExampleEncrypt encrypts with four independently keyed grids,
// ordered top-left, top-right, bottom-left, bottom-right.
func ExampleEncrypt() {
	enc, _ := foursquare.Encrypt("HELLO", "MONARCHY", "PLAYFAIR", "CIPHER", "SECRET")
	dec, _ := foursquare.Decrypt(enc, "MONARCHY", "PLAYFAIR", "CIPHER", "SECRET")
	fmt.Println(enc)
	fmt.Println(dec)
	// Output:
	// RIQVOO
	// HELXLO
}
