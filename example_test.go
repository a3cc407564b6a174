package utf16case_test

import (
	"fmt"
	"unicode/utf16"

	"github.com/charlievieth/utf16case"
)

func ExampleConvertCasedInvariant() {
	src := utf16.Encode([]rune("Straße 42, Ærøskøbing"))
	dst := make([]uint16, len(src))
	n, err := utf16case.ConvertCasedInvariant(dst, src, true)
	if err != nil {
		panic(err)
	}
	// "ß" is kept as-is: uppercasing it to "SS" would grow the string.
	fmt.Println(string(utf16.Decode(dst[:n])))
	// Output:
	// STRAßE 42, ÆRØSKØBING
}

func ExampleConvertCased() {
	src := utf16.Encode([]rune("istanbul"))
	dst := make([]uint16, len(src))

	n, _ := utf16case.ConvertCased(dst, src, "tr", true)
	fmt.Println(string(utf16.Decode(dst[:n])))

	n, _ = utf16case.ConvertCased(dst, src, "en-US", true)
	fmt.Println(string(utf16.Decode(dst[:n])))
	// Output:
	// İSTANBUL
	// ISTANBUL
}

func ExampleConvertCasedInvariant_surrogatePairs() {
	src := utf16.Encode([]rune("𐐷")) // U+10437, a lead/trail pair
	dst := make([]uint16, len(src))
	n, _ := utf16case.ConvertCasedInvariant(dst, src, true)
	fmt.Printf("%04X\n", dst[:n]) // U+1040F
	// Output:
	// [D801 DC0F]
}

func ExampleNullTerminated() {
	buf := []uint16{'w', 'i', 'd', 'e', 0, 0xEEEE}
	fmt.Println(string(utf16.Decode(utf16case.NullTerminated(buf))))
	// Output:
	// wide
}
