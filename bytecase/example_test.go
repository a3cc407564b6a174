package bytecase_test

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/charlievieth/utf16case/bytecase"
)

func ExampleConvertCasedInvariant() {
	// "abç" as UTF-16LE bytes.
	src := []byte{'a', 0x00, 'b', 0x00, 0xE7, 0x00}
	dst := make([]byte, len(src))
	n, err := bytecase.ConvertCasedInvariant(dst, src, true)
	if err != nil {
		panic(err)
	}
	units := make([]uint16, n/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(dst[2*i:])
	}
	fmt.Println(string(utf16.Decode(units)))
	// Output:
	// ABÇ
}

func ExampleNullTerminated() {
	buf := []byte{'h', 0x00, 'i', 0x00, 0x00, 0x00, 0xEE, 0xEE}
	fmt.Printf("% X\n", bytecase.NullTerminated(buf))
	// Output:
	// 68 00 69 00
}
