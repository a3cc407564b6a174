package bytecase

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/charlievieth/utf16case"
)

// le returns the UTF-16LE encoding of s.
func le(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func decodeLE(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units))
}

type ConvertTest struct {
	in      string
	toUpper bool
	want    string
}

var convertTests = []ConvertTest{
	{"", true, ""},
	{"abc", true, "ABC"},
	{"ABC", false, "abc"},
	{"Hello, 世界!", true, "HELLO, 世界!"},
	{"straße", true, "STRAßE"},
	{"a𐐷b", true, "A𐐏B"},
}

func TestConvertCasedInvariant(t *testing.T) {
	for _, test := range convertTests {
		src := le(test.in)
		dst := make([]byte, len(src))
		n, err := ConvertCasedInvariant(dst, src, test.toUpper)
		if err != nil {
			t.Errorf("ConvertCasedInvariant(%q, %t) = %v", test.in, test.toUpper, err)
			continue
		}
		if n != len(src) || decodeLE(dst[:n]) != test.want {
			t.Errorf("ConvertCasedInvariant(%q, %t) = %q, %d; want: %q, %d",
				test.in, test.toUpper, decodeLE(dst[:n]), n, test.want, len(src))
		}
	}
}

func TestConvertCased(t *testing.T) {
	src := le("istanbul")
	dst := make([]byte, len(src))
	n, err := ConvertCased(dst, src, "tr", true)
	if err != nil {
		t.Fatal(err)
	}
	if got := decodeLE(dst[:n]); got != "İSTANBUL" {
		t.Errorf("ConvertCased(%q, %q, true) = %q; want: %q", "istanbul", "tr", got, "İSTANBUL")
	}
}

func TestConvertOddLength(t *testing.T) {
	if _, err := ConvertCasedInvariant(make([]byte, 4), []byte{'a', 0, 'b'}, true); err != ErrOddLength {
		t.Errorf("odd src error = %v; want: %v", err, ErrOddLength)
	}
	if _, err := ConvertCasedInvariant(make([]byte, 3), le("ab"), true); err != ErrOddLength {
		t.Errorf("odd dst error = %v; want: %v", err, ErrOddLength)
	}
}

func TestConvertInsufficientBuffer(t *testing.T) {
	src := le("abc")
	n, err := ConvertCasedInvariant(make([]byte, 4), src, true)
	if err != utf16case.ErrInsufficientBuffer {
		t.Errorf("short dst error = %v; want: %v", err, utf16case.ErrInsufficientBuffer)
	}
	if n != 4 {
		t.Errorf("short dst wrote %d bytes; want: 4", n)
	}
}

type expandMapper struct{}

func (expandMapper) MapSegment(seg []uint16, toUpper bool) []uint16 {
	rep := append([]uint16(nil), seg...)
	return append(rep, 'x')
}

func TestConvertAntiExpansion(t *testing.T) {
	src := le("a𐐷ß")
	dst := make([]byte, len(src))
	n, err := Convert(dst, src, expandMapper{}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst[:n], src) {
		t.Errorf("Convert(% X, expandMapper) = % X; want the input unchanged", src, dst[:n])
	}
}

func TestNullTerminated(t *testing.T) {
	tests := []struct {
		in, want []byte
	}{
		{nil, nil},
		{le("ab\x00cd"), le("ab")},
		{le("abcd"), le("abcd")},
		{[]byte{0x00}, []byte{0x00}},               // odd trailing byte, no unit
		{[]byte{'a', 0x00, 0x00, 0x00}, le("a")},   // aligned NUL unit
		{[]byte{0x00, 'a', 0x00, 0x00}, []byte{0x00, 'a'}}, // NUL bytes split across units
	}
	for _, test := range tests {
		if got := NullTerminated(test.in); !bytes.Equal(got, test.want) {
			t.Errorf("NullTerminated(% X) = % X; want: % X", test.in, got, test.want)
		}
	}
}
