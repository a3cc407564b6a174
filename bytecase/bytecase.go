// Package bytecase mirrors the utf16case API for UTF-16LE encoded byte
// slices, the wire encoding of Windows wide strings. Lengths and return
// values are in bytes; both source and destination lengths must be a
// multiple of 2.
package bytecase

import (
	"encoding/binary"
	"errors"

	"github.com/charlievieth/utf16case"
)

// ErrOddLength is returned when the source or destination length is not a
// multiple of the UTF-16 code unit size.
var ErrOddLength = errors.New("bytecase: length must be a multiple of 2")

// Convert case converts the UTF-16LE bytes of src into dst using m and
// returns the number of bytes written. See [utf16case.Convert].
func Convert(dst, src []byte, m utf16case.CaseMapper, toUpper bool) (int, error) {
	return convert(dst, src, func(du, su []uint16) (int, error) {
		return utf16case.Convert(du, su, m, toUpper)
	})
}

// ConvertCased case converts the UTF-16LE bytes of src into dst under the
// casing rules of the named locale and returns the number of bytes
// written. See [utf16case.ConvertCased].
func ConvertCased(dst, src []byte, locale string, toUpper bool) (int, error) {
	return convert(dst, src, func(du, su []uint16) (int, error) {
		return utf16case.ConvertCased(du, su, locale, toUpper)
	})
}

// ConvertCasedInvariant is ConvertCased under the locale-invariant rules.
func ConvertCasedInvariant(dst, src []byte, toUpper bool) (int, error) {
	return convert(dst, src, func(du, su []uint16) (int, error) {
		return utf16case.ConvertCasedInvariant(du, su, toUpper)
	})
}

func convert(dst, src []byte, fn func(du, su []uint16) (int, error)) (int, error) {
	if len(src)%2 != 0 || len(dst)%2 != 0 {
		return 0, ErrOddLength
	}
	su := make([]uint16, len(src)/2)
	for i := range su {
		su[i] = binary.LittleEndian.Uint16(src[2*i:])
	}
	du := make([]uint16, len(dst)/2)
	n, err := fn(du, su)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[2*i:], du[i])
	}
	return 2 * n, err
}

// NullTerminated returns s truncated at its first NUL code unit, for
// callers holding NUL-terminated buffers of unknown length. If s contains
// no aligned NUL unit it is returned unchanged.
func NullTerminated(s []byte) []byte {
	for i := 0; i+1 < len(s); i += 2 {
		if s[i] == 0 && s[i+1] == 0 {
			return s[:i]
		}
	}
	return s
}
