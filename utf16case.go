package utf16case

import "errors"

const (
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000

	surrSelf = 0x10000
	maxRune  = '\U0010FFFF'
)

var (
	// ErrInsufficientBuffer is returned when the destination buffer is
	// exhausted before the converted source fits. The call is side-effect
	// free beyond the destination contents and may be retried from scratch
	// with a larger destination.
	ErrInsufficientBuffer = errors.New("utf16case: insufficient destination buffer")

	// ErrInvalidCodePoint is returned when a code point above U+10FFFF is
	// appended. Well-formed inputs and a correct CaseMapper never produce
	// one; it signals a defective mapper.
	ErrInvalidCodePoint = errors.New("utf16case: invalid code point")
)

// A CaseMapper maps one segment (a single BMP code unit or a surrogate
// pair) to its upper or lower case form. The replacement may be any
// length: Convert discards replacements whose code-unit length differs
// from the segment's and emits the original segment instead.
type CaseMapper interface {
	MapSegment(seg []uint16, toUpper bool) []uint16
}

// nextBoundary returns the offset of the first code unit after the segment
// starting at i. A lead surrogate immediately followed by a trail surrogate
// advances by two units, anything else by one. Never advances past len(s).
func nextBoundary(s []uint16, i int) int {
	j := i + 1
	if surr1 <= s[i] && s[i] < surr2 && j < len(s) && surr2 <= s[j] && s[j] < surr3 {
		j++
	}
	return j
}

func isSurrogate(u uint16) bool { return surr1 <= u && u < surr3 }

// decodeSegment returns the code point encoded by a one or two unit
// segment. Unpaired surrogates decode to their own unit value.
func decodeSegment(seg []uint16) rune {
	if len(seg) == 2 {
		return (rune(seg[0])-surr1)<<10 | (rune(seg[1]) - surr2) + surrSelf
	}
	return rune(seg[0])
}

// appendCodePoint writes the UTF-16 encoding of cp at dst[n:] and returns
// the new write offset. Capacity is checked before anything is written: a
// supplementary code point with only one slot remaining fails without a
// partial write. The offset only advances on success.
func appendCodePoint(dst []uint16, n int, cp rune) (int, error) {
	if cp > maxRune {
		return n, ErrInvalidCodePoint
	}
	if cp < surrSelf {
		if n >= len(dst) {
			return n, ErrInsufficientBuffer
		}
		dst[n] = uint16(cp)
		return n + 1, nil
	}
	if len(dst)-n < 2 {
		return n, ErrInsufficientBuffer
	}
	dst[n] = uint16(cp>>10) + 0xd7c0
	dst[n+1] = uint16(cp&0x3ff) | surr2
	return n + 2, nil
}

// Convert case converts src into dst one segment at a time using m and
// returns the number of code units written. The conversion never changes
// the encoded length: a replacement whose length differs from its segment
// is discarded and the segment is copied through unchanged, so a dst with
// len(dst) >= len(src) always suffices. Unpaired surrogates bypass m and
// are copied through, never dropped.
//
// Convert stops at the first error. The contents of dst are unspecified
// after a non-nil error and must not be used.
func Convert(dst, src []uint16, m CaseMapper, toUpper bool) (int, error) {
	n := 0
	for i := 0; i < len(src); {
		j := nextBoundary(src, i)
		seg := src[i:j:j]
		out := seg
		if j-i == 2 || !isSurrogate(seg[0]) {
			if rep := m.MapSegment(seg, toUpper); len(rep) == len(seg) {
				out = rep
			}
		}
		for k := 0; k < len(out); {
			l := nextBoundary(out, k)
			var err error
			n, err = appendCodePoint(dst, n, decodeSegment(out[k:l]))
			if err != nil {
				return n, err
			}
			k = l
		}
		i = j
	}
	return n, nil
}

// ConvertCased case converts src into dst under the casing rules of the
// named locale (a BCP 47 tag such as "tr" or "en-US") and returns the
// number of code units written. An empty or unrecognized locale name
// selects the locale-invariant rules.
func ConvertCased(dst, src []uint16, locale string, toUpper bool) (int, error) {
	return Convert(dst, src, caserFor(locale), toUpper)
}

// ConvertCasedInvariant is ConvertCased under the locale-invariant rules.
func ConvertCasedInvariant(dst, src []uint16, toUpper bool) (int, error) {
	return Convert(dst, src, invariant, toUpper)
}

// NullTerminated returns s truncated at its first NUL code unit, for
// callers holding NUL-terminated buffers of unknown length. If s contains
// no NUL it is returned unchanged.
func NullTerminated(s []uint16) []uint16 {
	for i, u := range s {
		if u == 0 {
			return s[:i]
		}
	}
	return s
}
