package utf16case

import (
	"sync"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unicodeCaser implements CaseMapper with the full Unicode case mappings
// of golang.org/x/text/cases under a fixed locale tag.
type unicodeCaser struct {
	tag language.Tag
}

// invariant applies the locale-invariant (root locale) rules.
var invariant = unicodeCaser{language.Und}

// caserFor resolves a BCP 47 locale name. The fallback policy for empty or
// unparseable names is the invariant rules; locale names are never
// validated beyond that.
func caserFor(locale string) unicodeCaser {
	if locale == "" {
		return invariant
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return invariant
	}
	return unicodeCaser{tag}
}

type caserKey struct {
	tag     language.Tag
	toUpper bool
}

// cases.Caser values carry transform state and are not safe for concurrent
// use, so each (tag, direction) gets a pool of them. This keeps Convert
// and friends safe to call from multiple goroutines.
var caserPools sync.Map // caserKey -> *sync.Pool

func (c unicodeCaser) pool(toUpper bool) *sync.Pool {
	key := caserKey{c.tag, toUpper}
	if p, ok := caserPools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{
		New: func() any {
			var cs cases.Caser
			if toUpper {
				cs = cases.Upper(key.tag)
			} else {
				cs = cases.Lower(key.tag)
			}
			return &cs
		},
	}
	actual, _ := caserPools.LoadOrStore(key, p)
	return actual.(*sync.Pool)
}

func (c unicodeCaser) MapSegment(seg []uint16, toUpper bool) []uint16 {
	if c.tag == language.Und && len(seg) == 1 && seg[0] < 0x100 {
		u := latin1To(seg[0], toUpper)
		if u == seg[0] {
			return seg
		}
		return []uint16{u}
	}
	p := c.pool(toUpper)
	cs := p.Get().(*cases.Caser)
	s := cs.String(string(utf16.Decode(seg)))
	p.Put(cs)
	return utf16.Encode([]rune(s))
}
