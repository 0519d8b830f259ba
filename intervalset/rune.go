package intervalset

import (
	"cmp"
	"unicode"
)

// Rune is the Unicode scalar value index type.
//
// The surrogate range 0xD800..0xDFFF is not part of the domain: stepping
// forward from U+D7FF lands on U+E000 and stepping backward from U+E000
// lands on U+D7FF. Values inside the surrogate range are not valid Rune
// values and the behavior of the capability methods on them is
// unspecified.
type Rune rune

const (
	surrogateLo   Rune = 0xD800
	surrogateHi   Rune = 0xDFFF
	surrogateSize      = 0x800
)

func (x Rune) Compare(other Rune) int { return cmp.Compare(x, other) }

func (x Rune) Forward() (Rune, bool) {
	switch {
	case x == surrogateLo-1:
		return surrogateHi + 1, true
	case x == unicode.MaxRune:
		return x, false
	default:
		return x + 1, true
	}
}

func (x Rune) Backward() (Rune, bool) {
	switch {
	case x == surrogateHi+1:
		return surrogateLo - 1, true
	case x == 0:
		return x, false
	default:
		return x - 1, true
	}
}

func (x Rune) Steps(end Rune) (uint, bool) {
	if end < x {
		return 0, false
	}
	n := uint(end - x)
	// The naive difference counts the surrogate gap when the pair
	// straddles it.
	if x < surrogateLo && end > surrogateHi {
		n -= surrogateSize
	}
	return n, true
}

func (Rune) Min() Rune { return 0 }
func (Rune) Max() Rune { return unicode.MaxRune }

func (x Rune) String() string { return string(rune(x)) }
