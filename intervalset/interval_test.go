package intervalset

import (
	"math"
	"testing"
)

func TestNewRejectsReversedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(7, 3) must panic")
		}
	}()
	New(Int(7), Int(3))
}

func TestIntervalSize(t *testing.T) {
	if got := New(Int(3), Int(7)).Size(); got != 5 {
		t.Fatalf("Size() = %d, want 5", got)
	}
	if got := Single(Int(3)).Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	if got, ok := New(Int(3), Int(7)).SizeExact(); !ok || got != 5 {
		t.Fatalf("SizeExact() = (%d, %v), want (5, true)", got, ok)
	}

	// the full 64-bit domain has 1<<64 elements, one too many for uint
	full := Full[Uint64]()
	if got := full.Size(); got != math.MaxUint {
		t.Fatalf("Size() = %d, want MaxUint", got)
	}
	if _, ok := full.SizeExact(); ok {
		t.Fatalf("SizeExact() of the full 64-bit domain must be inexact")
	}
}

func TestIntervalConstructors(t *testing.T) {
	cases := []struct {
		name string
		iv   Interval[Uint8]
		lo   Uint8
		hi   Uint8
	}{
		{"closed", New(Uint8(3), Uint8(7)), 3, 7},
		{"single", Single(Uint8(5)), 5, 5},
		{"half_open", Range(Uint8(3), Uint8(7)), 3, 6},
		{"from", From(Uint8(200)), 200, 255},
		{"up_to", UpTo(Uint8(10)), 0, 9},
		{"through", Through(Uint8(10)), 0, 10},
		{"full", Full[Uint8](), 0, 255},
	}

	for _, tc := range cases {
		if tc.iv.Lo() != tc.lo || tc.iv.Hi() != tc.hi {
			t.Fatalf("%s: got [%v, %v], want [%v, %v]", tc.name, tc.iv.Lo(), tc.iv.Hi(), tc.lo, tc.hi)
		}
	}
}

func TestRangePanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Range(5, 5) must panic")
		}
	}()
	Range(Uint8(5), Uint8(5))
}

func TestIntervalHull(t *testing.T) {
	a := New(Int(1), Int(5))
	b := New(Int(10), Int(20))
	h := a.Hull(b)
	if h.Lo() != 1 || h.Hi() != 20 {
		t.Fatalf("Hull = %v, want 1..=20", h)
	}
	// hull is symmetric
	if !b.Hull(a).Equal(h) {
		t.Fatalf("Hull must not depend on the operand order")
	}
}

func TestIntervalIntersection(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Int]
		want string
		ok   bool
	}{
		{"overlap", New(Int(1), Int(10)), New(Int(5), Int(20)), "5..=10", true},
		{"contained", New(Int(1), Int(10)), New(Int(3), Int(7)), "3..=7", true},
		{"touching", New(Int(1), Int(5)), New(Int(5), Int(9)), "5", true},
		{"disjoint", New(Int(1), Int(3)), New(Int(5), Int(9)), "", false},
	}

	for _, tc := range cases {
		got, ok := tc.a.Intersection(tc.b)
		if ok != tc.ok {
			t.Fatalf("%s: Intersection ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && got.String() != tc.want {
			t.Fatalf("%s: Intersection = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIntervalBelowAbove(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Interval[Int]
		below    string
		above    string
		hasBelow bool
		hasAbove bool
	}{
		{"middle_cut", New(Int(1), Int(10)), New(Int(4), Int(6)), "1..=3", "7..=10", true, true},
		{"covers_all", New(Int(4), Int(6)), New(Int(1), Int(10)), "", "", false, false},
		{"left_overlap", New(Int(1), Int(5)), New(Int(4), Int(10)), "1..=3", "", true, false},
		{"right_overlap", New(Int(5), Int(10)), New(Int(1), Int(6)), "", "7..=10", false, true},
		{"fully_below", New(Int(1), Int(3)), New(Int(5), Int(9)), "1..=3", "", true, false},
		{"fully_above", New(Int(5), Int(9)), New(Int(1), Int(3)), "", "5..=9", false, true},
	}

	for _, tc := range cases {
		below, okB := tc.a.Below(tc.b)
		above, okA := tc.a.Above(tc.b)
		if okB != tc.hasBelow || okA != tc.hasAbove {
			t.Fatalf("%s: ok = (%v, %v), want (%v, %v)", tc.name, okB, okA, tc.hasBelow, tc.hasAbove)
		}
		if okB && below.String() != tc.below {
			t.Fatalf("%s: Below = %v, want %v", tc.name, below, tc.below)
		}
		if okA && above.String() != tc.above {
			t.Fatalf("%s: Above = %v, want %v", tc.name, above, tc.above)
		}
	}
}

func TestIntervalOverlapsAndContains(t *testing.T) {
	a := New(Int(1), Int(5))
	if !a.Overlaps(New(Int(5), Int(9))) {
		t.Fatalf("intervals sharing a boundary value must overlap")
	}
	if a.Overlaps(New(Int(6), Int(9))) {
		t.Fatalf("disjoint intervals must not overlap")
	}
	if !a.Contains(1) || !a.Contains(5) || a.Contains(6) || a.Contains(0) {
		t.Fatalf("Contains is inclusive of both bounds")
	}
}

func TestIntervalString(t *testing.T) {
	if got := New(Int(3), Int(7)).String(); got != "3..=7" {
		t.Fatalf("String() = %q, want %q", got, "3..=7")
	}
	if got := Single(Int(3)).String(); got != "3" {
		t.Fatalf("String() = %q, want %q", got, "3")
	}
	if got := New(Rune('a'), Rune('z')).String(); got != "a..=z" {
		t.Fatalf("String() = %q, want %q", got, "a..=z")
	}

	lo, _ := ParseIPv4("10.0.0.0")
	hi, _ := ParseIPv4("10.0.0.255")
	if got := New(lo, hi).String(); got != "10.0.0.0..=10.0.0.255" {
		t.Fatalf("String() = %q, want %q", got, "10.0.0.0..=10.0.0.255")
	}
}
