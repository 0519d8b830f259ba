package intervalset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCanonical fails the test unless the interval list of s is
// strictly sorted by lower bound, non-overlapping and non-adjacent.
func requireCanonical[T Step[T]](t *testing.T, s *Set[T]) {
	t.Helper()
	ivs := s.Intervals()
	for i := 1; i < len(ivs); i++ {
		next, ok := ivs[i-1].Hi().Forward()
		require.True(t, ok, "an interval ending at the domain maximum must be last")
		require.Negative(t, next.Compare(ivs[i].Lo()),
			"intervals %v and %v overlap or touch", ivs[i-1], ivs[i])
	}
}

func TestUnionMergesTouchingIntervals(t *testing.T) {
	a := Of(New(Int(1), Int(3)))
	b := Of(New(Int(4), Int(6)))

	u := a.Union(b)
	requireCanonical(t, u)
	require.Equal(t, "(1..=6)", u.String())
	assert.Equal(t, 1, u.Len())
}

func TestUnionKeepsGaps(t *testing.T) {
	a := Of(New(Int(1), Int(3)))
	b := Of(New(Int(5), Int(6)))

	u := a.Union(b)
	requireCanonical(t, u)
	require.Equal(t, "(1..=3 U 5..=6)", u.String())
	assert.Equal(t, 2, u.Len())
}

func TestUnionProperties(t *testing.T) {
	a := Of(New(Int(1), Int(5)), New(Int(10), Int(20)), Single(Int(30)))
	b := Of(New(Int(4), Int(12)), New(Int(25), Int(35)))

	ab := a.Union(b)
	ba := b.Union(a)
	requireCanonical(t, ab)
	require.True(t, ab.Equal(ba), "union must be commutative: %v != %v", ab, ba)
	require.True(t, a.Union(a).Equal(a), "union must be idempotent")

	empty := Empty[Int]()
	require.True(t, a.Union(empty).Equal(a))
	require.True(t, empty.Union(empty).IsEmpty())
}

func TestUnionAtDomainMaximum(t *testing.T) {
	a := Of(New(Uint8(250), Uint8(255)))
	b := Of(New(Uint8(252), Uint8(255)), Single(Uint8(0)))

	u := a.Union(b)
	requireCanonical(t, u)
	require.Equal(t, "(0 U 250..=255)", u.String())
}

func TestIntersection(t *testing.T) {
	a := Of(New(Int(1), Int(10)), New(Int(20), Int(30)))
	b := Of(New(Int(5), Int(25)))

	x := a.Intersection(b)
	requireCanonical(t, x)
	require.Equal(t, "(5..=10 U 20..=25)", x.String())

	require.True(t, a.Intersection(Empty[Int]()).IsEmpty())
	require.True(t, a.Intersection(a).Equal(a))
	require.True(t, a.Intersection(b).Equal(b.Intersection(a)))
}

func TestDifference(t *testing.T) {
	a := Of(New(Int(1), Int(10)))
	b := Of(New(Int(4), Int(6)))

	d := a.Difference(b)
	requireCanonical(t, d)
	require.Equal(t, "(1..=3 U 7..=10)", d.String())

	require.True(t, a.Difference(Empty[Int]()).Equal(a))
	require.True(t, a.Difference(a).IsEmpty())
	require.True(t, Empty[Int]().Difference(a).IsEmpty())
}

func TestDifferenceTrimsRemainderRepeatedly(t *testing.T) {
	a := Of(New(Int(0), Int(100)))
	b := Of(New(Int(10), Int(19)), New(Int(30), Int(39)), New(Int(50), Int(59)))

	d := a.Difference(b)
	requireCanonical(t, d)
	require.Equal(t, "(0..=9 U 20..=29 U 40..=49 U 60..=100)", d.String())
}

func TestPartitionIdentity(t *testing.T) {
	// A == (A ∩ B) ∪ (A \ B)
	a := Of(New(Int(1), Int(10)), New(Int(20), Int(30)), Single(Int(50)))
	b := Of(New(Int(5), Int(22)), New(Int(40), Int(60)))

	got := a.Intersection(b).Union(a.Difference(b))
	requireCanonical(t, got)
	require.True(t, got.Equal(a), "got %v, want %v", got, a)
}

func TestComplement(t *testing.T) {
	full := FullSet[Uint8]()
	require.Equal(t, "(0..=255)", full.String())
	require.True(t, Complement(full).IsEmpty())
	require.True(t, Complement(Empty[Uint8]()).Equal(full))

	a := Of(New(Uint8(10), Uint8(20)), Single(Uint8(42)))
	c := Complement(a)
	requireCanonical(t, c)
	require.Equal(t, "(0..=9 U 21..=41 U 43..=255)", c.String())

	// involution
	require.True(t, Complement(c).Equal(a))

	// A \ B == A ∩ complement(B)
	b := Of(New(Uint8(15), Uint8(50)))
	require.True(t, a.Difference(b).Equal(a.Intersection(Complement(b))))
}

func TestInsert(t *testing.T) {
	s := Empty[Int]()
	s.Insert(New(Int(1), Int(3)))
	s.InsertValue(Int(10))
	s.Insert(New(Int(4), Int(6)))
	requireCanonical(t, s)
	require.Equal(t, "(1..=6 U 10)", s.String())

	s.Insert(New(Int(0), Int(20)))
	require.Equal(t, "(0..=20)", s.String())
}

func TestFromValues(t *testing.T) {
	s := FromValues(Int(3), Int(1), Int(2), Int(7))
	requireCanonical(t, s)
	require.Equal(t, "(1..=3 U 7)", s.String())
}

func TestSetContains(t *testing.T) {
	s := Of(New(Int(1), Int(3)), New(Int(7), Int(9)))
	for _, v := range []Int{1, 2, 3, 7, 9} {
		assert.True(t, s.Contains(v), "Contains(%d)", v)
	}
	for _, v := range []Int{0, 4, 6, 10} {
		assert.False(t, s.Contains(v), "Contains(%d)", v)
	}
	assert.False(t, Empty[Int]().Contains(0))
}

func TestSetSize(t *testing.T) {
	s := Of(New(Int(1), Int(3)), New(Int(7), Int(9)))
	require.Equal(t, uint(6), s.Size())
	n, ok := s.SizeExact()
	require.True(t, ok)
	require.Equal(t, uint(6), n)

	require.Equal(t, uint(0), Empty[Int]().Size())

	// all Unicode scalar values: 0x110000 minus the surrogate gap
	runes := FullSet[Rune]()
	require.Equal(t, uint(0x110000-0x800), runes.Size())

	// the full 64-bit domain overflows uint
	full := FullSet[Uint64]()
	require.Equal(t, uint(math.MaxUint), full.Size())
	_, ok = full.SizeExact()
	require.False(t, ok)
}

func TestSetString(t *testing.T) {
	require.Equal(t, "()", Empty[Int]().String())
	require.Equal(t, "(5)", Of(Single(Int(5))).String())

	lo, _ := ParseIPv4("192.168.0.0")
	hi, _ := ParseIPv4("192.168.0.255")
	require.Equal(t, "(192.168.0.0..=192.168.0.255)", Of(New(lo, hi)).String())
}

func TestAlgebraDoesNotMutateInputs(t *testing.T) {
	a := Of(New(Int(1), Int(10)))
	b := Of(New(Int(4), Int(6)))

	_ = a.Union(b)
	_ = a.Intersection(b)
	_ = a.Difference(b)

	require.Equal(t, "(1..=10)", a.String())
	require.Equal(t, "(4..=6)", b.String())
}
