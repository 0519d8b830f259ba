package intervalset

import (
	"fmt"
	"math"
)

// Interval is a closed, non-empty, contiguous range [lo, hi] over a
// discrete index type. The lower bound is always less or equal than the
// upper bound; a single value is an interval with lo == hi. Intervals are
// immutable values, every transformation returns a new one.
type Interval[T Step[T]] struct {
	lo, hi T
}

// New returns the closed interval [lo, hi]. It panics when lo > hi:
// intervals are never empty and the check guards the canonical form of
// every set built from them.
func New[T Step[T]](lo, hi T) Interval[T] {
	if lo.Compare(hi) > 0 {
		panic("intervalset: interval lower bound must be less or equal than the upper bound")
	}
	return Interval[T]{lo: lo, hi: hi}
}

// Single returns the interval containing only v.
func Single[T Step[T]](v T) Interval[T] {
	return Interval[T]{lo: v, hi: v}
}

// Range converts the half-open range [lo, hi) to a closed interval.
// It panics when hi is the domain minimum or the range is empty.
func Range[T Step[T]](lo, hi T) Interval[T] {
	return New(lo, Prev(hi))
}

// From returns the interval [lo, MAX].
func From[T Bounded[T]](lo T) Interval[T] {
	return New(lo, lo.Max())
}

// UpTo converts the half-open range [MIN, hi) to a closed interval.
// It panics when hi is the domain minimum.
func UpTo[T Bounded[T]](hi T) Interval[T] {
	return New(hi.Min(), Prev(hi))
}

// Through returns the interval [MIN, hi].
func Through[T Bounded[T]](hi T) Interval[T] {
	return New(hi.Min(), hi)
}

// Full returns the interval spanning every value of the domain.
func Full[T Bounded[T]]() Interval[T] {
	var z T
	return Interval[T]{lo: z.Min(), hi: z.Max()}
}

// Lo returns the lower bound.
func (iv Interval[T]) Lo() T { return iv.lo }

// Hi returns the upper bound.
func (iv Interval[T]) Hi() T { return iv.hi }

// Size returns a lower bound for the number of elements. The value is
// exact whenever it is below math.MaxUint; use SizeExact to tell the two
// cases apart.
func (iv Interval[T]) Size() uint {
	n, _ := iv.lo.Steps(iv.hi)
	if n == math.MaxUint {
		return n
	}
	return n + 1
}

// SizeExact returns the number of elements, or ok == false when the count
// does not fit in a uint.
func (iv Interval[T]) SizeExact() (uint, bool) {
	n, exact := iv.lo.Steps(iv.hi)
	if !exact || n == math.MaxUint {
		return 0, false
	}
	return n + 1, true
}

// Hull returns the smallest interval containing both intervals.
func (iv Interval[T]) Hull(other Interval[T]) Interval[T] {
	res := iv
	if other.lo.Compare(res.lo) < 0 {
		res.lo = other.lo
	}
	if other.hi.Compare(res.hi) > 0 {
		res.hi = other.hi
	}
	return res
}

// Intersection returns the interval contained in both intervals, or
// ok == false when they do not overlap.
func (iv Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	res := iv
	if other.lo.Compare(res.lo) > 0 {
		res.lo = other.lo
	}
	if other.hi.Compare(res.hi) < 0 {
		res.hi = other.hi
	}
	if res.lo.Compare(res.hi) > 0 {
		return Interval[T]{}, false
	}
	return res, true
}

// Below returns the part of the interval strictly below other, or
// ok == false when that part is empty. Together with Above it forms the
// difference of the two intervals:
//
//	a..................A
//	      b......B
//	--------------------
//	l....L        r....R
//
// Prev is only reached when other.lo is above the receiver's lower bound,
// so the step cannot underflow.
func (iv Interval[T]) Below(other Interval[T]) (Interval[T], bool) {
	if iv.lo.Compare(other.lo) >= 0 {
		return Interval[T]{}, false
	}
	hi := Prev(other.lo)
	if iv.hi.Compare(hi) < 0 {
		hi = iv.hi
	}
	return Interval[T]{lo: iv.lo, hi: hi}, true
}

// Above returns the part of the interval strictly above other, or
// ok == false when that part is empty. Next is only reached when other.hi
// is below the receiver's upper bound, so the step cannot overflow.
func (iv Interval[T]) Above(other Interval[T]) (Interval[T], bool) {
	if iv.hi.Compare(other.hi) <= 0 {
		return Interval[T]{}, false
	}
	lo := Next(other.hi)
	if iv.lo.Compare(lo) > 0 {
		lo = iv.lo
	}
	return Interval[T]{lo: lo, hi: iv.hi}, true
}

// Overlaps reports whether the intervals share at least one value.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return iv.hi.Compare(other.lo) >= 0 && other.hi.Compare(iv.lo) >= 0
}

// Contains reports whether v is inside the interval.
func (iv Interval[T]) Contains(v T) bool {
	return iv.lo.Compare(v) <= 0 && iv.hi.Compare(v) >= 0
}

// Equal reports whether both intervals have the same bounds.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.lo.Compare(other.lo) == 0 && iv.hi.Compare(other.hi) == 0
}

// String renders the interval as "lo..=hi", or just "lo" for a single
// value.
func (iv Interval[T]) String() string {
	if iv.lo.Compare(iv.hi) != 0 {
		return fmt.Sprintf("%v..=%v", iv.lo, iv.hi)
	}
	return fmt.Sprintf("%v", iv.lo)
}
