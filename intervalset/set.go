package intervalset

import (
	"math"
	"slices"
	"sort"
	"strings"
)

// Set is a subset of a discrete index type stored as its canonical
// interval decomposition: intervals are kept in strictly increasing
// order of their lower bound, never overlap, and are never adjacent
// (touching intervals are merged on the spot). The canonical form makes
// the representation of a logical subset unique, which is what the
// merge-based algebra below relies on.
//
// All algebra operations are pure: they never mutate their inputs and
// return freshly allocated results. Only Insert and InsertValue mutate
// the receiver, by wholesale replacement of its interval list.
type Set[T Step[T]] struct {
	intervals []Interval[T]
}

// Empty returns the empty set.
func Empty[T Step[T]]() *Set[T] {
	return &Set[T]{}
}

// Of builds a set from one or more intervals, folding every extra
// interval in with Insert.
func Of[T Step[T]](first Interval[T], rest ...Interval[T]) *Set[T] {
	s := &Set[T]{intervals: []Interval[T]{first}}
	for _, iv := range rest {
		s.Insert(iv)
	}
	return s
}

// FromValues builds a set from single values.
func FromValues[T Step[T]](values ...T) *Set[T] {
	s := Empty[T]()
	for _, v := range values {
		s.InsertValue(v)
	}
	return s
}

// FullSet returns the set containing every value of the domain.
func FullSet[T Bounded[T]]() *Set[T] {
	return &Set[T]{intervals: []Interval[T]{Full[T]()}}
}

// Complement returns the set of values not in s.
func Complement[T Bounded[T]](s *Set[T]) *Set[T] {
	return FullSet[T]().Difference(s)
}

// Len returns the number of intervals in the canonical decomposition,
// not the number of elements; see Size and SizeExact for those.
func (s *Set[T]) Len() int {
	return len(s.intervals)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Intervals returns a copy of the canonical interval list.
func (s *Set[T]) Intervals() []Interval[T] {
	return slices.Clone(s.intervals)
}

// Contains reports whether v is an element of the set.
func (s *Set[T]) Contains(v T) bool {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].hi.Compare(v) >= 0
	})
	return i < len(s.intervals) && s.intervals[i].lo.Compare(v) <= 0
}

// Size returns a lower bound for the number of elements, saturating at
// math.MaxUint. The value is exact whenever it is below math.MaxUint.
func (s *Set[T]) Size() uint {
	size := uint(0)
	for _, iv := range s.intervals {
		n := iv.Size()
		if n > math.MaxUint-size {
			return math.MaxUint
		}
		size += n
	}
	return size
}

// SizeExact returns the number of elements, or ok == false when the
// count does not fit in a uint.
func (s *Set[T]) SizeExact() (uint, bool) {
	size := uint(0)
	for _, iv := range s.intervals {
		n, ok := iv.SizeExact()
		if !ok || n > math.MaxUint-size {
			return 0, false
		}
		size += n
	}
	return size, true
}

// Insert adds every value of the interval to the set, merging with
// existing intervals as needed. It reuses Union rather than splicing in
// place, so the canonical form is re-established by construction.
func (s *Set[T]) Insert(iv Interval[T]) {
	s.intervals = s.Union(&Set[T]{intervals: []Interval[T]{iv}}).intervals
}

// InsertValue adds a single value to the set.
func (s *Set[T]) InsertValue(v T) {
	s.Insert(Single(v))
}

// Union returns the set of values in either set. It merges both interval
// lists by lower bound and folds overlapping or touching neighbors into
// their hull, which is exactly what restores non-overlap and
// non-adjacency. Linear in the combined interval count.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	it := mergeIter[T]{lhs: s.intervals, rhs: other.intervals}

	prev, ok := it.next()
	if !ok {
		return Empty[T]()
	}

	var result []Interval[T]
	for {
		iv, ok := it.next()
		if !ok {
			break
		}
		// Touching or overlapping intervals collapse into the hull.
		// When prev already reaches the domain maximum there is no
		// successor to compare against, but iv then necessarily
		// overlaps prev.
		if next, hasNext := prev.hi.Forward(); !hasNext || iv.lo.Compare(next) <= 0 {
			prev = prev.Hull(iv)
		} else {
			result = append(result, prev)
			prev = iv
		}
	}
	result = append(result, prev)

	return &Set[T]{intervals: result}
}

// Intersection returns the set of values in both sets.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	it := mergeIter[T]{lhs: s.intervals, rhs: other.intervals}

	prev, ok := it.next()
	if !ok {
		return Empty[T]()
	}

	var result []Interval[T]
	for {
		iv, ok := it.next()
		if !ok {
			break
		}
		if iv.lo.Compare(prev.hi) <= 0 {
			// Pieces cut out of canonical inputs can never be
			// adjacent to each other, no coalescing pass needed.
			if x, ok := prev.Intersection(iv); ok {
				result = append(result, x)
			}
			if iv.hi.Compare(prev.hi) > 0 {
				prev = iv
			}
		} else {
			prev = iv
		}
	}

	return &Set[T]{intervals: result}
}

// Difference returns the set of values in s but not in other. It is a
// subtractive scan with two independent cursors: each interval of other
// trims the current interval of s, and a surviving upper remainder stays
// current because later intervals of other may trim it further.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	var result []Interval[T]

	i, j := 0, 0
	var cur Interval[T]
	have := false
	if i < len(s.intervals) {
		cur, have = s.intervals[i], true
		i++
	}

	for have && j < len(other.intervals) {
		b := other.intervals[j]
		if left, ok := cur.Below(b); ok {
			result = append(result, left)
		}
		if right, ok := cur.Above(b); ok {
			cur = right
			j++
		} else if i < len(s.intervals) {
			cur = s.intervals[i]
			i++
		} else {
			have = false
		}
	}

	if have {
		result = append(result, cur)
		result = append(result, s.intervals[i:]...)
	}

	return &Set[T]{intervals: result}
}

// Equal reports whether both sets contain the same values. Canonical
// form makes this a pairwise interval comparison.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return slices.EqualFunc(s.intervals, other.intervals, Interval[T].Equal)
}

// String renders the set as its intervals joined with " U " inside
// parentheses, "()" for the empty set.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(" U ")
		}
		b.WriteString(iv.String())
	}
	b.WriteString(")")
	return b.String()
}
