package intervalset

// mergeIter lazily walks two interval slices, each individually sorted by
// lower bound, yielding the combined sequence in lower-bound order. Ties
// favor the left slice. This is a plain two-way merge, linear in the
// combined length.
type mergeIter[T Step[T]] struct {
	lhs, rhs []Interval[T]
	i, j     int
}

func (m *mergeIter[T]) next() (Interval[T], bool) {
	switch {
	case m.i < len(m.lhs) && m.j < len(m.rhs):
		if m.lhs[m.i].lo.Compare(m.rhs[m.j].lo) <= 0 {
			m.i++
			return m.lhs[m.i-1], true
		}
		m.j++
		return m.rhs[m.j-1], true
	case m.i < len(m.lhs):
		m.i++
		return m.lhs[m.i-1], true
	case m.j < len(m.rhs):
		m.j++
		return m.rhs[m.j-1], true
	default:
		return Interval[T]{}, false
	}
}
