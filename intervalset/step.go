// Package intervalset represents subsets of a discrete ordered type as a
// minimal collection of closed intervals and provides set algebra over them
// (union, intersection, difference, complement).
//
// A subset like "all ports except 22 and 443" or "valid Unicode scalar
// values" is stored as a short sorted list of intervals instead of
// materializing every element. Index types plug in through the Step and
// Bounded capability interfaces; implementations for the fixed-width
// integers, Unicode scalar values and IPv4/IPv6 addresses are provided.
package intervalset

// Step is the capability contract for discrete ordered index types.
//
// Forward and Backward must be mutual inverses wherever both are defined:
// if Forward succeeds on x, Backward on the result returns x, and vice
// versa.
type Step[T any] interface {
	// Compare returns a negative number, zero or a positive number when
	// the receiver is less than, equal to or greater than other.
	Compare(other T) int

	// Forward returns the successor, or ok == false when the receiver is
	// the maximum representable value.
	Forward() (T, bool)

	// Backward returns the predecessor, or ok == false when the receiver
	// is the minimum representable value.
	Backward() (T, bool)

	// Steps returns the number of Forward applications needed to reach
	// end from the receiver.
	//
	// If end is less than the receiver, Steps returns (0, false). If the
	// count does not fit in a uint, it returns (math.MaxUint, false).
	// Otherwise n is the exact count and exact is true.
	Steps(end T) (n uint, exact bool)
}

// Bounded is implemented by index types with explicit minimum and maximum
// representable values. It enables full-domain intervals and set
// complement. Min and Max ignore the receiver value.
type Bounded[T any] interface {
	Step[T]

	Min() T
	Max() T
}

// Next returns the successor of x, panicking when x is the maximum
// representable value. Callers must only use it where the step is already
// known to be safe; use Forward for a checked step.
func Next[T Step[T]](x T) T {
	n, ok := x.Forward()
	if !ok {
		panic("intervalset: Next called on the maximum value of the domain")
	}
	return n
}

// Prev returns the predecessor of x, panicking when x is the minimum
// representable value. Callers must only use it where the step is already
// known to be safe; use Backward for a checked step.
func Prev[T Step[T]](x T) T {
	p, ok := x.Backward()
	if !ok {
		panic("intervalset: Prev called on the minimum value of the domain")
	}
	return p
}
