// Package calc parses textual range expressions and evaluates set
// algebra over a selected index domain. It is the glue between the CLI
// and the intervalset library.
package calc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vipcxj/iset/intervalset"
)

// ParseSet parses a comma separated list of range tokens into a set.
//
// Supported token forms (the library's own range vocabulary):
//
//	v       single value
//	a..=b   closed range [a, b]
//	a..b    half-open range [a, b)
//	a..     from a to the domain maximum
//	..=b    from the domain minimum through b
//	..b     from the domain minimum up to b (exclusive)
//	..      the full domain
//
// parse converts one value of the domain, e.g. a port number or an
// address. Tokens are folded into the set with Insert, so the result is
// canonical regardless of order or overlap in the input.
func ParseSet[T intervalset.Bounded[T]](input string, parse func(string) (T, error)) (*intervalset.Set[T], error) {
	set := intervalset.Empty[T]()
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, errors.Errorf("empty range token in %q", input)
		}
		iv, err := ParseInterval(tok, parse)
		if err != nil {
			return nil, err
		}
		set.Insert(iv)
	}
	return set, nil
}

// ParseInterval parses a single range token. Unlike the interval
// constructors it never panics: reversed bounds and empty half-open
// ranges are reported as errors, so CLI input cannot trip the library's
// fail-fast checks.
func ParseInterval[T intervalset.Bounded[T]](tok string, parse func(string) (T, error)) (intervalset.Interval[T], error) {
	var zero intervalset.Interval[T]

	sep := strings.Index(tok, "..")
	if sep < 0 {
		v, err := parse(tok)
		if err != nil {
			return zero, errors.Wrapf(err, "invalid value %q", tok)
		}
		return intervalset.Single(v), nil
	}

	loStr := strings.TrimSpace(tok[:sep])
	rest := tok[sep+2:]
	inclusive := strings.HasPrefix(rest, "=")
	hiStr := strings.TrimSpace(strings.TrimPrefix(rest, "="))

	var bound T
	lo := bound.Min()
	if loStr != "" {
		v, err := parse(loStr)
		if err != nil {
			return zero, errors.Wrapf(err, "invalid lower bound in %q", tok)
		}
		lo = v
	}

	hi := bound.Max()
	if hiStr != "" {
		v, err := parse(hiStr)
		if err != nil {
			return zero, errors.Wrapf(err, "invalid upper bound in %q", tok)
		}
		hi = v
	} else if inclusive {
		return zero, errors.Errorf("missing upper bound in %q", tok)
	}

	if hiStr != "" && !inclusive {
		p, ok := hi.Backward()
		if !ok {
			return zero, errors.Errorf("empty range %q: exclusive upper bound is the domain minimum", tok)
		}
		hi = p
	}

	if lo.Compare(hi) > 0 {
		return zero, errors.Errorf("empty range %q: lower bound above upper bound", tok)
	}
	return intervalset.New(lo, hi), nil
}
