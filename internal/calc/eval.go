package calc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vipcxj/iset/intervalset"
)

// Op is a set-algebra operation selectable on the command line.
type Op int

const (
	OpUnion Op = iota
	OpIntersect
	OpDiff
	OpComplement
)

// Result is the outcome of evaluating one set expression.
type Result struct {
	// Set is the canonical rendering of the resulting set.
	Set string
	// Intervals is the number of intervals in the canonical form.
	Intervals int
	// Size is the element count, a saturating lower bound when Exact is
	// false.
	Size uint
	// Exact reports whether Size is the exact element count.
	Exact bool
}

// Eval parses each argument as a set over the given domain and applies
// the operation across them in argument order.
func Eval(op Op, domain Domain, args []string) (*Result, error) {
	switch domain {
	case DomainU8:
		return evalOp(op, parseUint8, args)
	case DomainU16:
		return evalOp(op, parseUint16, args)
	case DomainU32:
		return evalOp(op, parseUint32, args)
	case DomainU64:
		return evalOp(op, parseUint64, args)
	case DomainI8:
		return evalOp(op, parseInt8, args)
	case DomainI16:
		return evalOp(op, parseInt16, args)
	case DomainI32:
		return evalOp(op, parseInt32, args)
	case DomainI64:
		return evalOp(op, parseInt64, args)
	case DomainChar:
		return evalOp(op, parseChar, args)
	case DomainIPv4:
		return evalOp(op, intervalset.ParseIPv4, args)
	case DomainIPv6:
		return evalOp(op, intervalset.ParseIPv6, args)
	default:
		return nil, errors.Errorf("unsupported index type: %v", domain)
	}
}

func evalOp[T intervalset.Bounded[T]](op Op, parse func(string) (T, error), args []string) (*Result, error) {
	sets := make([]*intervalset.Set[T], 0, len(args))
	for _, arg := range args {
		s, err := ParseSet(arg, parse)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if len(sets) == 0 {
		return nil, errors.New("at least one set is required")
	}

	res := sets[0]
	switch op {
	case OpUnion:
		for _, s := range sets[1:] {
			res = res.Union(s)
		}
	case OpIntersect:
		for _, s := range sets[1:] {
			res = res.Intersection(s)
		}
	case OpDiff:
		for _, s := range sets[1:] {
			res = res.Difference(s)
		}
	case OpComplement:
		if len(sets) != 1 {
			return nil, errors.Errorf("complement takes exactly one set, got %d", len(sets))
		}
		res = intervalset.Complement(res)
	default:
		return nil, errors.Errorf("unsupported operation: %d", op)
	}

	size, exact := res.SizeExact()
	if !exact {
		size = res.Size()
	}
	return &Result{
		Set:       res.String(),
		Intervals: res.Len(),
		Size:      size,
		Exact:     exact,
	}, nil
}

// Run evaluates one operation from parsed command-line flags and writes
// the result to w. It is the RunE body shared by all subcommands.
func Run(w io.Writer, flags *pflag.FlagSet, op Op, args []string) error {
	typeName, err := flags.GetString("type")
	if err != nil {
		return err
	}
	domain, err := DomainString(typeName)
	if err != nil {
		return errors.Errorf("unknown index type %q, expected one of %v", typeName, DomainStrings())
	}
	showSize, err := flags.GetBool("size")
	if err != nil {
		return err
	}

	res, err := Eval(op, domain, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, res.Set)
	if showSize {
		if res.Exact {
			fmt.Fprintf(w, "size: %d\n", res.Size)
		} else {
			fmt.Fprintf(w, "size: >=%d\n", res.Size)
		}
	}
	return nil
}
