package comparison

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"

	"github.com/scenarigo/verify/errors"
)

// ErrNotComparable is returned when two operands can not be ordered or
// compared under the active comparison.
var ErrNotComparable = errors.ErrNotComparable

// Comparator defines a total order over values. Compare returns a negative
// number, zero or a positive number when a is less than, equal to or greater
// than b. It returns an error wrapping ErrNotComparable for operands it does
// not understand.
type Comparator interface {
	Compare(a, b any) (int, error)
	Description() string
}

type funcComparator[T any] struct {
	desc string
	f    func(a, b T) int
}

// New returns a Comparator over values of type T.
func New[T any](description string, f func(a, b T) int) Comparator {
	return &funcComparator[T]{desc: description, f: f}
}

func (c *funcComparator[T]) Compare(a, b any) (int, error) {
	x, ok := a.(T)
	if !ok {
		return 0, c.mismatch(a)
	}
	y, ok := b.(T)
	if !ok {
		return 0, c.mismatch(b)
	}
	return c.f(x, y), nil
}

func (c *funcComparator[T]) mismatch(v any) error {
	var zero T
	return errors.Wrapf(ErrNotComparable, "%s can not compare %T: expected %T", c.desc, v, any(zero))
}

func (c *funcComparator[T]) Description() string {
	return c.desc
}

func (c *funcComparator[T]) String() string {
	return c.desc
}

// Ordered returns a Comparator using the natural order of T.
func Ordered[T constraints.Ordered](description string) Comparator {
	return New(description, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

type reverse struct {
	c Comparator
}

// Reverse returns a Comparator that imposes the reverse order of c.
func Reverse(c Comparator) Comparator {
	return &reverse{c: c}
}

func (r *reverse) Compare(a, b any) (int, error) {
	return r.c.Compare(b, a)
}

func (r *reverse) Description() string {
	return fmt.Sprintf("reverse %s", r.c.Description())
}

// CaseInsensitiveStrings compares strings after Unicode case folding.
// A Caser is not safe for concurrent use, so each comparison folds with its
// own.
var CaseInsensitiveStrings = New("CaseInsensitiveStringComparator", func(a, b string) int {
	fold := cases.Fold()
	return strings.Compare(fold.String(a), fold.String(b))
})

// NaturalOrder is a Comparator using the natural order of values, the one
// the natural strategy uses.
var NaturalOrder Comparator = naturalOrder{}

type naturalOrder struct{}

func (naturalOrder) Compare(a, b any) (int, error) {
	return naturalCompare(a, b)
}

func (naturalOrder) Description() string {
	return "NaturalOrderComparator"
}
