package assert

import (
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/internal/reflectutil"
	"github.com/scenarigo/verify/reporter"
)

// Comparables asserts on ordered values: numbers, strings, times or any type
// the strategy of the facade can compare.
type Comparables[T any] struct {
	base
}

// NewComparables returns a facade reporting failures to rep.
func NewComparables[T any](rep reporter.Reporter, opts ...Option) (*Comparables[T], error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Comparables[T]{base: b}, nil
}

func (a *Comparables[T]) checkNotNil(info *failure.Info, actual T) bool {
	if reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldNotBeNil())
		return true
	}
	return false
}

// IsEqualTo verifies that actual equals expected under the strategy.
func (a *Comparables[T]) IsEqualTo(info *failure.Info, actual, expected T) error {
	eq, err := a.strategy.AreEqual(actual, expected)
	if err != nil {
		return err
	}
	if !eq {
		a.fail(info, failure.ShouldBeEqual(actual, expected, a.strategy))
	}
	return nil
}

// IsNotEqualTo verifies that actual differs from other under the strategy.
func (a *Comparables[T]) IsNotEqualTo(info *failure.Info, actual, other T) error {
	eq, err := a.strategy.AreEqual(actual, other)
	if err != nil {
		return err
	}
	if eq {
		a.fail(info, failure.ShouldNotBeEqual(actual, other, a.strategy))
	}
	return nil
}

func (a *Comparables[T]) compare(info *failure.Info, actual, other T, holds func(int) bool, fail func(actual, other any) *failure.Descriptor) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	c, err := a.strategy.Compare(actual, other)
	if err != nil {
		return err
	}
	if !holds(c) {
		a.fail(info, fail(actual, other))
	}
	return nil
}

// IsLessThan verifies that actual < other.
func (a *Comparables[T]) IsLessThan(info *failure.Info, actual, other T) error {
	return a.compare(info, actual, other, func(c int) bool { return c < 0 }, func(actual, other any) *failure.Descriptor {
		return failure.ShouldBeLess(actual, other, a.strategy)
	})
}

// IsLessThanOrEqualTo verifies that actual <= other.
func (a *Comparables[T]) IsLessThanOrEqualTo(info *failure.Info, actual, other T) error {
	return a.compare(info, actual, other, func(c int) bool { return c <= 0 }, func(actual, other any) *failure.Descriptor {
		return failure.ShouldBeLessOrEqual(actual, other, a.strategy)
	})
}

// IsGreaterThan verifies that actual > other.
func (a *Comparables[T]) IsGreaterThan(info *failure.Info, actual, other T) error {
	return a.compare(info, actual, other, func(c int) bool { return c > 0 }, func(actual, other any) *failure.Descriptor {
		return failure.ShouldBeGreater(actual, other, a.strategy)
	})
}

// IsGreaterThanOrEqualTo verifies that actual >= other.
func (a *Comparables[T]) IsGreaterThanOrEqualTo(info *failure.Info, actual, other T) error {
	return a.compare(info, actual, other, func(c int) bool { return c >= 0 }, func(actual, other any) *failure.Descriptor {
		return failure.ShouldBeGreaterOrEqual(actual, other, a.strategy)
	})
}

// IsBetween verifies that start <= actual <= end.
func (a *Comparables[T]) IsBetween(info *failure.Info, actual, start, end T) error {
	return a.between("IsBetween", info, actual, start, end, true, true)
}

// IsStrictlyBetween verifies that start < actual < end.
func (a *Comparables[T]) IsStrictlyBetween(info *failure.Info, actual, start, end T) error {
	return a.between("IsStrictlyBetween", info, actual, start, end, false, false)
}

func (a *Comparables[T]) between(op string, info *failure.Info, actual, start, end T, inclusiveStart, inclusiveEnd bool) error {
	if reflectutil.IsNil(start) || reflectutil.IsNil(end) {
		return errors.Usagef(op, errors.ErrInvalidArgument, "the boundaries of the range should not be nil")
	}
	bounds, err := a.strategy.Compare(start, end)
	if err != nil {
		return err
	}
	if bounds > 0 {
		return errors.Usagef(op, errors.ErrInvalidArgument, "the end of the range should not be less than its start")
	}
	if a.checkNotNil(info, actual) {
		return nil
	}
	lower, err := a.strategy.Compare(actual, start)
	if err != nil {
		return err
	}
	upper, err := a.strategy.Compare(actual, end)
	if err != nil {
		return err
	}
	inStart := lower > 0 || (inclusiveStart && lower == 0)
	inEnd := upper < 0 || (inclusiveEnd && upper == 0)
	if !inStart || !inEnd {
		a.fail(info, failure.ShouldBeBetween(actual, start, end, inclusiveStart, inclusiveEnd, a.strategy))
	}
	return nil
}
