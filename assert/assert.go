// Package assert provides the assertion facades.
//
// A facade is built once with a reporter and an optional comparison strategy
// and then checks any number of actual values:
//
//	names := assert.NewSlices[string](reporter.FromT(t), assert.WithComparator(comparison.CaseInsensitiveStrings))
//	if err := names.Contains(nil, []string{"Frodo", "Sam"}, []string{"frodo"}); err != nil {
//		t.Fatal(err)
//	}
//
// Methods return only usage errors such as a nil group of values. Assertion
// failures are handed to the reporter.
package assert

import (
	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

// Option configures a facade.
type Option func(*options) error

type options struct {
	strategy comparison.Strategy
}

// WithStrategy sets the comparison strategy.
func WithStrategy(s comparison.Strategy) Option {
	return func(o *options) error {
		o.strategy = s
		return nil
	}
}

// WithComparator makes the facade compare values with c.
func WithComparator(c comparison.Comparator) Option {
	return func(o *options) error {
		if c == nil {
			return errors.Usage("WithComparator", errors.ErrComparatorIsNil)
		}
		o.strategy = comparison.Custom(c)
		return nil
	}
}

type base struct {
	reporter reporter.Reporter
	strategy comparison.Strategy
}

func newBase(rep reporter.Reporter, opts []Option) (base, error) {
	if rep == nil {
		return base{}, errors.Usagef("New", errors.ErrInvalidArgument, "reporter should not be nil")
	}
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return base{}, err
		}
	}
	return base{reporter: rep, strategy: o.strategy}, nil
}

// Strategy returns the comparison strategy of the facade.
func (b base) Strategy() comparison.Strategy {
	return b.strategy
}

func (b base) fail(info *failure.Info, d *failure.Descriptor) {
	b.reporter.Report(info, d)
}

// checkGroup runs the preconditions shared by the assertions looking for a
// group of values. It returns true when the outcome is already decided.
func checkGroup[E any](b base, op string, info *failure.Info, actual, values []E) (bool, error) {
	if actual == nil {
		b.fail(info, failure.ShouldNotBeNil())
		return true, nil
	}
	if values == nil {
		return true, errors.Usage(op, errors.ErrValuesIsNil)
	}
	if len(values) == 0 {
		if len(actual) > 0 {
			b.fail(info, failure.ActualNotEmptyWhileGroupIsEmpty(actual))
		}
		return true, nil
	}
	return false, nil
}

// checkNotEmptyGroup is checkGroup for the assertions where an empty group of
// values is meaningless.
func checkNotEmptyGroup[E any](b base, op string, info *failure.Info, actual, values []E) (bool, error) {
	if actual == nil {
		b.fail(info, failure.ShouldNotBeNil())
		return true, nil
	}
	if values == nil {
		return true, errors.Usage(op, errors.ErrValuesIsNil)
	}
	if len(values) == 0 {
		return true, errors.Usage(op, errors.ErrValuesIsEmpty)
	}
	return false, nil
}

// checkNotNil reports a nil actual. It returns true when actual is nil.
func checkNotNil[E any](b base, info *failure.Info, actual []E) bool {
	if actual == nil {
		b.fail(info, failure.ShouldNotBeNil())
		return true
	}
	return false
}
