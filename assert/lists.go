package assert

import (
	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
	"github.com/scenarigo/verify/sequence"
)

// Lists asserts on slices of E where the position of elements matters.
type Lists[E any] struct {
	Slices[E]
}

// NewLists returns a facade reporting failures to rep.
func NewLists[E any](rep reporter.Reporter, opts ...Option) (*Lists[E], error) {
	s, err := NewSlices[E](rep, opts...)
	if err != nil {
		return nil, err
	}
	return &Lists[E]{Slices: *s}, nil
}

// Condition is a described predicate on an element.
type Condition[E any] struct {
	Description string
	Matches     func(E) bool
}

// NewCondition returns a condition satisfied when f returns true.
func NewCondition[E any](description string, f func(E) bool) Condition[E] {
	return Condition[E]{Description: description, Matches: f}
}

// ContainsAt verifies that the element at index equals value. An index out of
// the bounds of actual is a usage error.
func (a *Lists[E]) ContainsAt(info *failure.Info, actual []E, value E, index int) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if len(actual) == 0 {
		a.fail(info, failure.ShouldNotBeEmpty(actual))
		return nil
	}
	ok, err := sequence.ContainsAt(a.strategy, actual, value, index)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldContainAtIndex(actual, value, index, actual[index], a.strategy))
	}
	return nil
}

// DoesNotContainAt verifies that the element at index differs from value. An
// index out of the bounds of actual satisfies the assertion.
func (a *Lists[E]) DoesNotContainAt(info *failure.Info, actual []E, value E, index int) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	ok, err := sequence.DoesNotContainAt(a.strategy, actual, value, index)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldNotContainAtIndex(actual, value, index, a.strategy))
	}
	return nil
}

// IsSorted verifies that actual is in ascending order under the strategy of
// the facade.
func (a *Lists[E]) IsSorted(info *failure.Info, actual []E) error {
	return a.isSorted(info, actual, a.strategy)
}

// IsSortedAccordingTo verifies that actual is in ascending order under c.
func (a *Lists[E]) IsSortedAccordingTo(info *failure.Info, actual []E, c comparison.Comparator) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if c == nil {
		return errors.Usage("IsSortedAccordingTo", errors.ErrComparatorIsNil)
	}
	return a.isSorted(info, actual, comparison.Custom(c))
}

func (a *Lists[E]) isSorted(info *failure.Info, actual []E, s comparison.Strategy) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	res, err := sequence.IsSorted(s, actual)
	if err != nil {
		return err
	}
	switch {
	case res.OK():
	case !res.Comparable && s.IsStandard():
		a.fail(info, failure.ShouldHaveMutuallyComparableElements(actual))
	case !res.Comparable:
		a.fail(info, failure.ShouldHaveComparableElementsAccordingToComparator(actual, s))
	case s.IsStandard():
		a.fail(info, failure.ShouldBeSorted(actual, res.Index))
	default:
		a.fail(info, failure.ShouldBeSortedAccordingToComparator(actual, res.Index, s))
	}
	return nil
}

// Has verifies that the element at index satisfies cond.
func (a *Lists[E]) Has(info *failure.Info, actual []E, index int, cond Condition[E]) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if cond.Matches == nil {
		return errors.Usagef("Has", errors.ErrInvalidArgument, "condition should not be nil")
	}
	if index < 0 || index >= len(actual) {
		return errors.Usagef("Has", errors.ErrIndexOutOfBounds,
			"index %d is out of bounds [0, %d]", index, len(actual)-1)
	}
	if !cond.Matches(actual[index]) {
		a.fail(info, failure.ShouldMatchCondition(actual, actual[index], index, cond.Description))
	}
	return nil
}
