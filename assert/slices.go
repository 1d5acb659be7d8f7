package assert

import (
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
	"github.com/scenarigo/verify/sequence"
)

// Slices asserts on slices of E. A nil slice is a nil actual.
type Slices[E any] struct {
	base
}

// Facades for the common element types.
type (
	Bools        = Slices[bool]
	Bytes        = Slices[byte]
	Runes        = Slices[rune]
	Int16s       = Slices[int16]
	Ints         = Slices[int]
	Int64s       = Slices[int64]
	Float32s     = Slices[float32]
	Float64s     = Slices[float64]
	StringSlices = Slices[string]
	ObjectSlices = Slices[any]
)

// NewSlices returns a facade reporting failures to rep.
func NewSlices[E any](rep reporter.Reporter, opts ...Option) (*Slices[E], error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Slices[E]{base: b}, nil
}

// IsEmpty verifies that actual has no elements.
func (a *Slices[E]) IsEmpty(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if len(actual) > 0 {
		a.fail(info, failure.ShouldBeEmpty(actual))
	}
	return nil
}

// IsNotEmpty verifies that actual has elements.
func (a *Slices[E]) IsNotEmpty(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if len(actual) == 0 {
		a.fail(info, failure.ShouldNotBeEmpty(actual))
	}
	return nil
}

// HasSize verifies that actual has size elements.
func (a *Slices[E]) HasSize(info *failure.Info, actual []E, size int) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if size < 0 {
		return errors.Usagef("HasSize", errors.ErrInvalidArgument, "size should not be negative: %d", size)
	}
	if len(actual) != size {
		a.fail(info, failure.ShouldHaveSize(actual, len(actual), size))
	}
	return nil
}

// Contains verifies that actual contains every element of values, in any
// order.
func (a *Slices[E]) Contains(info *failure.Info, actual, values []E) error {
	if done, err := checkGroup(a.base, "Contains", info, actual, values); done {
		return err
	}
	notFound, err := sequence.Contains(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if len(notFound) > 0 {
		a.fail(info, failure.ShouldContain(actual, values, notFound, a.strategy))
	}
	return nil
}

// ContainsOnly verifies that actual and values have the same value set.
func (a *Slices[E]) ContainsOnly(info *failure.Info, actual, values []E) error {
	if done, err := checkGroup(a.base, "ContainsOnly", info, actual, values); done {
		return err
	}
	res, err := sequence.ContainsOnly(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if !res.OK() {
		a.fail(info, failure.ShouldContainOnly(actual, values, res.Missing, res.Unexpected, a.strategy))
	}
	return nil
}

// ContainsExactly verifies that actual has the elements of values in the same
// order.
func (a *Slices[E]) ContainsExactly(info *failure.Info, actual, values []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if values == nil {
		return errors.Usage("ContainsExactly", errors.ErrValuesIsNil)
	}
	res, err := sequence.ContainsExactly(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if !res.OK() {
		a.fail(info, failure.ShouldContainExactly(actual, values, res.Missing, res.Unexpected, res.Mismatches, a.strategy))
	}
	return nil
}

// ContainsExactlyInAnyOrder verifies that actual has the elements of values
// with the same number of occurrences, in any order.
func (a *Slices[E]) ContainsExactlyInAnyOrder(info *failure.Info, actual, values []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if values == nil {
		return errors.Usage("ContainsExactlyInAnyOrder", errors.ErrValuesIsNil)
	}
	res, err := sequence.ContainsExactlyInAnyOrder(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if !res.OK() {
		a.fail(info, failure.ShouldContainExactlyInAnyOrder(actual, values, res.Missing, res.Unexpected, a.strategy))
	}
	return nil
}

// ContainsOnlyOnce verifies that every element of values occurs exactly once
// in actual.
func (a *Slices[E]) ContainsOnlyOnce(info *failure.Info, actual, values []E) error {
	if done, err := checkGroup(a.base, "ContainsOnlyOnce", info, actual, values); done {
		return err
	}
	res, err := sequence.ContainsOnlyOnce(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if !res.OK() {
		a.fail(info, failure.ShouldContainOnlyOnce(actual, values, res.NotFound, res.NotOnlyOnce, a.strategy))
	}
	return nil
}

// ContainsAnyOf verifies that actual contains at least one element of values.
func (a *Slices[E]) ContainsAnyOf(info *failure.Info, actual, values []E) error {
	if done, err := checkGroup(a.base, "ContainsAnyOf", info, actual, values); done {
		return err
	}
	ok, err := sequence.ContainsAnyOf(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldContainAnyOf(actual, values, a.strategy))
	}
	return nil
}

// DoesNotContain verifies that actual contains no element of values.
func (a *Slices[E]) DoesNotContain(info *failure.Info, actual, values []E) error {
	if done, err := checkNotEmptyGroup(a.base, "DoesNotContain", info, actual, values); done {
		return err
	}
	found, err := sequence.DoesNotContain(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if len(found) > 0 {
		a.fail(info, failure.ShouldNotContain(actual, values, found, a.strategy))
	}
	return nil
}

// IsSubsetOf verifies that every element of actual is in values.
func (a *Slices[E]) IsSubsetOf(info *failure.Info, actual, values []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if values == nil {
		return errors.Usage("IsSubsetOf", errors.ErrValuesIsNil)
	}
	unexpected, err := sequence.IsSubsetOf(a.strategy, actual, values)
	if err != nil {
		return err
	}
	if len(unexpected) > 0 {
		a.fail(info, failure.ShouldBeSubsetOf(actual, values, unexpected, a.strategy))
	}
	return nil
}

// ContainsSequence verifies that seq occurs in actual without gaps.
func (a *Slices[E]) ContainsSequence(info *failure.Info, actual, seq []E) error {
	if done, err := checkGroup(a.base, "ContainsSequence", info, actual, seq); done {
		return err
	}
	ok, err := sequence.ContainsSequence(a.strategy, actual, seq)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldContainSequence(actual, seq, a.strategy))
	}
	return nil
}

// DoesNotContainSequence verifies that seq does not occur in actual without
// gaps.
func (a *Slices[E]) DoesNotContainSequence(info *failure.Info, actual, seq []E) error {
	if done, err := checkNotEmptyGroup(a.base, "DoesNotContainSequence", info, actual, seq); done {
		return err
	}
	index, err := sequence.IndexOfSequence(a.strategy, actual, seq)
	if err != nil {
		return err
	}
	if index >= 0 {
		a.fail(info, failure.ShouldNotContainSequence(actual, seq, index, a.strategy))
	}
	return nil
}

// ContainsSubsequence verifies that the elements of subsequence occur in
// actual in the same order, gaps allowed.
func (a *Slices[E]) ContainsSubsequence(info *failure.Info, actual, subsequence []E) error {
	if done, err := checkGroup(a.base, "ContainsSubsequence", info, actual, subsequence); done {
		return err
	}
	ok, err := sequence.ContainsSubsequence(a.strategy, actual, subsequence)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldContainSubsequence(actual, subsequence, a.strategy))
	}
	return nil
}

// StartsWith verifies that actual starts with seq.
func (a *Slices[E]) StartsWith(info *failure.Info, actual, seq []E) error {
	if done, err := checkGroup(a.base, "StartsWith", info, actual, seq); done {
		return err
	}
	ok, err := sequence.StartsWith(a.strategy, actual, seq)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldStartWith(actual, seq, a.strategy))
	}
	return nil
}

// EndsWith verifies that actual ends with seq.
func (a *Slices[E]) EndsWith(info *failure.Info, actual, seq []E) error {
	if done, err := checkGroup(a.base, "EndsWith", info, actual, seq); done {
		return err
	}
	ok, err := sequence.EndsWith(a.strategy, actual, seq)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldEndWith(actual, seq, a.strategy))
	}
	return nil
}

// HasDuplicates verifies that an element of actual occurs more than once.
func (a *Slices[E]) HasDuplicates(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	duplicates, err := sequence.Duplicates(a.strategy, actual)
	if err != nil {
		return err
	}
	if len(duplicates) == 0 {
		a.fail(info, failure.ShouldHaveDuplicates(actual, a.strategy))
	}
	return nil
}

// DoesNotHaveDuplicates verifies that every element of actual occurs once.
func (a *Slices[E]) DoesNotHaveDuplicates(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	duplicates, err := sequence.Duplicates(a.strategy, actual)
	if err != nil {
		return err
	}
	if len(duplicates) > 0 {
		a.fail(info, failure.ShouldNotHaveDuplicates(actual, duplicates, a.strategy))
	}
	return nil
}

// ContainsNil verifies that actual has a nil element.
func (a *Slices[E]) ContainsNil(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if !sequence.ContainsNil(actual) {
		a.fail(info, failure.ShouldContainNil(actual))
	}
	return nil
}

// DoesNotContainNil verifies that actual has no nil element.
func (a *Slices[E]) DoesNotContainNil(info *failure.Info, actual []E) error {
	if checkNotNil(a.base, info, actual) {
		return nil
	}
	if i := sequence.IndexOfNil(actual); i >= 0 {
		a.fail(info, failure.ShouldNotContainNil(actual, i))
	}
	return nil
}
