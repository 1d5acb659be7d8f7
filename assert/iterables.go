package assert

import (
	"iter"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

// Iterables asserts on range-over-func sequences. The sequence is consumed
// once per assertion; a nil sequence is a nil actual.
type Iterables[E any] struct {
	slices *Slices[E]
}

// NewIterables returns a facade reporting failures to rep.
func NewIterables[E any](rep reporter.Reporter, opts ...Option) (*Iterables[E], error) {
	s, err := NewSlices[E](rep, opts...)
	if err != nil {
		return nil, err
	}
	return &Iterables[E]{slices: s}, nil
}

// Strategy returns the comparison strategy of the facade.
func (a *Iterables[E]) Strategy() comparison.Strategy {
	return a.slices.strategy
}

func collect[E any](seq iter.Seq[E]) []E {
	if seq == nil {
		return nil
	}
	values := []E{}
	for v := range seq {
		values = append(values, v)
	}
	return values
}

// IsEmpty verifies that actual yields no elements.
func (a *Iterables[E]) IsEmpty(info *failure.Info, actual iter.Seq[E]) error {
	return a.slices.IsEmpty(info, collect(actual))
}

// IsNotEmpty verifies that actual yields elements.
func (a *Iterables[E]) IsNotEmpty(info *failure.Info, actual iter.Seq[E]) error {
	return a.slices.IsNotEmpty(info, collect(actual))
}

// HasSize verifies that actual yields size elements.
func (a *Iterables[E]) HasSize(info *failure.Info, actual iter.Seq[E], size int) error {
	return a.slices.HasSize(info, collect(actual), size)
}

// Contains verifies that actual yields every element of values.
func (a *Iterables[E]) Contains(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.Contains(info, collect(actual), values)
}

// ContainsOnly verifies that actual and values have the same value set.
func (a *Iterables[E]) ContainsOnly(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.ContainsOnly(info, collect(actual), values)
}

// ContainsExclusively is ContainsOnly.
func (a *Iterables[E]) ContainsExclusively(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.ContainsOnly(info, actual, values)
}

// ContainsExactly verifies that actual yields the elements of values in the
// same order.
func (a *Iterables[E]) ContainsExactly(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.ContainsExactly(info, collect(actual), values)
}

// ContainsExactlyInAnyOrder verifies that actual yields the elements of values
// with the same number of occurrences.
func (a *Iterables[E]) ContainsExactlyInAnyOrder(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.ContainsExactlyInAnyOrder(info, collect(actual), values)
}

// ContainsAnyOf verifies that actual yields an element of values.
func (a *Iterables[E]) ContainsAnyOf(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.ContainsAnyOf(info, collect(actual), values)
}

// DoesNotContain verifies that actual yields no element of values.
func (a *Iterables[E]) DoesNotContain(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.DoesNotContain(info, collect(actual), values)
}

// HasDuplicates verifies that actual yields an element more than once.
func (a *Iterables[E]) HasDuplicates(info *failure.Info, actual iter.Seq[E]) error {
	return a.slices.HasDuplicates(info, collect(actual))
}

// DoesNotHaveDuplicates verifies that actual yields every element once.
func (a *Iterables[E]) DoesNotHaveDuplicates(info *failure.Info, actual iter.Seq[E]) error {
	return a.slices.DoesNotHaveDuplicates(info, collect(actual))
}

// ContainsSequence verifies that seq is yielded by actual without gaps.
func (a *Iterables[E]) ContainsSequence(info *failure.Info, actual iter.Seq[E], seq []E) error {
	return a.slices.ContainsSequence(info, collect(actual), seq)
}

// ContainsSubsequence verifies that subsequence is yielded by actual in order.
func (a *Iterables[E]) ContainsSubsequence(info *failure.Info, actual iter.Seq[E], subsequence []E) error {
	return a.slices.ContainsSubsequence(info, collect(actual), subsequence)
}

// StartsWith verifies that actual starts with seq.
func (a *Iterables[E]) StartsWith(info *failure.Info, actual iter.Seq[E], seq []E) error {
	return a.slices.StartsWith(info, collect(actual), seq)
}

// EndsWith verifies that actual ends with seq.
func (a *Iterables[E]) EndsWith(info *failure.Info, actual iter.Seq[E], seq []E) error {
	return a.slices.EndsWith(info, collect(actual), seq)
}

// IsSubsetOf verifies that every element yielded by actual is in values.
func (a *Iterables[E]) IsSubsetOf(info *failure.Info, actual iter.Seq[E], values []E) error {
	return a.slices.IsSubsetOf(info, collect(actual), values)
}
