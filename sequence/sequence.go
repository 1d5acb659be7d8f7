// Package sequence implements the containment, exclusivity, ordering and
// sequence matching algorithms shared by every assertion facade.
//
// All functions take the comparison strategy explicitly, never modify their
// inputs and assume a non-nil actual. Errors are usage errors, typically
// operands that the strategy can not compare; assertion outcomes are returned
// as values.
package sequence

import (
	"slices"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/internal/reflectutil"
)

// OnlyResult is the outcome of ContainsOnly and ContainsExactlyInAnyOrder.
type OnlyResult[E any] struct {
	// Missing are expected values absent from actual.
	Missing []E
	// Unexpected are actual elements absent from the expected values.
	Unexpected []E
}

// OK reports whether the assertion holds.
func (r OnlyResult[E]) OK() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// ContainsOnly compares the value sets of actual and values. Order and
// duplicate occurrences are irrelevant.
func ContainsOnly[E any](s comparison.Strategy, actual, values []E) (OnlyResult[E], error) {
	actualSet, err := NewSet(s, actual...)
	if err != nil {
		return OnlyResult[E]{}, err
	}
	expectedSet, err := NewSet(s, values...)
	if err != nil {
		return OnlyResult[E]{}, err
	}
	missing, err := expectedSet.Difference(actualSet)
	if err != nil {
		return OnlyResult[E]{}, err
	}
	unexpected, err := actualSet.Difference(expectedSet)
	if err != nil {
		return OnlyResult[E]{}, err
	}
	return OnlyResult[E]{Missing: missing, Unexpected: unexpected}, nil
}

// ContainsExactlyInAnyOrder compares actual and values as multisets: every
// occurrence must be matched by exactly one occurrence on the other side.
func ContainsExactlyInAnyOrder[E any](s comparison.Strategy, actual, values []E) (OnlyResult[E], error) {
	unexpected := slices.Clone(actual)
	var missing []E
	for _, v := range values {
		i, err := indexOf(s, unexpected, v)
		if err != nil {
			return OnlyResult[E]{}, err
		}
		if i < 0 {
			missing = append(missing, v)
			continue
		}
		unexpected = slices.Delete(unexpected, i, i+1)
	}
	if len(unexpected) == 0 {
		unexpected = nil
	}
	return OnlyResult[E]{Missing: missing, Unexpected: unexpected}, nil
}

// Mismatch is an element differing from the expected one at the same index.
type Mismatch[E any] struct {
	Index    int
	Actual   E
	Expected E
}

// ExactlyResult is the outcome of ContainsExactly.
type ExactlyResult[E any] struct {
	OnlyResult[E]
	// Mismatches is set when actual has the expected elements in another
	// order.
	Mismatches []Mismatch[E]
}

// OK reports whether the assertion holds.
func (r ExactlyResult[E]) OK() bool {
	return r.OnlyResult.OK() && len(r.Mismatches) == 0
}

// ContainsExactly verifies that actual has the same elements as values in the
// same order.
func ContainsExactly[E any](s comparison.Strategy, actual, values []E) (ExactlyResult[E], error) {
	only, err := ContainsExactlyInAnyOrder(s, actual, values)
	if err != nil {
		return ExactlyResult[E]{}, err
	}
	if !only.OK() {
		return ExactlyResult[E]{OnlyResult: only}, nil
	}
	var mismatches []Mismatch[E]
	for i := range actual {
		eq, err := s.AreEqual(actual[i], values[i])
		if err != nil {
			return ExactlyResult[E]{}, err
		}
		if !eq {
			mismatches = append(mismatches, Mismatch[E]{Index: i, Actual: actual[i], Expected: values[i]})
		}
	}
	return ExactlyResult[E]{Mismatches: mismatches}, nil
}

// OnlyOnceResult is the outcome of ContainsOnlyOnce.
type OnlyOnceResult[E any] struct {
	NotFound    []E
	NotOnlyOnce []E
}

// OK reports whether the assertion holds.
func (r OnlyOnceResult[E]) OK() bool {
	return len(r.NotFound) == 0 && len(r.NotOnlyOnce) == 0
}

// ContainsOnlyOnce verifies that every distinct value occurs exactly once in
// actual.
func ContainsOnlyOnce[E any](s comparison.Strategy, actual, values []E) (OnlyOnceResult[E], error) {
	set, err := NewSet(s, values...)
	if err != nil {
		return OnlyOnceResult[E]{}, err
	}
	var res OnlyOnceResult[E]
	for _, v := range set.Values() {
		n, err := count(s, actual, v)
		if err != nil {
			return OnlyOnceResult[E]{}, err
		}
		switch {
		case n == 0:
			res.NotFound = append(res.NotFound, v)
		case n > 1:
			res.NotOnlyOnce = append(res.NotOnlyOnce, v)
		}
	}
	return res, nil
}

// Contains returns the distinct values not found in actual.
func Contains[E any](s comparison.Strategy, actual, values []E) ([]E, error) {
	set, err := NewSet(s, values...)
	if err != nil {
		return nil, err
	}
	var notFound []E
	for _, v := range set.Values() {
		ok, err := comparison.Contains(s, actual, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			notFound = append(notFound, v)
		}
	}
	return notFound, nil
}

// DoesNotContain returns the distinct values found in actual.
func DoesNotContain[E any](s comparison.Strategy, actual, values []E) ([]E, error) {
	set, err := NewSet(s, values...)
	if err != nil {
		return nil, err
	}
	var found []E
	for _, v := range set.Values() {
		ok, err := comparison.Contains(s, actual, v)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, v)
		}
	}
	return found, nil
}

// ContainsAnyOf reports whether at least one of values is in actual.
func ContainsAnyOf[E any](s comparison.Strategy, actual, values []E) (bool, error) {
	for _, v := range values {
		ok, err := comparison.Contains(s, actual, v)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// IsSubsetOf returns the distinct elements of actual that are not in values.
func IsSubsetOf[E any](s comparison.Strategy, actual, values []E) ([]E, error) {
	return Contains(s, values, actual)
}

// IndexOfSequence returns the index of the first contiguous run of sequence
// in actual, or -1.
func IndexOfSequence[E any](s comparison.Strategy, actual, sequence []E) (int, error) {
	if len(sequence) > len(actual) {
		return -1, nil
	}
	for i := 0; i+len(sequence) <= len(actual); i++ {
		ok, err := equalRun(s, actual[i:i+len(sequence)], sequence)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

// ContainsSequence reports whether sequence occurs in actual as a contiguous
// run in the same order.
func ContainsSequence[E any](s comparison.Strategy, actual, sequence []E) (bool, error) {
	i, err := IndexOfSequence(s, actual, sequence)
	return i >= 0, err
}

// ContainsSubsequence reports whether the elements of subsequence occur in
// actual in the same order, gaps allowed.
func ContainsSubsequence[E any](s comparison.Strategy, actual, subsequence []E) (bool, error) {
	j := 0
	for i := 0; i < len(actual) && j < len(subsequence); i++ {
		eq, err := s.AreEqual(actual[i], subsequence[j])
		if err != nil {
			return false, err
		}
		if eq {
			j++
		}
	}
	return j == len(subsequence), nil
}

// StartsWith reports whether actual begins with sequence.
func StartsWith[E any](s comparison.Strategy, actual, sequence []E) (bool, error) {
	if len(sequence) > len(actual) {
		return false, nil
	}
	return equalRun(s, actual[:len(sequence)], sequence)
}

// EndsWith reports whether actual ends with sequence.
func EndsWith[E any](s comparison.Strategy, actual, sequence []E) (bool, error) {
	if len(sequence) > len(actual) {
		return false, nil
	}
	return equalRun(s, actual[len(actual)-len(sequence):], sequence)
}

// ContainsAt reports whether the element at index equals value. An index
// outside of actual is a usage error.
func ContainsAt[E any](s comparison.Strategy, actual []E, value E, index int) (bool, error) {
	if index < 0 || index >= len(actual) {
		return false, errors.Usagef("ContainsAt", errors.ErrIndexOutOfBounds,
			"index %d is out of bounds [0, %d]", index, len(actual)-1)
	}
	return s.AreEqual(actual[index], value)
}

// DoesNotContainAt reports whether the element at index differs from value.
// An index outside of actual trivially satisfies the assertion.
func DoesNotContainAt[E any](s comparison.Strategy, actual []E, value E, index int) (bool, error) {
	if index < 0 || index >= len(actual) {
		return true, nil
	}
	eq, err := s.AreEqual(actual[index], value)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Duplicates returns the distinct elements of actual occurring more than once.
func Duplicates[E any](s comparison.Strategy, actual []E) ([]E, error) {
	return comparison.Duplicates(s, slices.Values(actual))
}

// SortResult is the outcome of IsSorted.
type SortResult struct {
	// Comparable is false when two elements can not be ordered.
	Comparable bool
	// Index is the first i such that actual[i] > actual[i+1], or -1.
	Index int
}

// OK reports whether the assertion holds.
func (r SortResult) OK() bool {
	return r.Comparable && r.Index < 0
}

// IsSorted verifies that actual is in ascending order under s. A single
// element is still checked for being comparable.
func IsSorted[E any](s comparison.Strategy, actual []E) (SortResult, error) {
	res := SortResult{Comparable: true, Index: -1}
	if len(actual) == 1 {
		if _, err := s.Compare(actual[0], actual[0]); err != nil {
			if errors.Is(err, comparison.ErrNotComparable) {
				return SortResult{Index: -1}, nil
			}
			return res, err
		}
		return res, nil
	}
	for i := 0; i+1 < len(actual); i++ {
		c, err := s.Compare(actual[i], actual[i+1])
		if err != nil {
			if errors.Is(err, comparison.ErrNotComparable) {
				return SortResult{Index: -1}, nil
			}
			return res, err
		}
		if c > 0 && res.Index < 0 {
			res.Index = i
		}
	}
	return res, nil
}

// ContainsNil reports whether actual has a nil element.
func ContainsNil[E any](actual []E) bool {
	return slices.ContainsFunc(actual, func(e E) bool {
		return reflectutil.IsNil(e)
	})
}

// IndexOfNil returns the index of the first nil element, or -1.
func IndexOfNil[E any](actual []E) int {
	return slices.IndexFunc(actual, func(e E) bool {
		return reflectutil.IsNil(e)
	})
}

func indexOf[E any](s comparison.Strategy, values []E, v E) (int, error) {
	for i, e := range values {
		eq, err := s.AreEqual(e, v)
		if err != nil {
			return -1, err
		}
		if eq {
			return i, nil
		}
	}
	return -1, nil
}

func count[E any](s comparison.Strategy, values []E, v E) (int, error) {
	n := 0
	for _, e := range values {
		eq, err := s.AreEqual(e, v)
		if err != nil {
			return 0, err
		}
		if eq {
			n++
		}
	}
	return n, nil
}

func equalRun[E any](s comparison.Strategy, a, b []E) (bool, error) {
	for i := range b {
		eq, err := s.AreEqual(a[i], b[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}
