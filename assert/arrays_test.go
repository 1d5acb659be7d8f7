package assert

import (
	"maps"
	"slices"
	"testing"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

func TestArrays(t *testing.T) {
	tests := map[string]struct {
		assertion func(a *Arrays) error
		kind      failure.Kind
		err       error
	}{
		"contains (array)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, [3]int{1, 2, 3}, []int{3, 1})
			},
		},
		"contains (pointer to array)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, &[3]int{1, 2, 3}, [1]int{2})
			},
		},
		"contains (not found)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, []string{"Frodo"}, []string{"Sam"})
			},
			kind: failure.KindShouldContain,
		},
		"contains (nil actual)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, []string(nil), []string{"Sam"})
			},
			kind: failure.KindShouldNotBeNil,
		},
		"contains (untyped nil actual)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, nil, []string{"Sam"})
			},
			kind: failure.KindShouldNotBeNil,
		},
		"contains (nil values)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, []string{"Frodo"}, nil)
			},
			err: errors.ErrValuesIsNil,
		},
		"contains (not an array)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, "Frodo", []string{"F"})
			},
			err: errors.ErrNotArray,
		},
		"contains (values not an array)": {
			assertion: func(a *Arrays) error {
				return a.Contains(nil, []string{"Frodo"}, "Frodo")
			},
			err: errors.ErrNotArray,
		},
		"contains only": {
			assertion: func(a *Arrays) error {
				return a.ContainsOnly(nil, []any{1, "a", nil}, []any{nil, "a", 1})
			},
		},
		"contains exactly": {
			assertion: func(a *Arrays) error {
				return a.ContainsExactly(nil, [2]bool{true, false}, []bool{false, true})
			},
			kind: failure.KindShouldContainExactly,
		},
		"contains exactly in any order": {
			assertion: func(a *Arrays) error {
				return a.ContainsExactlyInAnyOrder(nil, [2]bool{true, false}, []bool{false, true})
			},
		},
		"contains only once": {
			assertion: func(a *Arrays) error {
				return a.ContainsOnlyOnce(nil, []int{1, 2, 1}, []int{1})
			},
			kind: failure.KindShouldContainOnlyOnce,
		},
		"contains any of": {
			assertion: func(a *Arrays) error {
				return a.ContainsAnyOf(nil, []int{1, 2}, []int{3, 2})
			},
		},
		"does not contain": {
			assertion: func(a *Arrays) error {
				return a.DoesNotContain(nil, []int{1, 2}, []int{2})
			},
			kind: failure.KindShouldNotContain,
		},
		"is subset of": {
			assertion: func(a *Arrays) error {
				return a.IsSubsetOf(nil, []int{1, 2}, []int{3, 2, 1})
			},
		},
		"contains sequence": {
			assertion: func(a *Arrays) error {
				return a.ContainsSequence(nil, []int{1, 2, 3}, []int{2, 3})
			},
		},
		"does not contain sequence": {
			assertion: func(a *Arrays) error {
				return a.DoesNotContainSequence(nil, []int{1, 2, 3}, []int{2, 3})
			},
			kind: failure.KindShouldNotContainSequence,
		},
		"contains subsequence": {
			assertion: func(a *Arrays) error {
				return a.ContainsSubsequence(nil, []int{1, 2, 3}, []int{1, 3})
			},
		},
		"starts with": {
			assertion: func(a *Arrays) error {
				return a.StartsWith(nil, []int{1, 2, 3}, []int{2})
			},
			kind: failure.KindShouldStartWith,
		},
		"ends with": {
			assertion: func(a *Arrays) error {
				return a.EndsWith(nil, []int{1, 2, 3}, []int{3})
			},
		},
		"is empty": {
			assertion: func(a *Arrays) error {
				return a.IsEmpty(nil, [0]int{})
			},
		},
		"is not empty": {
			assertion: func(a *Arrays) error {
				return a.IsNotEmpty(nil, []int{})
			},
			kind: failure.KindShouldNotBeEmpty,
		},
		"has size": {
			assertion: func(a *Arrays) error {
				return a.HasSize(nil, [2]int{}, 2)
			},
		},
		"has duplicates": {
			assertion: func(a *Arrays) error {
				return a.HasDuplicates(nil, []int{1, 2})
			},
			kind: failure.KindShouldHaveDuplicates,
		},
		"does not have duplicates": {
			assertion: func(a *Arrays) error {
				return a.DoesNotHaveDuplicates(nil, []int{1, 2})
			},
		},
		"contains at": {
			assertion: func(a *Arrays) error {
				return a.ContainsAt(nil, []int{1, 2}, 2, 1)
			},
		},
		"contains at (out of bounds)": {
			assertion: func(a *Arrays) error {
				return a.ContainsAt(nil, []int{1, 2}, 2, 2)
			},
			err: errors.ErrIndexOutOfBounds,
		},
		"does not contain at (out of bounds)": {
			assertion: func(a *Arrays) error {
				return a.DoesNotContainAt(nil, []int{1, 2}, 2, 2)
			},
		},
		"is sorted": {
			assertion: func(a *Arrays) error {
				return a.IsSorted(nil, []int{2, 1})
			},
			kind: failure.KindShouldBeSorted,
		},
		"contains nil": {
			assertion: func(a *Arrays) error {
				return a.ContainsNil(nil, []any{1, nil})
			},
		},
		"does not contain nil": {
			assertion: func(a *Arrays) error {
				return a.DoesNotContainNil(nil, []error{nil})
			},
			kind: failure.KindShouldNotContainNil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, test.err, func(rep reporter.Reporter) error {
				a, err := NewArrays(rep)
				if err != nil {
					return err
				}
				return test.assertion(a)
			})
		})
	}
}

func TestIterables(t *testing.T) {
	fellowship := []string{"Frodo", "Sam", "Merry", "Pippin"}
	tests := map[string]struct {
		assertion func(a *Iterables[string]) error
		opts      []Option
		kind      failure.Kind
		err       error
	}{
		"contains": {
			assertion: func(a *Iterables[string]) error {
				return a.Contains(nil, slices.Values(fellowship), []string{"Sam"})
			},
		},
		"contains (nil)": {
			assertion: func(a *Iterables[string]) error {
				return a.Contains(nil, nil, []string{"Sam"})
			},
			kind: failure.KindShouldNotBeNil,
		},
		"contains (empty sequence and group)": {
			assertion: func(a *Iterables[string]) error {
				return a.Contains(nil, slices.Values([]string{}), []string{})
			},
		},
		"contains (map keys)": {
			assertion: func(a *Iterables[string]) error {
				return a.Contains(nil, maps.Keys(map[string]int{"Frodo": 50}), []string{"frodo"})
			},
			opts: []Option{caseInsensitive},
		},
		"contains only": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsOnly(nil, slices.Values(fellowship), []string{"Sam"})
			},
			kind: failure.KindShouldContainOnly,
		},
		"contains exclusively": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsExclusively(nil, slices.Values([]string{"Sam", "Sam"}), []string{"Sam"})
			},
		},
		"contains exactly": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsExactly(nil, slices.Values(fellowship), fellowship)
			},
		},
		"contains exactly in any order": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsExactlyInAnyOrder(nil, slices.Values(fellowship), []string{"Sam"})
			},
			kind: failure.KindShouldContainExactlyInAnyOrder,
		},
		"contains any of": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsAnyOf(nil, slices.Values(fellowship), []string{"Sauron"})
			},
			kind: failure.KindShouldContainAnyOf,
		},
		"does not contain": {
			assertion: func(a *Iterables[string]) error {
				return a.DoesNotContain(nil, slices.Values(fellowship), nil)
			},
			err: errors.ErrValuesIsNil,
		},
		"has duplicates": {
			assertion: func(a *Iterables[string]) error {
				return a.HasDuplicates(nil, slices.Values([]string{"Sam", "SAM"}))
			},
			opts: []Option{caseInsensitive},
		},
		"does not have duplicates": {
			assertion: func(a *Iterables[string]) error {
				return a.DoesNotHaveDuplicates(nil, slices.Values(fellowship))
			},
		},
		"contains sequence": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsSequence(nil, slices.Values(fellowship), []string{"Merry", "Pippin"})
			},
		},
		"contains subsequence": {
			assertion: func(a *Iterables[string]) error {
				return a.ContainsSubsequence(nil, slices.Values(fellowship), []string{"Sam", "Frodo"})
			},
			kind: failure.KindShouldContainSubsequence,
		},
		"starts with": {
			assertion: func(a *Iterables[string]) error {
				return a.StartsWith(nil, slices.Values(fellowship), []string{"Frodo"})
			},
		},
		"ends with": {
			assertion: func(a *Iterables[string]) error {
				return a.EndsWith(nil, slices.Values(fellowship), []string{"Frodo"})
			},
			kind: failure.KindShouldEndWith,
		},
		"is subset of": {
			assertion: func(a *Iterables[string]) error {
				return a.IsSubsetOf(nil, slices.Values([]string{"Sam"}), fellowship)
			},
		},
		"is empty": {
			assertion: func(a *Iterables[string]) error {
				return a.IsEmpty(nil, slices.Values([]string{}))
			},
		},
		"is not empty": {
			assertion: func(a *Iterables[string]) error {
				return a.IsNotEmpty(nil, slices.Values([]string{}))
			},
			kind: failure.KindShouldNotBeEmpty,
		},
		"has size": {
			assertion: func(a *Iterables[string]) error {
				return a.HasSize(nil, slices.Values(fellowship), 4)
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, test.err, func(rep reporter.Reporter) error {
				a, err := NewIterables[string](rep, test.opts...)
				if err != nil {
					return err
				}
				return test.assertion(a)
			})
		})
	}
}
