package assert

import (
	"testing"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

type groupAssertion func(a *Slices[string], info *failure.Info, actual, values []string) error

func TestSlices_Group(t *testing.T) {
	fellowship := []string{"Frodo", "Sam", "Merry", "Pippin"}
	tests := map[string]struct {
		assertion groupAssertion
		opts      []Option
		actual    []string
		values    []string
		kind      failure.Kind
		err       error
	}{
		"contains": {
			assertion: (*Slices[string]).Contains,
			actual:    fellowship,
			values:    []string{"Sam", "Frodo", "Sam"},
		},
		"contains (not found)": {
			assertion: (*Slices[string]).Contains,
			actual:    fellowship,
			values:    []string{"Sam", "Gandalf"},
			kind:      failure.KindShouldContain,
		},
		"contains (case insensitive)": {
			assertion: (*Slices[string]).Contains,
			opts:      []Option{caseInsensitive},
			actual:    fellowship,
			values:    []string{"FRODO", "sam"},
		},
		"contains (nil actual)": {
			assertion: (*Slices[string]).Contains,
			values:    []string{"Sam"},
			kind:      failure.KindShouldNotBeNil,
		},
		"contains (nil actual and values)": {
			assertion: (*Slices[string]).Contains,
			kind:      failure.KindShouldNotBeNil,
		},
		"contains (nil values)": {
			assertion: (*Slices[string]).Contains,
			actual:    fellowship,
			err:       errors.ErrValuesIsNil,
		},
		"contains (both empty)": {
			assertion: (*Slices[string]).Contains,
			actual:    []string{},
			values:    []string{},
		},
		"contains (empty group)": {
			assertion: (*Slices[string]).Contains,
			actual:    fellowship,
			values:    []string{},
			kind:      failure.KindActualNotEmptyWhileGroupIsEmpty,
		},
		"contains only": {
			assertion: (*Slices[string]).ContainsOnly,
			actual:    []string{"Frodo", "Sam", "Frodo"},
			values:    []string{"Sam", "Frodo"},
		},
		"contains only (unexpected)": {
			assertion: (*Slices[string]).ContainsOnly,
			actual:    fellowship,
			values:    []string{"Sam", "Frodo"},
			kind:      failure.KindShouldContainOnly,
		},
		"contains only (case insensitive)": {
			assertion: (*Slices[string]).ContainsOnly,
			opts:      []Option{caseInsensitive},
			actual:    []string{"Frodo", "Sam"},
			values:    []string{"SAM", "frodo"},
		},
		"contains exactly": {
			assertion: (*Slices[string]).ContainsExactly,
			actual:    []string{"Frodo", "Sam"},
			values:    []string{"Frodo", "Sam"},
		},
		"contains exactly (order)": {
			assertion: (*Slices[string]).ContainsExactly,
			actual:    []string{"Frodo", "Sam"},
			values:    []string{"Sam", "Frodo"},
			kind:      failure.KindShouldContainExactly,
		},
		"contains exactly (empty values)": {
			assertion: (*Slices[string]).ContainsExactly,
			actual:    []string{"Frodo"},
			values:    []string{},
			kind:      failure.KindShouldContainExactly,
		},
		"contains exactly in any order": {
			assertion: (*Slices[string]).ContainsExactlyInAnyOrder,
			actual:    []string{"Frodo", "Sam", "Frodo"},
			values:    []string{"Frodo", "Frodo", "Sam"},
		},
		"contains exactly in any order (occurrences)": {
			assertion: (*Slices[string]).ContainsExactlyInAnyOrder,
			actual:    []string{"Frodo", "Sam", "Frodo"},
			values:    []string{"Frodo", "Sam"},
			kind:      failure.KindShouldContainExactlyInAnyOrder,
		},
		"contains only once": {
			assertion: (*Slices[string]).ContainsOnlyOnce,
			actual:    fellowship,
			values:    []string{"Sam"},
		},
		"contains only once (twice)": {
			assertion: (*Slices[string]).ContainsOnlyOnce,
			actual:    []string{"Sam", "Sam"},
			values:    []string{"Sam"},
			kind:      failure.KindShouldContainOnlyOnce,
		},
		"contains any of": {
			assertion: (*Slices[string]).ContainsAnyOf,
			actual:    fellowship,
			values:    []string{"Gandalf", "Pippin"},
		},
		"contains any of (none)": {
			assertion: (*Slices[string]).ContainsAnyOf,
			actual:    fellowship,
			values:    []string{"Gandalf", "Boromir"},
			kind:      failure.KindShouldContainAnyOf,
		},
		"does not contain": {
			assertion: (*Slices[string]).DoesNotContain,
			actual:    fellowship,
			values:    []string{"Sauron"},
		},
		"does not contain (found)": {
			assertion: (*Slices[string]).DoesNotContain,
			actual:    fellowship,
			values:    []string{"Sauron", "Sam"},
			kind:      failure.KindShouldNotContain,
		},
		"does not contain (empty values)": {
			assertion: (*Slices[string]).DoesNotContain,
			actual:    fellowship,
			values:    []string{},
			err:       errors.ErrValuesIsEmpty,
		},
		"is subset of": {
			assertion: (*Slices[string]).IsSubsetOf,
			actual:    []string{"Sam"},
			values:    fellowship,
		},
		"is subset of (unexpected)": {
			assertion: (*Slices[string]).IsSubsetOf,
			actual:    []string{"Sam", "Gollum"},
			values:    fellowship,
			kind:      failure.KindShouldBeSubsetOf,
		},
		"contains sequence": {
			assertion: (*Slices[string]).ContainsSequence,
			actual:    fellowship,
			values:    []string{"Sam", "Merry"},
		},
		"contains sequence (gap)": {
			assertion: (*Slices[string]).ContainsSequence,
			actual:    fellowship,
			values:    []string{"Frodo", "Merry"},
			kind:      failure.KindShouldContainSequence,
		},
		"does not contain sequence": {
			assertion: (*Slices[string]).DoesNotContainSequence,
			actual:    fellowship,
			values:    []string{"Frodo", "Merry"},
		},
		"does not contain sequence (found)": {
			assertion: (*Slices[string]).DoesNotContainSequence,
			actual:    fellowship,
			values:    []string{"Merry", "Pippin"},
			kind:      failure.KindShouldNotContainSequence,
		},
		"contains subsequence": {
			assertion: (*Slices[string]).ContainsSubsequence,
			actual:    fellowship,
			values:    []string{"Frodo", "Pippin"},
		},
		"contains subsequence (order)": {
			assertion: (*Slices[string]).ContainsSubsequence,
			actual:    fellowship,
			values:    []string{"Pippin", "Frodo"},
			kind:      failure.KindShouldContainSubsequence,
		},
		"starts with": {
			assertion: (*Slices[string]).StartsWith,
			actual:    fellowship,
			values:    []string{"Frodo", "Sam"},
		},
		"starts with (longer)": {
			assertion: (*Slices[string]).StartsWith,
			actual:    []string{"Frodo"},
			values:    []string{"Frodo", "Sam"},
			kind:      failure.KindShouldStartWith,
		},
		"ends with": {
			assertion: (*Slices[string]).EndsWith,
			actual:    fellowship,
			values:    []string{"Pippin"},
		},
		"ends with (case insensitive)": {
			assertion: (*Slices[string]).EndsWith,
			opts:      []Option{caseInsensitive},
			actual:    fellowship,
			values:    []string{"merry", "PIPPIN"},
		},
		"ends with (empty group)": {
			assertion: (*Slices[string]).EndsWith,
			actual:    fellowship,
			values:    []string{},
			kind:      failure.KindActualNotEmptyWhileGroupIsEmpty,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, test.err, func(rep reporter.Reporter) error {
				a, err := NewSlices[string](rep, test.opts...)
				if err != nil {
					return err
				}
				return test.assertion(a, nil, test.actual, test.values)
			})
		})
	}
}

func TestSlices_Single(t *testing.T) {
	tests := map[string]struct {
		assertion func(a *Slices[int], info *failure.Info, actual []int) error
		opts      []Option
		actual    []int
		kind      failure.Kind
		err       error
	}{
		"is empty": {
			assertion: (*Slices[int]).IsEmpty,
			actual:    []int{},
		},
		"is empty (not empty)": {
			assertion: (*Slices[int]).IsEmpty,
			actual:    []int{1},
			kind:      failure.KindShouldBeEmpty,
		},
		"is empty (nil)": {
			assertion: (*Slices[int]).IsEmpty,
			kind:      failure.KindShouldNotBeNil,
		},
		"is not empty": {
			assertion: (*Slices[int]).IsNotEmpty,
			actual:    []int{1},
		},
		"is not empty (empty)": {
			assertion: (*Slices[int]).IsNotEmpty,
			actual:    []int{},
			kind:      failure.KindShouldNotBeEmpty,
		},
		"has size": {
			assertion: func(a *Slices[int], info *failure.Info, actual []int) error {
				return a.HasSize(info, actual, 2)
			},
			actual: []int{1, 2},
		},
		"has size (mismatch)": {
			assertion: func(a *Slices[int], info *failure.Info, actual []int) error {
				return a.HasSize(info, actual, 3)
			},
			actual: []int{1, 2},
			kind:   failure.KindShouldHaveSize,
		},
		"has size (negative)": {
			assertion: func(a *Slices[int], info *failure.Info, actual []int) error {
				return a.HasSize(info, actual, -1)
			},
			actual: []int{1, 2},
			err:    errors.ErrInvalidArgument,
		},
		"has size (nil and negative)": {
			assertion: func(a *Slices[int], info *failure.Info, actual []int) error {
				return a.HasSize(info, actual, -1)
			},
			kind: failure.KindShouldNotBeNil,
		},
		"has duplicates": {
			assertion: (*Slices[int]).HasDuplicates,
			actual:    []int{1, 2, 1},
		},
		"has duplicates (none)": {
			assertion: (*Slices[int]).HasDuplicates,
			actual:    []int{1, 2},
			kind:      failure.KindShouldHaveDuplicates,
		},
		"has duplicates (absolute values)": {
			assertion: (*Slices[int]).HasDuplicates,
			opts:      []Option{absInts},
			actual:    []int{1, 2, -1},
		},
		"does not have duplicates": {
			assertion: (*Slices[int]).DoesNotHaveDuplicates,
			actual:    []int{1, 2, -1},
		},
		"does not have duplicates (absolute values)": {
			assertion: (*Slices[int]).DoesNotHaveDuplicates,
			opts:      []Option{absInts},
			actual:    []int{1, 2, -1},
			kind:      failure.KindShouldNotHaveDuplicates,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, test.err, func(rep reporter.Reporter) error {
				a, err := NewSlices[int](rep, test.opts...)
				if err != nil {
					return err
				}
				return test.assertion(a, nil, test.actual)
			})
		})
	}
}

func TestSlices_Nil(t *testing.T) {
	frodo := "Frodo"
	tests := map[string]struct {
		assertion func(a *Slices[*string], info *failure.Info, actual []*string) error
		actual    []*string
		kind      failure.Kind
	}{
		"contains nil": {
			assertion: (*Slices[*string]).ContainsNil,
			actual:    []*string{&frodo, nil},
		},
		"contains nil (none)": {
			assertion: (*Slices[*string]).ContainsNil,
			actual:    []*string{&frodo},
			kind:      failure.KindShouldContainNil,
		},
		"does not contain nil": {
			assertion: (*Slices[*string]).DoesNotContainNil,
			actual:    []*string{&frodo},
		},
		"does not contain nil (found)": {
			assertion: (*Slices[*string]).DoesNotContainNil,
			actual:    []*string{&frodo, nil},
			kind:      failure.KindShouldNotContainNil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, nil, func(rep reporter.Reporter) error {
				a, err := NewSlices[*string](rep)
				if err != nil {
					return err
				}
				return test.assertion(a, nil, test.actual)
			})
		})
	}
}

func TestSlices_IncomparableElements(t *testing.T) {
	a, err := NewSlices[any](reporter.NewCollector(), caseInsensitive)
	if err != nil {
		t.Fatal(err)
	}
	err = a.Contains(nil, []any{"Frodo", 1}, []any{"Sam"})
	if !errors.Is(err, comparison.ErrNotComparable) {
		t.Fatalf("expected ErrNotComparable but got %v", err)
	}
	if !errors.IsUsage(err) {
		t.Errorf("expected usage error but got %v", err)
	}
}

func TestSlices_NilPointerElements(t *testing.T) {
	for name, opts := range map[string][]Option{
		"natural": nil,
		"custom":  {WithComparator(comparison.NaturalOrder)},
	} {
		t.Run(name, func(t *testing.T) {
			col := reporter.NewCollector()
			a, err := NewSlices[any](col, opts...)
			if err != nil {
				t.Fatal(err)
			}
			actual := []any{(*int)(nil)}
			if err := a.ContainsNil(nil, actual); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if err := a.Contains(nil, actual, []any{nil}); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if col.Failed() {
				t.Errorf("unexpected failures: %v", col.Messages())
			}
		})
	}
}
