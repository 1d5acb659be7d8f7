package assert

import (
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/internal/reflectutil"
	"github.com/scenarigo/verify/reporter"
)

// Arrays asserts on arrays and slices of any element type. Both the actual
// value and the group of values may be any array, pointer to array or slice.
type Arrays struct {
	list *Lists[any]
}

// NewArrays returns a facade reporting failures to rep.
func NewArrays(rep reporter.Reporter, opts ...Option) (*Arrays, error) {
	l, err := NewLists[any](rep, opts...)
	if err != nil {
		return nil, err
	}
	return &Arrays{list: l}, nil
}

// elements converts actual to its elements. A nil actual is reported and
// yields nil.
func (a *Arrays) elements(op string, info *failure.Info, actual any) ([]any, error) {
	if reflectutil.IsNil(actual) {
		a.list.fail(info, failure.ShouldNotBeNil())
		return nil, nil
	}
	values, err := reflectutil.ArrayValues(actual)
	if err != nil {
		return nil, errors.Usagef(op, errors.ErrNotArray, "actual %T is not an array", actual)
	}
	return values, nil
}

// group converts a group of values to look for. nil stays nil.
func group(op string, values any) ([]any, error) {
	if reflectutil.IsNil(values) {
		return nil, nil
	}
	vs, err := reflectutil.ArrayValues(values)
	if err != nil {
		return nil, errors.Usagef(op, errors.ErrNotArray, "values %T is not an array", values)
	}
	return vs, nil
}

type groupFunc func(*Slices[any], *failure.Info, []any, []any) error

func (a *Arrays) withGroup(op string, f groupFunc, info *failure.Info, actual, values any) error {
	elems, err := a.elements(op, info, actual)
	if elems == nil {
		return err
	}
	vs, err := group(op, values)
	if err != nil {
		return err
	}
	return f(&a.list.Slices, info, elems, vs)
}

func (a *Arrays) single(op string, f func(*Lists[any], *failure.Info, []any) error, info *failure.Info, actual any) error {
	elems, err := a.elements(op, info, actual)
	if elems == nil {
		return err
	}
	return f(a.list, info, elems)
}

// IsEmpty verifies that actual has no elements.
func (a *Arrays) IsEmpty(info *failure.Info, actual any) error {
	return a.single("IsEmpty", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.IsEmpty(info, elems)
	}, info, actual)
}

// IsNotEmpty verifies that actual has elements.
func (a *Arrays) IsNotEmpty(info *failure.Info, actual any) error {
	return a.single("IsNotEmpty", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.IsNotEmpty(info, elems)
	}, info, actual)
}

// HasSize verifies that actual has size elements.
func (a *Arrays) HasSize(info *failure.Info, actual any, size int) error {
	return a.single("HasSize", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.HasSize(info, elems, size)
	}, info, actual)
}

// Contains verifies that actual contains every element of values.
func (a *Arrays) Contains(info *failure.Info, actual, values any) error {
	return a.withGroup("Contains", (*Slices[any]).Contains, info, actual, values)
}

// ContainsOnly verifies that actual and values have the same value set.
func (a *Arrays) ContainsOnly(info *failure.Info, actual, values any) error {
	return a.withGroup("ContainsOnly", (*Slices[any]).ContainsOnly, info, actual, values)
}

// ContainsExactly verifies that actual has the elements of values in the same
// order.
func (a *Arrays) ContainsExactly(info *failure.Info, actual, values any) error {
	return a.withGroup("ContainsExactly", (*Slices[any]).ContainsExactly, info, actual, values)
}

// ContainsExactlyInAnyOrder verifies that actual has the elements of values
// with the same number of occurrences.
func (a *Arrays) ContainsExactlyInAnyOrder(info *failure.Info, actual, values any) error {
	return a.withGroup("ContainsExactlyInAnyOrder", (*Slices[any]).ContainsExactlyInAnyOrder, info, actual, values)
}

// ContainsOnlyOnce verifies that every element of values occurs once in actual.
func (a *Arrays) ContainsOnlyOnce(info *failure.Info, actual, values any) error {
	return a.withGroup("ContainsOnlyOnce", (*Slices[any]).ContainsOnlyOnce, info, actual, values)
}

// ContainsAnyOf verifies that actual contains an element of values.
func (a *Arrays) ContainsAnyOf(info *failure.Info, actual, values any) error {
	return a.withGroup("ContainsAnyOf", (*Slices[any]).ContainsAnyOf, info, actual, values)
}

// DoesNotContain verifies that actual contains no element of values.
func (a *Arrays) DoesNotContain(info *failure.Info, actual, values any) error {
	return a.withGroup("DoesNotContain", (*Slices[any]).DoesNotContain, info, actual, values)
}

// IsSubsetOf verifies that every element of actual is in values.
func (a *Arrays) IsSubsetOf(info *failure.Info, actual, values any) error {
	return a.withGroup("IsSubsetOf", (*Slices[any]).IsSubsetOf, info, actual, values)
}

// ContainsSequence verifies that seq occurs in actual without gaps.
func (a *Arrays) ContainsSequence(info *failure.Info, actual, seq any) error {
	return a.withGroup("ContainsSequence", (*Slices[any]).ContainsSequence, info, actual, seq)
}

// DoesNotContainSequence verifies that seq does not occur in actual.
func (a *Arrays) DoesNotContainSequence(info *failure.Info, actual, seq any) error {
	return a.withGroup("DoesNotContainSequence", (*Slices[any]).DoesNotContainSequence, info, actual, seq)
}

// ContainsSubsequence verifies that subsequence occurs in actual in order.
func (a *Arrays) ContainsSubsequence(info *failure.Info, actual, subsequence any) error {
	return a.withGroup("ContainsSubsequence", (*Slices[any]).ContainsSubsequence, info, actual, subsequence)
}

// StartsWith verifies that actual starts with seq.
func (a *Arrays) StartsWith(info *failure.Info, actual, seq any) error {
	return a.withGroup("StartsWith", (*Slices[any]).StartsWith, info, actual, seq)
}

// EndsWith verifies that actual ends with seq.
func (a *Arrays) EndsWith(info *failure.Info, actual, seq any) error {
	return a.withGroup("EndsWith", (*Slices[any]).EndsWith, info, actual, seq)
}

// HasDuplicates verifies that an element of actual occurs more than once.
func (a *Arrays) HasDuplicates(info *failure.Info, actual any) error {
	return a.single("HasDuplicates", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.HasDuplicates(info, elems)
	}, info, actual)
}

// DoesNotHaveDuplicates verifies that every element of actual occurs once.
func (a *Arrays) DoesNotHaveDuplicates(info *failure.Info, actual any) error {
	return a.single("DoesNotHaveDuplicates", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.DoesNotHaveDuplicates(info, elems)
	}, info, actual)
}

// ContainsAt verifies that the element at index equals value.
func (a *Arrays) ContainsAt(info *failure.Info, actual, value any, index int) error {
	return a.single("ContainsAt", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.ContainsAt(info, elems, value, index)
	}, info, actual)
}

// DoesNotContainAt verifies that the element at index differs from value.
func (a *Arrays) DoesNotContainAt(info *failure.Info, actual, value any, index int) error {
	return a.single("DoesNotContainAt", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.DoesNotContainAt(info, elems, value, index)
	}, info, actual)
}

// IsSorted verifies that actual is in ascending order.
func (a *Arrays) IsSorted(info *failure.Info, actual any) error {
	return a.single("IsSorted", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.IsSorted(info, elems)
	}, info, actual)
}

// ContainsNil verifies that actual has a nil element.
func (a *Arrays) ContainsNil(info *failure.Info, actual any) error {
	return a.single("ContainsNil", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.ContainsNil(info, elems)
	}, info, actual)
}

// DoesNotContainNil verifies that actual has no nil element.
func (a *Arrays) DoesNotContainNil(info *failure.Info, actual any) error {
	return a.single("DoesNotContainNil", func(l *Lists[any], info *failure.Info, elems []any) error {
		return l.DoesNotContainNil(info, elems)
	}, info, actual)
}
