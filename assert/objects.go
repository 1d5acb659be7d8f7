package assert

import (
	"fmt"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/internal/queryutil"
	"github.com/scenarigo/verify/internal/reflectutil"
	"github.com/scenarigo/verify/reporter"
)

// Objects asserts on values of any type.
type Objects struct {
	base
}

// NewObjects returns a facade reporting failures to rep.
func NewObjects(rep reporter.Reporter, opts ...Option) (*Objects, error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Objects{base: b}, nil
}

// IsEqualTo verifies that actual equals expected under the strategy.
func (a *Objects) IsEqualTo(info *failure.Info, actual, expected any) error {
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
func (a *Objects) IsNotEqualTo(info *failure.Info, actual, other any) error {
	eq, err := a.strategy.AreEqual(actual, other)
	if err != nil {
		return err
	}
	if eq {
		a.fail(info, failure.ShouldNotBeEqual(actual, other, a.strategy))
	}
	return nil
}

// IsNil verifies that actual is nil. Typed nils are nil.
func (a *Objects) IsNil(info *failure.Info, actual any) error {
	if !reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldBeNil(actual))
	}
	return nil
}

// IsNotNil verifies that actual is not nil.
func (a *Objects) IsNotNil(info *failure.Info, actual any) error {
	if reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldNotBeNil())
	}
	return nil
}

// IsIn verifies that values, an array or a slice, contains actual.
func (a *Objects) IsIn(info *failure.Info, actual, values any) error {
	ok, err := a.in("IsIn", actual, values)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldBeIn(actual, values, a.strategy))
	}
	return nil
}

// IsNotIn verifies that values, an array or a slice, does not contain actual.
func (a *Objects) IsNotIn(info *failure.Info, actual, values any) error {
	ok, err := a.in("IsNotIn", actual, values)
	if err != nil {
		return err
	}
	if ok {
		a.fail(info, failure.ShouldNotBeIn(actual, values, a.strategy))
	}
	return nil
}

func (a *Objects) in(op string, actual, values any) (bool, error) {
	if reflectutil.IsNil(values) {
		return false, errors.Usage(op, errors.ErrValuesIsNil)
	}
	if !reflectutil.IsArray(values) {
		return false, errors.Usagef(op, errors.ErrNotArray, "values %T is not an array", values)
	}
	if n, _ := reflectutil.Len(values); n == 0 {
		return false, errors.Usage(op, errors.ErrValuesIsEmpty)
	}
	return a.strategy.ArrayContains(values, actual)
}

// Extracting returns the property of actual at path, for example
// "ring.bearer" or "pals[0]". Struct fields are looked up by their yaml or
// json tag. A nil actual is reported and yields nil.
func (a *Objects) Extracting(info *failure.Info, actual any, path string) (any, error) {
	if reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldNotBeNil())
		return nil, nil
	}
	return queryutil.Extract(actual, path)
}

// ExtractingFromEach returns the property at path of every element of the
// array or slice actual.
func (a *Objects) ExtractingFromEach(info *failure.Info, actual any, path string) ([]any, error) {
	if reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldNotBeNil())
		return nil, nil
	}
	elems, err := reflectutil.ArrayValues(actual)
	if err != nil {
		return nil, errors.Usagef("ExtractingFromEach", errors.ErrNotArray, "actual %T is not an array", actual)
	}
	values := make([]any, len(elems))
	for i, e := range elems {
		v, err := queryutil.Extract(e, path)
		if err != nil {
			return nil, errors.WithPath(err, fmt.Sprintf("[%d].", i))
		}
		values[i] = v
	}
	return values, nil
}
