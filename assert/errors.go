package assert

import (
	"reflect"
	"strings"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/internal/reflectutil"
	"github.com/scenarigo/verify/reporter"
)

// Errors asserts on error values and their chains.
type Errors struct {
	base
}

// NewErrors returns a facade reporting failures to rep.
func NewErrors(rep reporter.Reporter, opts ...Option) (*Errors, error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Errors{base: b}, nil
}

func (a *Errors) checkNotNil(info *failure.Info, actual error) bool {
	if reflectutil.IsNil(actual) {
		a.fail(info, failure.ShouldNotBeNil())
		return true
	}
	return false
}

// HasMessage verifies that actual.Error() is msg.
func (a *Errors) HasMessage(info *failure.Info, actual error, msg string) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if actual.Error() != msg {
		a.fail(info, failure.ShouldHaveMessage(actual, msg))
	}
	return nil
}

// HasMessageContaining verifies that actual.Error() contains sub.
func (a *Errors) HasMessageContaining(info *failure.Info, actual error, sub string) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if !strings.Contains(actual.Error(), sub) {
		a.fail(info, failure.ShouldHaveMessageContaining(actual, sub))
	}
	return nil
}

// Wraps verifies that target is in the chain of actual.
func (a *Errors) Wraps(info *failure.Info, actual, target error) error {
	if target == nil {
		return errors.Usagef("Wraps", errors.ErrInvalidArgument, "target should not be nil")
	}
	if a.checkNotNil(info, actual) {
		return nil
	}
	if !errors.Is(actual, target) {
		a.fail(info, failure.ShouldWrap(actual, target))
	}
	return nil
}

// IsInstanceOf verifies that the chain of actual has an error assignable to
// the type target points to. target follows the rules of errors.As.
func (a *Errors) IsInstanceOf(info *failure.Info, actual error, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Usagef("IsInstanceOf", errors.ErrInvalidArgument, "target must be a non-nil pointer but was %T", target)
	}
	typ := rv.Type().Elem()
	if typ.Kind() != reflect.Interface && !typ.Implements(reflect.TypeFor[error]()) {
		return errors.Usagef("IsInstanceOf", errors.ErrInvalidArgument, "*target must be an interface or implement error but was %s", typ)
	}
	if a.checkNotNil(info, actual) {
		return nil
	}
	if !errors.As(actual, target) {
		a.fail(info, failure.ShouldBeInstanceOf(actual, typ))
	}
	return nil
}

// HasNoCause verifies that actual does not wrap another error.
func (a *Errors) HasNoCause(info *failure.Info, actual error) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if cause := unwrap(actual); cause != nil {
		a.fail(info, failure.ShouldHaveNoCause(actual, cause))
	}
	return nil
}

// unwrap returns the error wrapped by err, looking at Unwrap() error and then
// at the first error of Unwrap() []error.
func unwrap(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if e != nil {
				return e
			}
		}
	}
	return nil
}
