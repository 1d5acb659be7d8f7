package assert

import (
	"time"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

// Times asserts on time.Time values. Instants are compared regardless of
// their location.
type Times struct {
	base
}

// NewTimes returns a facade reporting failures to rep.
func NewTimes(rep reporter.Reporter, opts ...Option) (*Times, error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Times{base: b}, nil
}

// IsBefore verifies that actual is strictly before other.
func (a *Times) IsBefore(info *failure.Info, actual, other time.Time) error {
	if !actual.Before(other) {
		a.fail(info, failure.ShouldBeBefore(actual, other))
	}
	return nil
}

// IsAfter verifies that actual is strictly after other.
func (a *Times) IsAfter(info *failure.Info, actual, other time.Time) error {
	if !actual.After(other) {
		a.fail(info, failure.ShouldBeAfter(actual, other))
	}
	return nil
}

// IsBetween verifies that actual is in [start, end[.
func (a *Times) IsBetween(info *failure.Info, actual, start, end time.Time) error {
	if end.Before(start) {
		return errors.Usagef("IsBetween", errors.ErrInvalidArgument, "the end of the range should not be before its start")
	}
	if actual.Before(start) || !actual.Before(end) {
		a.fail(info, failure.ShouldBeBetween(actual, start, end, true, false, a.strategy))
	}
	return nil
}

// IsInSameDayAs verifies that actual and other have the same year, month and
// day in the location of actual.
func (a *Times) IsInSameDayAs(info *failure.Info, actual, other time.Time) error {
	y1, m1, d1 := actual.Date()
	y2, m2, d2 := other.In(actual.Location()).Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		a.fail(info, failure.ShouldBeInSameDay(actual, other))
	}
	return nil
}

// IsCloseTo verifies that actual is within delta of other, bounds included.
func (a *Times) IsCloseTo(info *failure.Info, actual, other time.Time, delta time.Duration) error {
	if delta < 0 {
		return errors.Usagef("IsCloseTo", errors.ErrInvalidArgument, "delta should not be negative: %s", delta)
	}
	diff := actual.Sub(other).Abs()
	if diff > delta {
		a.fail(info, failure.ShouldBeCloseTo(actual, other, delta, diff))
	}
	return nil
}
