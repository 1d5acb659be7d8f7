package assert

import (
	"regexp"
	"unicode/utf8"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

// Strings asserts on strings. Substring matching follows the strategy of the
// facade, so a case-insensitive comparator makes Contains case-insensitive.
type Strings struct {
	base
}

// NewStrings returns a facade reporting failures to rep.
func NewStrings(rep reporter.Reporter, opts ...Option) (*Strings, error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Strings{base: b}, nil
}

// IsEqualTo verifies that actual equals expected under the strategy.
func (a *Strings) IsEqualTo(info *failure.Info, actual, expected string) error {
	eq, err := a.strategy.AreEqual(actual, expected)
	if err != nil {
		return err
	}
	if !eq {
		a.fail(info, failure.ShouldBeEqual(actual, expected, a.strategy))
	}
	return nil
}

// IsEqualToIgnoringCase verifies that actual equals expected after case
// folding, whatever the strategy.
func (a *Strings) IsEqualToIgnoringCase(info *failure.Info, actual, expected string) error {
	eq, err := comparison.Custom(comparison.CaseInsensitiveStrings).AreEqual(actual, expected)
	if err != nil {
		return err
	}
	if !eq {
		a.fail(info, failure.ShouldBeEqualIgnoringCase(actual, expected))
	}
	return nil
}

// IsEmpty verifies that actual is "".
func (a *Strings) IsEmpty(info *failure.Info, actual string) error {
	if actual != "" {
		a.fail(info, failure.ShouldBeEmpty(actual))
	}
	return nil
}

// IsNotEmpty verifies that actual is not "".
func (a *Strings) IsNotEmpty(info *failure.Info, actual string) error {
	if actual == "" {
		a.fail(info, failure.ShouldNotBeEmpty(actual))
	}
	return nil
}

// HasLength verifies that actual has length runes.
func (a *Strings) HasLength(info *failure.Info, actual string, length int) error {
	if length < 0 {
		return errors.Usagef("HasLength", errors.ErrInvalidArgument, "length should not be negative: %d", length)
	}
	if n := utf8.RuneCountInString(actual); n != length {
		a.fail(info, failure.ShouldHaveLength(actual, n, length))
	}
	return nil
}

// Contains verifies that actual contains sub.
func (a *Strings) Contains(info *failure.Info, actual, sub string) error {
	ok, err := a.strategy.StringContains(actual, sub)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldContainSubstring(actual, sub, a.strategy))
	}
	return nil
}

// DoesNotContain verifies that actual does not contain sub.
func (a *Strings) DoesNotContain(info *failure.Info, actual, sub string) error {
	if sub == "" {
		return errors.Usage("DoesNotContain", errors.ErrValuesIsEmpty)
	}
	ok, err := a.strategy.StringContains(actual, sub)
	if err != nil {
		return err
	}
	if ok {
		a.fail(info, failure.ShouldNotContainSubstring(actual, sub, a.strategy))
	}
	return nil
}

// StartsWith verifies that actual starts with prefix.
func (a *Strings) StartsWith(info *failure.Info, actual, prefix string) error {
	ok, err := a.strategy.StringStartsWith(actual, prefix)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldStartWithString(actual, prefix, a.strategy))
	}
	return nil
}

// EndsWith verifies that actual ends with suffix.
func (a *Strings) EndsWith(info *failure.Info, actual, suffix string) error {
	ok, err := a.strategy.StringEndsWith(actual, suffix)
	if err != nil {
		return err
	}
	if !ok {
		a.fail(info, failure.ShouldEndWithString(actual, suffix, a.strategy))
	}
	return nil
}

// Matches verifies that actual matches the regular expression pattern.
func (a *Strings) Matches(info *failure.Info, actual, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.Usagef("Matches", errors.ErrInvalidArgument, "invalid pattern %q: %s", pattern, err)
	}
	if !re.MatchString(actual) {
		a.fail(info, failure.ShouldMatch(actual, pattern))
	}
	return nil
}
