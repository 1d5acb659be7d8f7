package assert

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/internal/reflectutil"
	"github.com/scenarigo/verify/reporter"
)

// Maps asserts on maps. Keys are matched with ==; values are compared with
// the strategy of the facade.
type Maps[K comparable, V any] struct {
	base
}

// NewMaps returns a facade reporting failures to rep.
func NewMaps[K comparable, V any](rep reporter.Reporter, opts ...Option) (*Maps[K, V], error) {
	b, err := newBase(rep, opts)
	if err != nil {
		return nil, err
	}
	return &Maps[K, V]{base: b}, nil
}

func (a *Maps[K, V]) checkNotNil(info *failure.Info, actual map[K]V) bool {
	if actual == nil {
		a.fail(info, failure.ShouldNotBeNil())
		return true
	}
	return false
}

// checkGroup is the map counterpart of the group preconditions of Slices.
func (a *Maps[K, V]) checkGroup(op string, info *failure.Info, actual map[K]V, group any, size int) (bool, error) {
	if a.checkNotNil(info, actual) {
		return true, nil
	}
	if reflectutil.IsNil(group) {
		return true, errors.Usage(op, errors.ErrValuesIsNil)
	}
	if size == 0 {
		if len(actual) > 0 {
			a.fail(info, failure.ActualNotEmptyWhileGroupIsEmpty(actual))
		}
		return true, nil
	}
	return false, nil
}

// IsEmpty verifies that actual has no entries.
func (a *Maps[K, V]) IsEmpty(info *failure.Info, actual map[K]V) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if len(actual) > 0 {
		a.fail(info, failure.ShouldBeEmpty(actual))
	}
	return nil
}

// IsNotEmpty verifies that actual has entries.
func (a *Maps[K, V]) IsNotEmpty(info *failure.Info, actual map[K]V) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if len(actual) == 0 {
		a.fail(info, failure.ShouldNotBeEmpty(actual))
	}
	return nil
}

// HasSize verifies that actual has size entries.
func (a *Maps[K, V]) HasSize(info *failure.Info, actual map[K]V, size int) error {
	if a.checkNotNil(info, actual) {
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

// ContainsKeys verifies that actual has every key of keys.
func (a *Maps[K, V]) ContainsKeys(info *failure.Info, actual map[K]V, keys []K) error {
	if done, err := a.checkGroup("ContainsKeys", info, actual, keys, len(keys)); done {
		return err
	}
	var notFound []K
	for _, k := range keys {
		if _, ok := actual[k]; !ok && !slices.Contains(notFound, k) {
			notFound = append(notFound, k)
		}
	}
	if len(notFound) > 0 {
		a.fail(info, failure.ShouldContainKeys(actual, keys, notFound))
	}
	return nil
}

// DoesNotContainKeys verifies that actual has no key of keys.
func (a *Maps[K, V]) DoesNotContainKeys(info *failure.Info, actual map[K]V, keys []K) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if keys == nil {
		return errors.Usage("DoesNotContainKeys", errors.ErrValuesIsNil)
	}
	if len(keys) == 0 {
		return errors.Usage("DoesNotContainKeys", errors.ErrValuesIsEmpty)
	}
	var found []K
	for _, k := range keys {
		if _, ok := actual[k]; ok && !slices.Contains(found, k) {
			found = append(found, k)
		}
	}
	if len(found) > 0 {
		a.fail(info, failure.ShouldNotContainKeys(actual, keys, found))
	}
	return nil
}

// ContainsOnlyKeys verifies that the keys of actual are exactly keys.
func (a *Maps[K, V]) ContainsOnlyKeys(info *failure.Info, actual map[K]V, keys []K) error {
	if done, err := a.checkGroup("ContainsOnlyKeys", info, actual, keys, len(keys)); done {
		return err
	}
	expected := make(map[K]struct{}, len(keys))
	var notFound []K
	for _, k := range keys {
		expected[k] = struct{}{}
		if _, ok := actual[k]; !ok && !slices.Contains(notFound, k) {
			notFound = append(notFound, k)
		}
	}
	var notExpected []K
	for k := range actual {
		if _, ok := expected[k]; !ok {
			notExpected = append(notExpected, k)
		}
	}
	if len(notFound) == 0 && len(notExpected) == 0 {
		return nil
	}
	sortKeys(notExpected)
	a.fail(info, failure.ShouldContainOnlyKeys(actual, keys, notFound, notExpected))
	return nil
}

// ContainsEntries verifies that actual has every entry of entries.
func (a *Maps[K, V]) ContainsEntries(info *failure.Info, actual, entries map[K]V) error {
	if done, err := a.checkGroup("ContainsEntries", info, actual, entries, len(entries)); done {
		return err
	}
	notFound := map[K]V{}
	for k, v := range entries {
		ok, err := a.hasEntry(actual, k, v)
		if err != nil {
			return err
		}
		if !ok {
			notFound[k] = v
		}
	}
	if len(notFound) > 0 {
		a.fail(info, failure.ShouldContainEntries(actual, entries, notFound, a.strategy))
	}
	return nil
}

// DoesNotContainEntries verifies that actual has no entry of entries.
func (a *Maps[K, V]) DoesNotContainEntries(info *failure.Info, actual, entries map[K]V) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	if entries == nil {
		return errors.Usage("DoesNotContainEntries", errors.ErrValuesIsNil)
	}
	if len(entries) == 0 {
		return errors.Usage("DoesNotContainEntries", errors.ErrValuesIsEmpty)
	}
	found := map[K]V{}
	for k, v := range entries {
		ok, err := a.hasEntry(actual, k, v)
		if err != nil {
			return err
		}
		if ok {
			found[k] = v
		}
	}
	if len(found) > 0 {
		a.fail(info, failure.ShouldNotContainEntries(actual, entries, found, a.strategy))
	}
	return nil
}

func (a *Maps[K, V]) hasEntry(actual map[K]V, k K, v V) (bool, error) {
	got, ok := actual[k]
	if !ok {
		return false, nil
	}
	return a.strategy.AreEqual(got, v)
}

// ContainsValue verifies that an entry of actual has value.
func (a *Maps[K, V]) ContainsValue(info *failure.Info, actual map[K]V, value V) error {
	return a.ContainsValues(info, actual, []V{value})
}

// ContainsValues verifies that actual has every value of values.
func (a *Maps[K, V]) ContainsValues(info *failure.Info, actual map[K]V, values []V) error {
	if done, err := a.checkGroup("ContainsValues", info, actual, values, len(values)); done {
		return err
	}
	actualValues := slices.Collect(maps.Values(actual))
	var notFound []V
	for _, v := range values {
		ok, err := comparison.Contains(a.strategy, actualValues, v)
		if err != nil {
			return err
		}
		if !ok {
			notFound = append(notFound, v)
		}
	}
	if len(notFound) > 0 {
		a.fail(info, failure.ShouldContainValues(actual, values, notFound, a.strategy))
	}
	return nil
}

// DoesNotContainValue verifies that no entry of actual has value.
func (a *Maps[K, V]) DoesNotContainValue(info *failure.Info, actual map[K]V, value V) error {
	if a.checkNotNil(info, actual) {
		return nil
	}
	ok, err := comparison.Contains(a.strategy, slices.Collect(maps.Values(actual)), value)
	if err != nil {
		return err
	}
	if ok {
		a.fail(info, failure.ShouldNotContainValue(actual, value, a.strategy))
	}
	return nil
}

func sortKeys[K comparable](keys []K) {
	slices.SortFunc(keys, func(a, b K) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
}
