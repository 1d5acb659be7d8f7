// Package comparison defines how two values are considered equal or ordered
// during an assertion.
//
// A Strategy is either natural (the zero value), which relies on the values'
// own equality and ordering, or custom, which delegates both to a Comparator.
// Every algorithm is written once against Strategy so that exact and, for
// example, case-insensitive matching share the same implementation.
package comparison

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/internal/reflectutil"
)

// Strategy is the notion of equality and ordering for an assertion session.
// It is immutable and safe for concurrent use.
type Strategy struct {
	comparator Comparator
}

// Natural returns the strategy based on the values' own equality and order.
func Natural() Strategy {
	return Strategy{}
}

// Custom returns the strategy delegating equality and order to c.
// A nil c yields the natural strategy.
func Custom(c Comparator) Strategy {
	return Strategy{comparator: c}
}

// IsStandard reports whether s is the natural strategy.
func (s Strategy) IsStandard() bool {
	return s.comparator == nil
}

// Comparator returns the comparator of a custom strategy, nil otherwise.
func (s Strategy) Comparator() Comparator {
	return s.comparator
}

// String describes s as appended to failure messages.
func (s Strategy) String() string {
	if s.comparator == nil {
		return ""
	}
	return fmt.Sprintf("when comparing values using %s", s.comparator.Description())
}

// AreEqual reports whether a and b are equal under s. Two nils are equal.
// A custom comparator that can not compare the operands yields an error.
func (s Strategy) AreEqual(a, b any) (bool, error) {
	if s.comparator == nil {
		return naturalEqual(a, b), nil
	}
	if reflectutil.IsNil(a) || reflectutil.IsNil(b) {
		return reflectutil.IsNil(a) && reflectutil.IsNil(b), nil
	}
	i, err := s.comparator.Compare(a, b)
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

// Compare orders a and b under s.
func (s Strategy) Compare(a, b any) (int, error) {
	if s.comparator == nil {
		return naturalCompare(a, b)
	}
	return s.comparator.Compare(a, b)
}

// IsGreaterThan reports whether a is ordered after b.
func (s Strategy) IsGreaterThan(a, b any) (bool, error) {
	i, err := s.Compare(a, b)
	if err != nil {
		return false, err
	}
	return i > 0, nil
}

// IsLessThan reports whether a is ordered before b.
func (s Strategy) IsLessThan(a, b any) (bool, error) {
	i, err := s.Compare(a, b)
	if err != nil {
		return false, err
	}
	return i < 0, nil
}

// IsLessThanOrEqualTo reports whether a is not ordered after b.
func (s Strategy) IsLessThanOrEqualTo(a, b any) (bool, error) {
	gt, err := s.IsGreaterThan(a, b)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// ArrayContains reports whether array contains value. array must be an array
// or a slice; a nil array contains nothing.
func (s Strategy) ArrayContains(array, value any) (bool, error) {
	if array == nil {
		return false, nil
	}
	values, err := reflectutil.ArrayValues(array)
	if err != nil {
		return false, err
	}
	return Contains(s, values, value)
}

// IterableContains reports whether iterable contains value.
// A nil iterable contains nothing.
func (s Strategy) IterableContains(iterable, value any) (bool, error) {
	if iterable == nil {
		return false, nil
	}
	seq, err := reflectutil.Iterate(iterable)
	if err != nil {
		return false, err
	}
	for e := range seq {
		eq, err := s.AreEqual(e, value)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// IterableRemoves removes the first element equal to value from the slice
// pointed to by collection. Nothing happens for a nil or empty collection or
// when no element matches.
func (s Strategy) IterableRemoves(collection, value any) error {
	if collection == nil {
		return nil
	}
	ptr := reflect.ValueOf(collection)
	if ptr.Kind() != reflect.Pointer || ptr.Type().Elem().Kind() != reflect.Slice {
		return errors.Usagef("IterableRemoves", errors.ErrNotIterable, "%T is not a pointer to a slice", collection)
	}
	if ptr.IsNil() {
		return nil
	}
	slice := ptr.Elem()
	for i := range slice.Len() {
		eq, err := s.AreEqual(slice.Index(i).Interface(), value)
		if err != nil {
			return err
		}
		if eq {
			slice.Set(reflect.AppendSlice(slice.Slice(0, i), slice.Slice(i+1, slice.Len())))
			return nil
		}
	}
	return nil
}

// DuplicatesFrom returns the distinct values that occur more than once in
// iterable, in the order of their second occurrence. nil is a legitimate
// duplicate. A nil or empty iterable yields nil.
func (s Strategy) DuplicatesFrom(iterable any) ([]any, error) {
	if iterable == nil {
		return nil, nil
	}
	seq, err := reflectutil.Iterate(iterable)
	if err != nil {
		return nil, err
	}
	return Duplicates(s, seq)
}

// StringContains reports whether str contains sub under s.
func (s Strategy) StringContains(str, sub string) (bool, error) {
	if s.comparator == nil {
		return strings.Contains(str, sub), nil
	}
	rs, rsub := []rune(str), []rune(sub)
	for i := 0; i+len(rsub) <= len(rs); i++ {
		eq, err := s.AreEqual(string(rs[i:i+len(rsub)]), sub)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// StringStartsWith reports whether str starts with prefix under s.
func (s Strategy) StringStartsWith(str, prefix string) (bool, error) {
	if s.comparator == nil {
		return strings.HasPrefix(str, prefix), nil
	}
	rs, rp := []rune(str), []rune(prefix)
	if len(rp) > len(rs) {
		return false, nil
	}
	return s.AreEqual(string(rs[:len(rp)]), prefix)
}

// StringEndsWith reports whether str ends with suffix under s.
func (s Strategy) StringEndsWith(str, suffix string) (bool, error) {
	if s.comparator == nil {
		return strings.HasSuffix(str, suffix), nil
	}
	rs, rp := []rune(str), []rune(suffix)
	if len(rp) > len(rs) {
		return false, nil
	}
	return s.AreEqual(string(rs[len(rs)-len(rp):]), suffix)
}

// Contains reports whether values contains v under s.
func Contains[E any](s Strategy, values []E, v any) (bool, error) {
	for _, e := range values {
		eq, err := s.AreEqual(e, v)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// Duplicates returns the distinct elements of seq occurring more than once
// under s, in the order of their second occurrence.
func Duplicates[E any](s Strategy, seq iter.Seq[E]) ([]E, error) {
	var (
		seen       []E
		duplicates []E
	)
	for e := range seq {
		found, err := Contains(s, seen, e)
		if err != nil {
			return nil, err
		}
		if !found {
			seen = append(seen, e)
			continue
		}
		dup, err := Contains(s, duplicates, e)
		if err != nil {
			return nil, err
		}
		if !dup {
			duplicates = append(duplicates, e)
		}
	}
	return duplicates, nil
}
