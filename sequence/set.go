package sequence

import (
	"github.com/scenarigo/verify/comparison"
)

// Set is an insertion-ordered collection of distinct elements where two
// elements are the same member iff the strategy declares them equal.
type Set[E any] struct {
	strategy comparison.Strategy
	values   []E
}

// NewSet returns a set of the distinct elements of values.
func NewSet[E any](s comparison.Strategy, values ...E) (*Set[E], error) {
	set := &Set[E]{strategy: s}
	for _, v := range values {
		if _, err := set.Add(v); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Add adds v unless an equal member already exists and reports whether the
// set changed.
func (s *Set[E]) Add(v E) (bool, error) {
	ok, err := s.Contains(v)
	if err != nil || ok {
		return false, err
	}
	s.values = append(s.values, v)
	return true, nil
}

// Contains reports whether the set has a member equal to v.
func (s *Set[E]) Contains(v E) (bool, error) {
	return comparison.Contains(s.strategy, s.values, v)
}

// Remove removes the member equal to v and reports whether it existed.
func (s *Set[E]) Remove(v E) (bool, error) {
	for i, e := range s.values {
		eq, err := s.strategy.AreEqual(e, v)
		if err != nil {
			return false, err
		}
		if eq {
			s.values = append(s.values[:i:i], s.values[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Values returns the members in insertion order.
func (s *Set[E]) Values() []E {
	values := make([]E, len(s.values))
	copy(values, s.values)
	return values
}

// Len returns the number of members.
func (s *Set[E]) Len() int {
	return len(s.values)
}

// Difference returns the members of s that are not members of other.
func (s *Set[E]) Difference(other *Set[E]) ([]E, error) {
	var diff []E
	for _, v := range s.values {
		ok, err := other.Contains(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			diff = append(diff, v)
		}
	}
	return diff, nil
}
