package suite

import (
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/scenarigo/verify/assert"
	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
)

type operation func(l *assert.Lists[any], info *failure.Info, actual []any, c *Case) error

func single(f func(*assert.Lists[any], *failure.Info, []any) error) operation {
	return func(l *assert.Lists[any], info *failure.Info, actual []any, _ *Case) error {
		return f(l, info, actual)
	}
}

func group(f func(*assert.Lists[any], *failure.Info, []any, []any) error) operation {
	return func(l *assert.Lists[any], info *failure.Info, actual []any, c *Case) error {
		return f(l, info, actual, c.Values)
	}
}

func at(f func(*assert.Lists[any], *failure.Info, []any, any, int) error) operation {
	return func(l *assert.Lists[any], info *failure.Info, actual []any, c *Case) error {
		return f(l, info, actual, c.Value, c.Index)
	}
}

var operations = map[string]operation{
	"isEmpty":               single((*assert.Lists[any]).IsEmpty),
	"isNotEmpty":            single((*assert.Lists[any]).IsNotEmpty),
	"hasDuplicates":         single((*assert.Lists[any]).HasDuplicates),
	"doesNotHaveDuplicates": single((*assert.Lists[any]).DoesNotHaveDuplicates),
	"containsNil":           single((*assert.Lists[any]).ContainsNil),
	"doesNotContainNil":     single((*assert.Lists[any]).DoesNotContainNil),
	"isSorted":              single((*assert.Lists[any]).IsSorted),
	"hasSize": func(l *assert.Lists[any], info *failure.Info, actual []any, c *Case) error {
		return l.HasSize(info, actual, c.Size)
	},

	"contains":                  group((*assert.Lists[any]).Contains),
	"containsOnly":              group((*assert.Lists[any]).ContainsOnly),
	"containsExactly":           group((*assert.Lists[any]).ContainsExactly),
	"containsExactlyInAnyOrder": group((*assert.Lists[any]).ContainsExactlyInAnyOrder),
	"containsOnlyOnce":          group((*assert.Lists[any]).ContainsOnlyOnce),
	"containsAnyOf":             group((*assert.Lists[any]).ContainsAnyOf),
	"doesNotContain":            group((*assert.Lists[any]).DoesNotContain),
	"isSubsetOf":                group((*assert.Lists[any]).IsSubsetOf),
	"containsSequence":          group((*assert.Lists[any]).ContainsSequence),
	"doesNotContainSequence":    group((*assert.Lists[any]).DoesNotContainSequence),
	"containsSubsequence":       group((*assert.Lists[any]).ContainsSubsequence),
	"startsWith":                group((*assert.Lists[any]).StartsWith),
	"endsWith":                  group((*assert.Lists[any]).EndsWith),

	"containsAt":       at((*assert.Lists[any]).ContainsAt),
	"doesNotContainAt": at((*assert.Lists[any]).DoesNotContainAt),
}

// Assertions returns the names of the supported assertions in order.
func Assertions() []string {
	return slices.Sorted(maps.Keys(operations))
}

// Comparators returns the names of the supported comparators.
func Comparators() []string {
	return []string{"natural", "caseInsensitive", "absolute", "reverse"}
}

func strategyOf(name string) (comparison.Strategy, error) {
	switch name {
	case "", "natural":
		return comparison.Natural(), nil
	case "caseInsensitive":
		return comparison.Custom(comparison.CaseInsensitiveStrings), nil
	case "absolute":
		return comparison.Custom(absoluteValues), nil
	case "reverse":
		return comparison.Custom(comparison.Reverse(comparison.NaturalOrder)), nil
	}
	return comparison.Strategy{}, errors.Errorf("unknown comparator %q", name)
}

type absolute struct{}

var absoluteValues comparison.Comparator = absolute{}

func (absolute) Compare(a, b any) (int, error) {
	return comparison.NaturalOrder.Compare(abs(a), abs(b))
}

func (absolute) Description() string {
	return "AbsoluteValueComparator"
}

// abs returns the absolute value of a number and v itself otherwise.
func abs(v any) any {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		if i := rv.Int(); i < 0 {
			return uint64(-i)
		}
	case rv.CanFloat():
		return math.Abs(rv.Float())
	}
	return v
}
