package failure

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/presentation"
)

// ShouldBeEqual creates the failure of actual not being equal to expected.
// The message has a diff of the two values when they have the same type.
func ShouldBeEqual(actual, expected any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldBeEqual, actual,
		"expected:\n  %s\nbut was:\n  %s\n",
		[]any{expected, actual},
		withExpected(expected), withStrategy(s), withDetails(diff(expected, actual)))
}

func diff(expected, actual any) string {
	if expected == nil || actual == nil || reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return ""
	}
	if e, ok := expected.(string); ok {
		a := actual.(string)
		if !strings.Contains(e, "\n") && !strings.Contains(a, "\n") {
			return ""
		}
		return "diff: (-expected +actual)\n" + stringDiff(e, a)
	}
	switch reflect.ValueOf(expected).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer:
	default:
		return ""
	}
	d := cmp.Diff(expected, actual, cmp.Exporter(func(reflect.Type) bool { return true }))
	if d == "" {
		return ""
	}
	return "diff: (-expected +actual)\n" + d
}

func stringDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// ShouldNotBeEqual creates the failure of actual being equal to other.
func ShouldNotBeEqual(actual, other any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotBeEqual, actual,
		"Expecting actual:\n  %s\nnot to be equal to:\n  %s\n",
		[]any{actual, other}, withExpected(other), withStrategy(s))
}

// ShouldBeNil creates the failure of a non-nil actual.
func ShouldBeNil(actual any) *Descriptor {
	return newDescriptor(KindShouldBeNil, actual,
		"Expecting actual:\n  %s\nto be nil\n", []any{actual})
}

// ShouldBeIn creates the failure of actual not being one of values.
func ShouldBeIn(actual, values any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldBeIn, actual,
		"Expecting actual:\n  %s\nto be in:\n  %s\n",
		[]any{actual, values}, withExpected(values), withStrategy(s))
}

// ShouldNotBeIn creates the failure of actual being one of values.
func ShouldNotBeIn(actual, values any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotBeIn, actual,
		"Expecting actual:\n  %s\nnot to be in:\n  %s\n",
		[]any{actual, values}, withExpected(values), withStrategy(s))
}

// ShouldBeGreater creates the failure of actual not being greater than other.
func ShouldBeGreater(actual, other any, s comparison.Strategy) *Descriptor {
	return compare(KindShouldBeGreater, "greater than", actual, other, s)
}

// ShouldBeGreaterOrEqual creates the failure of actual being less than other.
func ShouldBeGreaterOrEqual(actual, other any, s comparison.Strategy) *Descriptor {
	return compare(KindShouldBeGreaterOrEqual, "greater than or equal to", actual, other, s)
}

// ShouldBeLess creates the failure of actual not being less than other.
func ShouldBeLess(actual, other any, s comparison.Strategy) *Descriptor {
	return compare(KindShouldBeLess, "less than", actual, other, s)
}

// ShouldBeLessOrEqual creates the failure of actual being greater than other.
func ShouldBeLessOrEqual(actual, other any, s comparison.Strategy) *Descriptor {
	return compare(KindShouldBeLessOrEqual, "less than or equal to", actual, other, s)
}

func compare(kind Kind, relation string, actual, other any, s comparison.Strategy) *Descriptor {
	return newDescriptor(kind, actual,
		"Expecting actual:\n  %s\nto be "+relation+":\n  %s\n",
		[]any{actual, other}, withExpected(other), withStrategy(s))
}

// ShouldBeBetween creates the failure of actual being outside of the range
// between start and end.
func ShouldBeBetween(actual, start, end any, inclusiveStart, inclusiveEnd bool, s comparison.Strategy) *Descriptor {
	open, closing := "]", "["
	if inclusiveStart {
		open = "["
	}
	if inclusiveEnd {
		closing = "]"
	}
	return newDescriptor(KindShouldBeBetween, actual,
		"Expecting actual:\n  %s\nto be in range:\n  "+open+"%s, %s"+closing+"\n",
		[]any{actual, start, end}, withExpected([]any{start, end}), withStrategy(s))
}

// ShouldContainKeys creates the failure of keys not found in the map actual.
func ShouldContainKeys(actual, keys, notFound any) *Descriptor {
	return newDescriptor(KindShouldContainKeys, actual,
		"Expecting actual:\n  %s\nto contain keys:\n  %s\nbut could not find:\n  %s\n",
		[]any{actual, keys, notFound}, withExpected(keys), withMissing(notFound))
}

// ShouldNotContainKeys creates the failure of keys found in the map actual.
func ShouldNotContainKeys(actual, keys, found any) *Descriptor {
	return newDescriptor(KindShouldNotContainKeys, actual,
		"Expecting actual:\n  %s\nnot to contain keys:\n  %s\nbut found:\n  %s\n",
		[]any{actual, keys, found}, withExpected(keys), withUnexpected(found))
}

// ShouldContainOnlyKeys creates the failure of the map actual not having
// exactly keys.
func ShouldContainOnlyKeys(actual, keys, notFound, notExpected any) *Descriptor {
	return newDescriptor(KindShouldContainOnlyKeys, actual,
		"Expecting actual:\n  %s\nto contain only keys:\n  %s\nbut could not find the following keys:\n  %s\nand the following keys were unexpected:\n  %s\n",
		[]any{actual, keys, notFound, notExpected},
		withExpected(keys), withMissing(notFound), withUnexpected(notExpected))
}

// ShouldContainEntries creates the failure of entries not found in the map
// actual.
func ShouldContainEntries(actual, entries, notFound any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainEntries, actual,
		"Expecting map:\n  %s\nto contain entries:\n  %s\nbut could not find the following map entries:\n  %s\n",
		[]any{actual, entries, notFound},
		withExpected(entries), withMissing(notFound), withStrategy(s))
}

// ShouldNotContainEntries creates the failure of entries found in the map
// actual.
func ShouldNotContainEntries(actual, entries, found any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotContainEntries, actual,
		"Expecting map:\n  %s\nnot to contain entries:\n  %s\nbut found:\n  %s\n",
		[]any{actual, entries, found},
		withExpected(entries), withUnexpected(found), withStrategy(s))
}

// ShouldContainValues creates the failure of values not found in the map
// actual.
func ShouldContainValues(actual, values, notFound any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainValues, actual,
		"Expecting actual:\n  %s\nto contain values:\n  %s\nbut could not find:\n  %s\n",
		[]any{actual, values, notFound},
		withExpected(values), withMissing(notFound), withStrategy(s))
}

// ShouldNotContainValue creates the failure of value found in the map actual.
func ShouldNotContainValue(actual, value any, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotContainValue, actual,
		"Expecting actual:\n  %s\nnot to contain value:\n  %s\n",
		[]any{actual, value}, withExpected(value), withStrategy(s))
}

// ShouldContainSubstring creates the failure of actual not containing sub.
func ShouldContainSubstring(actual, sub string, s comparison.Strategy) *Descriptor {
	return text(KindShouldContainSubstring, "to contain", actual, sub, s)
}

// ShouldNotContainSubstring creates the failure of actual containing sub.
func ShouldNotContainSubstring(actual, sub string, s comparison.Strategy) *Descriptor {
	return text(KindShouldNotContainSubstring, "not to contain", actual, sub, s)
}

// ShouldStartWithString creates the failure of actual not starting with
// prefix.
func ShouldStartWithString(actual, prefix string, s comparison.Strategy) *Descriptor {
	return text(KindShouldStartWithString, "to start with", actual, prefix, s)
}

// ShouldEndWithString creates the failure of actual not ending with suffix.
func ShouldEndWithString(actual, suffix string, s comparison.Strategy) *Descriptor {
	return text(KindShouldEndWithString, "to end with", actual, suffix, s)
}

// ShouldMatch creates the failure of actual not matching pattern.
func ShouldMatch(actual, pattern string) *Descriptor {
	return newDescriptor(KindShouldMatch, actual,
		"Expecting actual:\n  %s\nto match pattern:\n  %s\n",
		[]any{actual, pattern}, withExpected(pattern))
}

// ShouldBeEqualIgnoringCase creates the failure of actual not being equal to
// expected ignoring case.
func ShouldBeEqualIgnoringCase(actual, expected string) *Descriptor {
	return text(KindShouldBeEqualIgnoringCase, "to be equal to, ignoring case", actual, expected, comparison.Natural())
}

func text(kind Kind, verb, actual, expected string, s comparison.Strategy) *Descriptor {
	return newDescriptor(kind, actual,
		"Expecting actual:\n  %s\n"+verb+":\n  %s\n",
		[]any{actual, expected}, withExpected(expected), withStrategy(s))
}

// ShouldHaveLength creates the failure of a string of unexpected length.
func ShouldHaveLength(actual string, actualLength, expectedLength int) *Descriptor {
	return newDescriptor(KindShouldHaveLength, actual,
		"Expected length: %s but was: %s in:\n  %s\n",
		[]any{expectedLength, actualLength, actual}, withExpected(expectedLength))
}

// ShouldBeBefore creates the failure of actual not being before other.
func ShouldBeBefore(actual, other any) *Descriptor {
	return newDescriptor(KindShouldBeBefore, actual,
		"Expecting actual:\n  %s\nto be strictly before:\n  %s\n",
		[]any{actual, other}, withExpected(other))
}

// ShouldBeAfter creates the failure of actual not being after other.
func ShouldBeAfter(actual, other any) *Descriptor {
	return newDescriptor(KindShouldBeAfter, actual,
		"Expecting actual:\n  %s\nto be strictly after:\n  %s\n",
		[]any{actual, other}, withExpected(other))
}

// ShouldBeInSameDay creates the failure of actual and other being on
// different days.
func ShouldBeInSameDay(actual, other any) *Descriptor {
	return newDescriptor(KindShouldBeInSameDay, actual,
		"Expecting actual:\n  %s\nto be on same year, month and day as:\n  %s\n",
		[]any{actual, other}, withExpected(other))
}

// ShouldBeCloseTo creates the failure of actual being further than delta from
// other.
func ShouldBeCloseTo(actual, other, delta, difference any) *Descriptor {
	return newDescriptor(KindShouldBeCloseTo, actual,
		"Expecting actual:\n  %s\nto be close to:\n  %s\nby less than %s but difference was %s\n",
		[]any{actual, other, delta, difference}, withExpected(other))
}

// ShouldHaveMessage creates the failure of an error with another message.
func ShouldHaveMessage(actual error, expected string) *Descriptor {
	return newDescriptor(KindShouldHaveMessage, actual,
		"Expecting error message to be:\n  %s\nbut was:\n  %s\n",
		[]any{expected, actual.Error()},
		withExpected(expected), withDetails(diff(expected, actual.Error())))
}

// ShouldHaveMessageContaining creates the failure of an error message not
// containing sub.
func ShouldHaveMessageContaining(actual error, sub string) *Descriptor {
	return newDescriptor(KindShouldHaveMessageContaining, actual,
		"Expecting error message:\n  %s\nto contain:\n  %s\n",
		[]any{actual.Error(), sub}, withExpected(sub))
}

// ShouldWrap creates the failure of an error chain without target.
func ShouldWrap(actual, target error) *Descriptor {
	return newDescriptor(KindShouldWrap, actual,
		"Expecting error:\n  %s\nto wrap:\n  %s\n",
		[]any{actual, target}, withExpected(target))
}

// ShouldBeInstanceOf creates the failure of an error chain without an error of
// the type typ.
func ShouldBeInstanceOf(actual error, typ reflect.Type) *Descriptor {
	return newDescriptor(KindShouldBeInstanceOf, actual,
		"Expecting error:\n  %s\nto have an error of type %s in its chain but had %s\n",
		[]any{actual, presentation.Unquoted(typ.String()), presentation.Unquoted(fmt.Sprintf("%T", actual))},
		withExpected(typ.String()))
}

// ShouldHaveNoCause creates the failure of an error wrapping cause.
func ShouldHaveNoCause(actual, cause error) *Descriptor {
	return newDescriptor(KindShouldHaveNoCause, actual,
		"Expecting error:\n  %s\nwithout cause but cause was:\n  %s\n",
		[]any{actual, cause}, withUnexpected(cause))
}
