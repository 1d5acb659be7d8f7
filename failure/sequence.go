package failure

import (
	"strings"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/presentation"
	"github.com/scenarigo/verify/sequence"
)

// ShouldNotBeNil creates the failure of an assertion run against a nil actual.
func ShouldNotBeNil() *Descriptor {
	return newDescriptor(KindShouldNotBeNil, nil, "Expecting actual not to be nil\n", nil)
}

// ShouldBeEmpty creates the failure of a non-empty actual expected to be empty.
func ShouldBeEmpty(actual any) *Descriptor {
	return newDescriptor(KindShouldBeEmpty, actual, "Expecting empty but was:\n  %s\n", []any{actual})
}

// ShouldNotBeEmpty creates the failure of an empty actual.
func ShouldNotBeEmpty(actual any) *Descriptor {
	return newDescriptor(KindShouldNotBeEmpty, actual, "Expecting actual not to be empty\n", nil)
}

// ShouldHaveSize creates the failure of an actual of unexpected size.
func ShouldHaveSize(actual any, actualSize, expectedSize int) *Descriptor {
	return newDescriptor(KindShouldHaveSize, actual,
		"Expected size: %s but was: %s in:\n  %s\n",
		[]any{expectedSize, actualSize, actual},
		withExpected(expectedSize))
}

// ShouldContain creates the failure of values not found in actual.
func ShouldContain[E any](actual, values, notFound []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContain, actual,
		"Expecting actual:\n  %s\nto contain:\n  %s\nbut could not find the following element(s):\n  %s\n",
		[]any{actual, values, notFound},
		withExpected(values), withMissing(notFound), withStrategy(s))
}

// ShouldNotContain creates the failure of values found in actual.
func ShouldNotContain[E any](actual, values, found []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotContain, actual,
		"Expecting actual:\n  %s\nnot to contain:\n  %s\nbut found:\n  %s\n",
		[]any{actual, values, found},
		withExpected(values), withUnexpected(found), withStrategy(s))
}

// ShouldContainOnly creates the failure of actual not containing exactly the
// value set of values.
func ShouldContainOnly[E any](actual, values, missing, unexpected []E, s comparison.Strategy) *Descriptor {
	return notOnly(KindShouldContainOnly, "to contain only", actual, values, missing, unexpected, s)
}

// ShouldContainExactlyInAnyOrder creates the failure of actual and values not
// having the same occurrences of elements.
func ShouldContainExactlyInAnyOrder[E any](actual, values, missing, unexpected []E, s comparison.Strategy) *Descriptor {
	return notOnly(KindShouldContainExactlyInAnyOrder, "to contain exactly in any order", actual, values, missing, unexpected, s)
}

func notOnly[E any](kind Kind, verb string, actual, values, missing, unexpected []E, s comparison.Strategy) *Descriptor {
	fields := []field{withExpected(values), withMissing(missing), withUnexpected(unexpected), withStrategy(s)}
	head := "Expecting actual:\n  %s\n" + verb + ":\n  %s\n"
	switch {
	case len(unexpected) == 0:
		return newDescriptor(kind, actual,
			head+"but could not find the following element(s):\n  %s\n",
			[]any{actual, values, missing}, fields...)
	case len(missing) == 0:
		return newDescriptor(kind, actual,
			head+"but the following element(s) were unexpected:\n  %s\n",
			[]any{actual, values, unexpected}, fields...)
	default:
		return newDescriptor(kind, actual,
			head+"element(s) not found:\n  %s\nand element(s) not expected:\n  %s\n",
			[]any{actual, values, missing, unexpected}, fields...)
	}
}

// ShouldContainExactly creates the failure of actual not having the elements
// of values in the same order. mismatches is used when the elements are the
// same but in another order.
func ShouldContainExactly[E any](actual, values, missing, unexpected []E, mismatches []sequence.Mismatch[E], s comparison.Strategy) *Descriptor {
	if len(missing) > 0 || len(unexpected) > 0 {
		return notOnly(KindShouldContainExactly, "to contain exactly (and in same order)", actual, values, missing, unexpected, s)
	}
	var b strings.Builder
	args := []any{actual, values}
	for _, m := range mismatches {
		b.WriteString("  - element at index %s: expected %s but was %s\n")
		args = append(args, m.Index, m.Expected, m.Actual)
	}
	return newDescriptor(KindShouldContainExactly, actual,
		"Expecting actual:\n  %s\nto contain exactly (and in same order):\n  %s\nbut there were differences at these indexes:\n"+b.String(),
		args, withExpected(values), withStrategy(s))
}

// ShouldContainOnlyOnce creates the failure of values not found or found more
// than once.
func ShouldContainOnlyOnce[E any](actual, values, notFound, notOnlyOnce []E, s comparison.Strategy) *Descriptor {
	fields := []field{withExpected(values), withMissing(notFound), withUnexpected(notOnlyOnce), withStrategy(s)}
	head := "Expecting actual:\n  %s\nto contain only once:\n  %s\n"
	switch {
	case len(notOnlyOnce) == 0:
		return newDescriptor(KindShouldContainOnlyOnce, actual,
			head+"but some elements were not found:\n  %s\n",
			[]any{actual, values, notFound}, fields...)
	case len(notFound) == 0:
		return newDescriptor(KindShouldContainOnlyOnce, actual,
			head+"but some elements were found more than once:\n  %s\n",
			[]any{actual, values, notOnlyOnce}, fields...)
	default:
		return newDescriptor(KindShouldContainOnlyOnce, actual,
			head+"but some elements were not found:\n  %s\nand others were found more than once:\n  %s\n",
			[]any{actual, values, notFound, notOnlyOnce}, fields...)
	}
}

// ShouldContainAnyOf creates the failure of actual containing none of values.
func ShouldContainAnyOf[E any](actual, values []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainAnyOf, actual,
		"Expecting actual:\n  %s\nto contain at least one of the following elements:\n  %s\nbut none were found\n",
		[]any{actual, values},
		withExpected(values), withMissing(values), withStrategy(s))
}

// ShouldBeSubsetOf creates the failure of actual elements absent from values.
func ShouldBeSubsetOf[E any](actual, values, unexpected []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldBeSubsetOf, actual,
		"Expecting actual:\n  %s\nto be subset of\n  %s\nbut found these extra elements:\n  %s\n",
		[]any{actual, values, unexpected},
		withExpected(values), withUnexpected(unexpected), withStrategy(s))
}

// ShouldContainSequence creates the failure of a sequence not found in actual.
func ShouldContainSequence[E any](actual, seq []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainSequence, actual,
		"Expecting actual:\n  %s\nto contain sequence:\n  %s\n",
		[]any{actual, seq}, withExpected(seq), withStrategy(s))
}

// ShouldNotContainSequence creates the failure of a sequence found in actual
// at index.
func ShouldNotContainSequence[E any](actual, seq []E, index int, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotContainSequence, actual,
		"Expecting actual:\n  %s\nnot to contain sequence:\n  %s\nbut was found at index %s\n",
		[]any{actual, seq, index}, withExpected(seq), withIndex(index), withStrategy(s))
}

// ShouldContainSubsequence creates the failure of a subsequence not found in
// actual.
func ShouldContainSubsequence[E any](actual, subsequence []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainSubsequence, actual,
		"Expecting actual:\n  %s\nto contain subsequence:\n  %s\n",
		[]any{actual, subsequence}, withExpected(subsequence), withStrategy(s))
}

// ShouldStartWith creates the failure of actual not starting with seq.
func ShouldStartWith[E any](actual, seq []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldStartWith, actual,
		"Expecting actual:\n  %s\nto start with:\n  %s\n",
		[]any{actual, seq}, withExpected(seq), withStrategy(s))
}

// ShouldEndWith creates the failure of actual not ending with seq.
func ShouldEndWith[E any](actual, seq []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldEndWith, actual,
		"Expecting actual:\n  %s\nto end with:\n  %s\n",
		[]any{actual, seq}, withExpected(seq), withStrategy(s))
}

// ShouldContainAtIndex creates the failure of value not being found at index.
func ShouldContainAtIndex[E any](actual []E, value E, index int, found E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldContainAtIndex, actual,
		"Expecting actual:\n  %s\nat index %s:\n  %s\nbut found:\n  %s\n",
		[]any{actual, index, value, found},
		withExpected(value), withUnexpected(found), withIndex(index), withStrategy(s))
}

// ShouldNotContainAtIndex creates the failure of value being found at index.
func ShouldNotContainAtIndex[E any](actual []E, value E, index int, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotContainAtIndex, actual,
		"Expecting actual:\n  %s\nnot to contain:\n  %s\nat index %s\n",
		[]any{actual, value, index},
		withExpected(value), withIndex(index), withStrategy(s))
}

// ShouldHaveDuplicates creates the failure of actual without duplicates.
func ShouldHaveDuplicates[E any](actual []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldHaveDuplicates, actual,
		"Expecting actual:\n  %s\nto contain duplicates but did not\n",
		[]any{actual}, withStrategy(s))
}

// ShouldNotHaveDuplicates creates the failure of actual with duplicates.
func ShouldNotHaveDuplicates[E any](actual, duplicates []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldNotHaveDuplicates, actual,
		"Found duplicate(s):\n  %s\nin:\n  %s\n",
		[]any{duplicates, actual}, withUnexpected(duplicates), withStrategy(s))
}

// ShouldBeSorted creates the failure of actual[index] being greater than
// actual[index+1] in natural order.
func ShouldBeSorted[E any](actual []E, index int) *Descriptor {
	return newDescriptor(KindShouldBeSorted, actual,
		"group is not sorted because element %s:\n  %s\nis not less or equal than element %s:\n  %s\ngroup was:\n  %s\n",
		[]any{index, actual[index], index + 1, actual[index+1], actual},
		withIndex(index))
}

// ShouldBeSortedAccordingToComparator creates the failure of actual[index]
// being greater than actual[index+1] according to the comparator of s.
func ShouldBeSortedAccordingToComparator[E any](actual []E, index int, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldBeSortedAccordingToComparator, actual,
		"group is not sorted according to %s comparator because element %s:\n  %s\nis not less or equal than element %s:\n  %s\ngroup was:\n  %s\n",
		[]any{presentation.Unquoted(s.Comparator().Description()), index, actual[index], index + 1, actual[index+1], actual},
		withIndex(index), withNamedStrategy(s))
}

// ShouldHaveMutuallyComparableElements creates the failure of actual with
// elements that can not be ordered.
func ShouldHaveMutuallyComparableElements[E any](actual []E) *Descriptor {
	return newDescriptor(KindShouldHaveMutuallyComparableElements, actual,
		"Expecting all elements of:\n  %s\nto be mutually comparable but it is not\n",
		[]any{actual})
}

// ShouldHaveComparableElementsAccordingToComparator creates the failure of
// actual with elements that the comparator of s can not compare.
func ShouldHaveComparableElementsAccordingToComparator[E any](actual []E, s comparison.Strategy) *Descriptor {
	return newDescriptor(KindShouldHaveComparableElementsAccordingToComparator, actual,
		"Expecting all elements of:\n  %s\nto be comparable according to %s comparator\n",
		[]any{actual, presentation.Unquoted(s.Comparator().Description())}, withNamedStrategy(s))
}

// ShouldContainNil creates the failure of actual without nil elements.
func ShouldContainNil(actual any) *Descriptor {
	return newDescriptor(KindShouldContainNil, actual,
		"Expecting actual:\n  %s\nto contain a nil element\n", []any{actual})
}

// ShouldNotContainNil creates the failure of actual with a nil element at
// index.
func ShouldNotContainNil(actual any, index int) *Descriptor {
	return newDescriptor(KindShouldNotContainNil, actual,
		"Expecting actual:\n  %s\nnot to contain nil elements but found one at index %s\n",
		[]any{actual, index}, withIndex(index))
}

// ShouldMatchCondition creates the failure of the element at index not
// satisfying the described condition.
func ShouldMatchCondition(actual, element any, index int, condition string) *Descriptor {
	return newDescriptor(KindShouldMatchCondition, actual,
		"Expecting actual:\n  %s\nto have %s at index %s but was:\n  %s\n",
		[]any{actual, presentation.Unquoted(condition), index, element},
		withUnexpected(element), withIndex(index))
}

// ActualNotEmptyWhileGroupIsEmpty creates the failure of a non-empty actual
// checked against an empty group of values.
func ActualNotEmptyWhileGroupIsEmpty(actual any) *Descriptor {
	return newDescriptor(KindActualNotEmptyWhileGroupIsEmpty, actual,
		"Actual:\n  %s\nis not empty while group of values to look for is.\n",
		[]any{actual})
}
