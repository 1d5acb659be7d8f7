package failure

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/config"
	"github.com/scenarigo/verify/presentation"
	"github.com/scenarigo/verify/sequence"
)

var caseInsensitive = comparison.Custom(comparison.CaseInsensitiveStrings)

func TestDescriptor_Render(t *testing.T) {
	tests := map[string]struct {
		descriptor *Descriptor
		expect     string
	}{
		"should not be nil": {
			descriptor: ShouldNotBeNil(),
			expect:     "Expecting actual not to be nil\n",
		},
		"should contain only": {
			descriptor: ShouldContainOnly(
				[]string{"Yoda", "Han"}, []string{"Luke", "Yoda"},
				[]string{"Luke"}, []string{"Han"}, comparison.Natural()),
			expect: `Expecting actual:
  ["Yoda", "Han"]
to contain only:
  ["Luke", "Yoda"]
element(s) not found:
  ["Luke"]
and element(s) not expected:
  ["Han"]
`,
		},
		"should contain only with comparator": {
			descriptor: ShouldContainOnly(
				[]string{"Yoda", "Han"}, []string{"Luke", "Yoda"},
				[]string{"Luke"}, []string{"Han"}, caseInsensitive),
			expect: `Expecting actual:
  ["Yoda", "Han"]
to contain only:
  ["Luke", "Yoda"]
element(s) not found:
  ["Luke"]
and element(s) not expected:
  ["Han"]
when comparing values using CaseInsensitiveStringComparator`,
		},
		"should contain only (not found)": {
			descriptor: ShouldContainOnly(
				[]string{"Yoda"}, []string{"Luke", "Yoda"},
				[]string{"Luke"}, nil, comparison.Natural()),
			expect: `Expecting actual:
  ["Yoda"]
to contain only:
  ["Luke", "Yoda"]
but could not find the following element(s):
  ["Luke"]
`,
		},
		"should contain only (unexpected)": {
			descriptor: ShouldContainOnly(
				[]string{"Yoda", "Han"}, []string{"Yoda"},
				nil, []string{"Han"}, comparison.Natural()),
			expect: `Expecting actual:
  ["Yoda", "Han"]
to contain only:
  ["Yoda"]
but the following element(s) were unexpected:
  ["Han"]
`,
		},
		"should contain exactly (order)": {
			descriptor: ShouldContainExactly(
				[]string{"Yoda", "Han", "Luke"}, []string{"Yoda", "Luke", "Han"}, nil, nil,
				[]sequence.Mismatch[string]{
					{Index: 1, Actual: "Han", Expected: "Luke"},
					{Index: 2, Actual: "Luke", Expected: "Han"},
				}, comparison.Natural()),
			expect: `Expecting actual:
  ["Yoda", "Han", "Luke"]
to contain exactly (and in same order):
  ["Yoda", "Luke", "Han"]
but there were differences at these indexes:
  - element at index 1: expected "Luke" but was "Han"
  - element at index 2: expected "Han" but was "Luke"
`,
		},
		"should contain": {
			descriptor: ShouldContain([]int{6, 8, 10}, []int{6, 20}, []int{20}, comparison.Natural()),
			expect: `Expecting actual:
  [6, 8, 10]
to contain:
  [6, 20]
but could not find the following element(s):
  [20]
`,
		},
		"should not contain sequence": {
			descriptor: ShouldNotContainSequence([]bool{true, false, true}, []bool{false, true}, 1, comparison.Natural()),
			expect: `Expecting actual:
  [true, false, true]
not to contain sequence:
  [false, true]
but was found at index 1
`,
		},
		"should be sorted": {
			descriptor: ShouldBeSorted([]int{1, 3, 2}, 1),
			expect: `group is not sorted because element 1:
  3
is not less or equal than element 2:
  2
group was:
  [1, 3, 2]
`,
		},
		"should be sorted according to comparator": {
			descriptor: ShouldBeSortedAccordingToComparator([]string{"b", "a"}, 0, comparison.Custom(comparison.CaseInsensitiveStrings)),
			expect: `group is not sorted according to CaseInsensitiveStringComparator comparator because element 0:
  "b"
is not less or equal than element 1:
  "a"
group was:
  ["b", "a"]
`,
		},
		"should not have duplicates": {
			descriptor: ShouldNotHaveDuplicates([]any{"Merry", nil, nil}, []any{nil}, comparison.Natural()),
			expect: `Found duplicate(s):
  [nil]
in:
  ["Merry", nil, nil]
`,
		},
		"should be between": {
			descriptor: ShouldBeBetween(11, 1, 10, true, false, comparison.Natural()),
			expect: `Expecting actual:
  11
to be in range:
  [1, 10[
`,
		},
		"should be equal (multi-line strings)": {
			descriptor: ShouldBeEqual("a\nb\n", "a\nc\n", comparison.Natural()),
			expect: `expected:
  "a\nc\n"
but was:
  "a\nb\n"
diff: (-expected +actual)
  a
- c
+ b
`,
		},
		"actual not empty while group is empty": {
			descriptor: ActualNotEmptyWhileGroupIsEmpty([]int{1}),
			expect: `Actual:
  [1]
is not empty while group of values to look for is.
`,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.descriptor.Render(presentation.Standard())
			if got != test.expect {
				t.Errorf("differs: (-want +got)\n%s", cmp.Diff(test.expect, got))
			}
		})
	}
}

func TestDescriptor_Snapshot(t *testing.T) {
	actual := []string{"Yoda", "Han"}
	notFound := []string{"Luke"}
	d := ShouldContain(actual, []string{"Luke"}, notFound, comparison.Natural())
	actual[0] = "Leia"
	notFound[0] = "Chewie"
	if diff := cmp.Diff([]string{"Yoda", "Han"}, d.Actual()); diff != "" {
		t.Errorf("differs: (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Luke"}, d.Missing()); diff != "" {
		t.Errorf("differs: (-want +got)\n%s", diff)
	}
	if !strings.Contains(d.Error(), `["Yoda", "Han"]`) {
		t.Errorf("unexpected message: %s", d.Error())
	}
	if d.Kind() != KindShouldContain {
		t.Errorf("unexpected kind: %s", d.Kind())
	}
	if d.Index() != -1 {
		t.Errorf("unexpected index: %d", d.Index())
	}
}

func TestDescriptor_Accessors(t *testing.T) {
	d := ShouldContainAtIndex([]int{6, 8}, 6, 1, 8, caseInsensitive)
	if d.Index() != 1 {
		t.Errorf("expected 1 but got %d", d.Index())
	}
	if diff := cmp.Diff(6, d.Expected()); diff != "" {
		t.Errorf("differs: (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(8, d.Unexpected()); diff != "" {
		t.Errorf("differs: (-want +got)\n%s", diff)
	}
	if d.Strategy().Comparator() != comparison.CaseInsensitiveStrings {
		t.Error("strategy is not retained")
	}
}

func TestDescriptor_NamedComparator(t *testing.T) {
	s := comparison.Custom(comparison.CaseInsensitiveStrings)
	tests := map[string]*Descriptor{
		"should be sorted":              ShouldBeSortedAccordingToComparator([]string{"b", "a"}, 0, s),
		"should have comparable values": ShouldHaveComparableElementsAccordingToComparator([]any{"a", 1}, s),
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			if d.Strategy().Comparator() != comparison.CaseInsensitiveStrings {
				t.Error("strategy is not retained")
			}
			got := d.Render(presentation.Standard())
			if n := strings.Count(got, "CaseInsensitiveStringComparator"); n != 1 {
				t.Errorf("expected the comparator once but got %d times:\n%s", n, got)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	d := ShouldContain([]int{1}, []int{2}, []int{2}, comparison.Natural())
	rep := presentation.New(&config.Config{})
	tests := map[string]struct {
		info   *Info
		expect string
	}{
		"nil info": {
			expect: d.Render(rep),
		},
		"description": {
			info:   NewInfo(WithDescription("check %s", "numbers")),
			expect: "[check numbers] " + d.Render(rep),
		},
		"overriding message": {
			info: NewInfo(
				WithDescription("check"),
				WithOverridingMessage("custom %d", 1),
			),
			expect: "custom 1",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Message(test.info, d, rep); got != test.expect {
				t.Errorf("expected %q but got %q", test.expect, got)
			}
			err := NewError(test.info, d, rep)
			if got := err.Error(); got != strings.TrimSuffix(test.expect, "\n") {
				t.Errorf("unexpected error message %q", got)
			}
		})
	}
}

func TestShouldBeInstanceOf(t *testing.T) {
	err := errors.New("boom")
	d := ShouldBeInstanceOf(err, reflect.TypeOf((*MyError)(nil)))
	expect := `Expecting error:
  "boom"
to have an error of type *failure.MyError in its chain but had *errors.errorString
`
	if got := d.Render(presentation.Standard()); got != expect {
		t.Errorf("differs: (-want +got)\n%s", cmp.Diff(expect, got))
	}
}

type MyError struct{}

func (*MyError) Error() string { return "my error" }
