package failure

// Kind identifies the violated property.
type Kind string

// Kinds of failures.
const (
	KindShouldNotBeNil                                    Kind = "shouldNotBeNil"
	KindShouldBeNil                                       Kind = "shouldBeNil"
	KindShouldBeEmpty                                     Kind = "shouldBeEmpty"
	KindShouldNotBeEmpty                                  Kind = "shouldNotBeEmpty"
	KindShouldHaveSize                                    Kind = "shouldHaveSize"
	KindShouldBeEqual                                     Kind = "shouldBeEqual"
	KindShouldNotBeEqual                                  Kind = "shouldNotBeEqual"
	KindShouldBeIn                                        Kind = "shouldBeIn"
	KindShouldNotBeIn                                     Kind = "shouldNotBeIn"
	KindShouldContain                                     Kind = "shouldContain"
	KindShouldNotContain                                  Kind = "shouldNotContain"
	KindShouldContainOnly                                 Kind = "shouldContainOnly"
	KindShouldContainExactly                              Kind = "shouldContainExactly"
	KindShouldContainExactlyInAnyOrder                    Kind = "shouldContainExactlyInAnyOrder"
	KindShouldContainOnlyOnce                             Kind = "shouldContainOnlyOnce"
	KindShouldContainAnyOf                                Kind = "shouldContainAnyOf"
	KindShouldContainSequence                             Kind = "shouldContainSequence"
	KindShouldNotContainSequence                          Kind = "shouldNotContainSequence"
	KindShouldContainSubsequence                          Kind = "shouldContainSubsequence"
	KindShouldStartWith                                   Kind = "shouldStartWith"
	KindShouldEndWith                                     Kind = "shouldEndWith"
	KindShouldContainAtIndex                              Kind = "shouldContainAtIndex"
	KindShouldNotContainAtIndex                           Kind = "shouldNotContainAtIndex"
	KindShouldHaveDuplicates                              Kind = "shouldHaveDuplicates"
	KindShouldNotHaveDuplicates                           Kind = "shouldNotHaveDuplicates"
	KindShouldBeSorted                                    Kind = "shouldBeSorted"
	KindShouldBeSortedAccordingToComparator               Kind = "shouldBeSortedAccordingToComparator"
	KindShouldHaveMutuallyComparableElements              Kind = "shouldHaveMutuallyComparableElements"
	KindShouldHaveComparableElementsAccordingToComparator Kind = "shouldHaveComparableElementsAccordingToComparator"
	KindShouldContainNil                                  Kind = "shouldContainNil"
	KindShouldNotContainNil                               Kind = "shouldNotContainNil"
	KindShouldBeSubsetOf                                  Kind = "shouldBeSubsetOf"
	KindShouldMatchCondition                              Kind = "shouldMatchCondition"
	KindShouldBeGreater                                   Kind = "shouldBeGreater"
	KindShouldBeGreaterOrEqual                            Kind = "shouldBeGreaterOrEqual"
	KindShouldBeLess                                      Kind = "shouldBeLess"
	KindShouldBeLessOrEqual                               Kind = "shouldBeLessOrEqual"
	KindShouldBeBetween                                   Kind = "shouldBeBetween"
	KindShouldContainKeys                                 Kind = "shouldContainKeys"
	KindShouldNotContainKeys                              Kind = "shouldNotContainKeys"
	KindShouldContainOnlyKeys                             Kind = "shouldContainOnlyKeys"
	KindShouldContainEntries                              Kind = "shouldContainEntries"
	KindShouldNotContainEntries                           Kind = "shouldNotContainEntries"
	KindShouldContainValues                               Kind = "shouldContainValues"
	KindShouldNotContainValue                             Kind = "shouldNotContainValue"
	KindShouldContainSubstring                            Kind = "shouldContainSubstring"
	KindShouldNotContainSubstring                         Kind = "shouldNotContainSubstring"
	KindShouldStartWithString                             Kind = "shouldStartWithString"
	KindShouldEndWithString                               Kind = "shouldEndWithString"
	KindShouldMatch                                       Kind = "shouldMatch"
	KindShouldBeEqualIgnoringCase                         Kind = "shouldBeEqualIgnoringCase"
	KindShouldHaveLength                                  Kind = "shouldHaveLength"
	KindShouldBeBefore                                    Kind = "shouldBeBefore"
	KindShouldBeAfter                                     Kind = "shouldBeAfter"
	KindShouldBeInSameDay                                 Kind = "shouldBeInSameDay"
	KindShouldBeCloseTo                                   Kind = "shouldBeCloseTo"
	KindShouldHaveMessage                                 Kind = "shouldHaveMessage"
	KindShouldHaveMessageContaining                       Kind = "shouldHaveMessageContaining"
	KindShouldWrap                                        Kind = "shouldWrap"
	KindShouldBeInstanceOf                                Kind = "shouldBeInstanceOf"
	KindShouldHaveNoCause                                 Kind = "shouldHaveNoCause"
	KindActualNotEmptyWhileGroupIsEmpty                   Kind = "actualNotEmptyWhileGroupIsEmpty"
)

func (k Kind) String() string {
	return string(k)
}
