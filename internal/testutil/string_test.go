package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReplaceOutput(t *testing.T) {
	str := "--- FAIL: hobbits/contains gollum (1.23s)  \n" +
		"    \x1b[91m[contains gollum] Expecting actual:\x1b[0m\n" +
		"--- PASS: hobbits/sorted (12.34s)\n"
	expect := "--- FAIL: hobbits/contains gollum (0.00s)\n" +
		"    [contains gollum] Expecting actual:\n" +
		"--- PASS: hobbits/sorted (0.00s)\n"
	if diff := cmp.Diff(expect, ReplaceOutput(str)); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}
}

func TestResetDuration(t *testing.T) {
	tests := map[string]struct {
		str    string
		expect string
	}{
		"duration": {
			str:    "--- PASS: a (0.42s)",
			expect: "--- PASS: a (0.00s)",
		},
		"not a duration": {
			str:    "expected (1.5) but got (2s)",
			expect: "expected (1.5) but got (2s)",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ResetDuration(test.str); got != test.expect {
				t.Errorf("expected %q but got %q", test.expect, got)
			}
		})
	}
}
