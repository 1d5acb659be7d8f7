package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/scenarigo/verify/suite"
)

func TestList(t *testing.T) {
	tests := map[string]struct {
		comparators bool
		expect      []string
	}{
		"assertions": {
			expect: suite.Assertions(),
		},
		"comparators": {
			comparators: true,
			expect:      []string{"natural", "caseInsensitive", "absolute", "reverse"},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var b bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&b)
			comparators = test.comparators
			t.Cleanup(func() {
				comparators = false
			})
			if err := list(cmd, nil); err != nil {
				t.Fatal(err)
			}
			if got, expect := b.String(), strings.Join(test.expect, "\n")+"\n"; got != expect {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(expect, got, false)
				t.Errorf("output differs:\n%s", dmp.DiffPrettyText(diffs))
			}
		})
	}
}

func TestVersion(t *testing.T) {
	var b bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&b)
	printVersion(cmd, nil)
	if got, expect := b.String(), fmt.Sprintf("%s version %s %s %s/%s\n", appName, version, runtime.Version(), runtime.GOOS, runtime.GOARCH); got != expect {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(expect, got, false)
		t.Errorf("output differs:\n%s", dmp.DiffPrettyText(diffs))
	}
}
