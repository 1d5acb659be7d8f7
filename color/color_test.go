package color

import (
	"strings"
	"testing"

	"github.com/scenarigo/verify/config"
)

func TestConfig_MarshalYAML(t *testing.T) {
	data := map[string]any{
		"name":   "contains frodo",
		"actual": []string{"Frodo", "Sam"},
	}

	c := New()
	c.SetEnabled(true)
	colored, err := c.MarshalYAML(data)
	if err != nil {
		t.Fatalf("failed to marshal: %s", err)
	}
	if !strings.Contains(string(colored), escape) {
		t.Errorf("expected escape sequences but got:\n%s", colored)
	}

	c.SetEnabled(false)
	plain, err := c.MarshalYAML(data)
	if err != nil {
		t.Fatalf("failed to marshal: %s", err)
	}
	expect := `actual:
- Frodo
- Sam
name: contains frodo
`
	if string(plain) != expect {
		t.Errorf("expected:\n%s\nbut got:\n%s", expect, plain)
	}
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		env    string
		expect bool
	}{
		"enabled": {
			env:    "1",
			expect: true,
		},
		"disabled": {
			env:    "false",
			expect: false,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(envVerifyColor, test.env)
			if got := New().IsEnabled(); got != test.expect {
				t.Errorf("expected %t but got %t", test.expect, got)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv(envVerifyColor, "true")
	disabled := false
	c := FromConfig(&config.Config{Colored: &disabled})
	if c.IsEnabled() {
		t.Error("configuration should take precedence")
	}
	if got := c.Fail().Sprint("FAIL"); got != "FAIL" {
		t.Errorf("unexpected output %q", got)
	}
}
