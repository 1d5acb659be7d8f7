package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := map[string]struct {
			yaml   string
			env    string
			expect *Config
		}{
			"empty": {
				expect: Default(),
			},
			"override": {
				yaml: `
maxElementsForPrinting: 10
maxStringLength: 20
printDescription: false
verbose: true
`,
				expect: &Config{
					MaxElementsForPrinting: 10,
					MaxStringLength:        20,
					PrintDescription:       boolPtr(false),
					Verbose:                true,
					Parallel:               4,
				},
			},
			"color from env": {
				yaml: `colored: false`,
				env:  "true",
				expect: &Config{
					MaxElementsForPrinting: 1000,
					Colored:                boolPtr(true),
					PrintDescription:       boolPtr(true),
					Parallel:               4,
				},
			},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				t.Setenv(envColor, test.env)
				cfg, err := Parse([]byte(test.yaml))
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if diff := cmp.Diff(test.expect, cfg); diff != "" {
					t.Errorf("differs: (-want +got)\n%s", diff)
				}
			})
		}
	})
	t.Run("failure", func(t *testing.T) {
		tests := map[string]struct {
			yaml string
			env  string
		}{
			"unknown field": {
				yaml: `unknown: 1`,
			},
			"negative max elements": {
				yaml: `maxElementsForPrinting: -1`,
			},
			"invalid env": {
				env: "maybe",
			},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				t.Setenv(envColor, test.env)
				if _, err := Parse([]byte(test.yaml)); err == nil {
					t.Fatal("no error")
				}
			})
		}
	})
}

func TestLoad(t *testing.T) {
	t.Setenv(envColor, "")
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("maxStringLength: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.MaxStringLength != 5 {
		t.Errorf("expected 5 but got %d", cfg.MaxStringLength)
	}
	if !cfg.DescriptionEnabled() {
		t.Error("description should be enabled by default")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("no error")
	}
}
