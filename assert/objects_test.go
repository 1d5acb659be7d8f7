package assert

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

type hobbit struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
	Ring *ring  `yaml:"ring"`
}

type ring struct {
	Bearer string `yaml:"bearer"`
}

func TestObjects(t *testing.T) {
	frodo := &hobbit{Name: "Frodo", Age: 33, Ring: &ring{Bearer: "Frodo"}}
	var nilHobbit *hobbit
	tests := map[string]struct {
		assertion func(a *Objects) error
		opts      []Option
		kind      failure.Kind
		err       error
	}{
		"is equal to": {
			assertion: func(a *Objects) error {
				return a.IsEqualTo(nil, frodo, &hobbit{Name: "Frodo", Age: 33, Ring: &ring{Bearer: "Frodo"}})
			},
		},
		"is equal to (different)": {
			assertion: func(a *Objects) error {
				return a.IsEqualTo(nil, frodo, &hobbit{Name: "Frodo", Age: 50})
			},
			kind: failure.KindShouldBeEqual,
		},
		"is equal to (case insensitive)": {
			assertion: func(a *Objects) error {
				return a.IsEqualTo(nil, "Frodo", "FRODO")
			},
			opts: []Option{caseInsensitive},
		},
		"is not equal to": {
			assertion: func(a *Objects) error {
				return a.IsNotEqualTo(nil, "Frodo", "FRODO")
			},
		},
		"is not equal to (equal)": {
			assertion: func(a *Objects) error {
				return a.IsNotEqualTo(nil, nil, nil)
			},
			kind: failure.KindShouldNotBeEqual,
		},
		"is nil": {
			assertion: func(a *Objects) error {
				return a.IsNil(nil, nilHobbit)
			},
		},
		"is nil (not nil)": {
			assertion: func(a *Objects) error {
				return a.IsNil(nil, frodo)
			},
			kind: failure.KindShouldBeNil,
		},
		"is not nil": {
			assertion: func(a *Objects) error {
				return a.IsNotNil(nil, nil)
			},
			kind: failure.KindShouldNotBeNil,
		},
		"is in": {
			assertion: func(a *Objects) error {
				return a.IsIn(nil, "Sam", []string{"Frodo", "Sam"})
			},
		},
		"is in (not found)": {
			assertion: func(a *Objects) error {
				return a.IsIn(nil, "Gollum", []string{"Frodo", "Sam"})
			},
			kind: failure.KindShouldBeIn,
		},
		"is in (nil values)": {
			assertion: func(a *Objects) error {
				return a.IsIn(nil, "Gollum", nil)
			},
			err: errors.ErrValuesIsNil,
		},
		"is in (empty values)": {
			assertion: func(a *Objects) error {
				return a.IsIn(nil, "Gollum", []string{})
			},
			err: errors.ErrValuesIsEmpty,
		},
		"is in (not an array)": {
			assertion: func(a *Objects) error {
				return a.IsIn(nil, "Gollum", "Gollum")
			},
			err: errors.ErrNotArray,
		},
		"is not in": {
			assertion: func(a *Objects) error {
				return a.IsNotIn(nil, "sam", []string{"Frodo", "Sam"})
			},
			opts: []Option{caseInsensitive},
			kind: failure.KindShouldNotBeIn,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			run(t, test.kind, test.err, func(rep reporter.Reporter) error {
				a, err := NewObjects(rep, test.opts...)
				if err != nil {
					return err
				}
				return test.assertion(a)
			})
		})
	}
}

func TestObjects_Extracting(t *testing.T) {
	fellowship := []*hobbit{
		{Name: "Frodo", Age: 33, Ring: &ring{Bearer: "Frodo"}},
		{Name: "Sam", Age: 38},
	}
	t.Run("success", func(t *testing.T) {
		a, err := NewObjects(reporter.NewCollector())
		if err != nil {
			t.Fatal(err)
		}
		got, err := a.Extracting(nil, fellowship[0], "ring.bearer")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got != "Frodo" {
			t.Errorf("expected Frodo but got %v", got)
		}
		names, err := a.ExtractingFromEach(nil, fellowship, "name")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if diff := cmp.Diff([]any{"Frodo", "Sam"}, names); diff != "" {
			t.Errorf("differs: (-want +got)\n%s", diff)
		}
	})
	t.Run("failure", func(t *testing.T) {
		tests := map[string]struct {
			actual any
			path   string
			expect string
		}{
			"not found": {
				actual: fellowship,
				path:   "surname",
				expect: "[0].surname: ",
			},
			"index out of range": {
				actual: []map[string][]int{{"ages": {33}}, {"ages": {}}},
				path:   "ages[0]",
				expect: "[1].ages[0]: ",
			},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				a, err := NewObjects(reporter.NewCollector())
				if err != nil {
					t.Fatal(err)
				}
				_, err = a.ExtractingFromEach(nil, test.actual, test.path)
				if err == nil {
					t.Fatal("no error")
				}
				var pe *errors.PathError
				if !errors.As(err, &pe) {
					t.Fatalf("expected a path error but got %T", err)
				}
				if got := err.Error(); !strings.HasPrefix(got, test.expect) {
					t.Errorf("expected %q prefix but got %q", test.expect, got)
				}
			})
		}
	})
	t.Run("nil", func(t *testing.T) {
		run(t, failure.KindShouldNotBeNil, nil, func(rep reporter.Reporter) error {
			a, err := NewObjects(rep)
			if err != nil {
				return err
			}
			_, err = a.Extracting(nil, nil, "name")
			return err
		})
	})
}
