// Package suite loads assertion suites written in YAML and runs them against
// the list assertions.
//
//	name: fellowship
//	comparator: caseInsensitive
//	cases:
//	  - name: contains frodo
//	    assert: contains
//	    actual: [Frodo, Sam]
//	    values: [frodo]
package suite

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	"github.com/scenarigo/verify/errors"
)

// Expect is the outcome a case is expected to have.
type Expect string

const (
	// ExpectPass expects the assertion to succeed. It is the default.
	ExpectPass Expect = "pass"
	// ExpectFail expects the assertion to report a failure.
	ExpectFail Expect = "fail"
	// ExpectError expects the assertion to be misused, for example with a
	// nil group of values.
	ExpectError Expect = "error"
)

// Suite is a named list of cases sharing a comparison strategy.
type Suite struct {
	Name       string  `yaml:"name"`
	Comparator string  `yaml:"comparator,omitempty"`
	Cases      []*Case `yaml:"cases"`

	filepath string
}

// Filepath returns the file the suite was loaded from.
func (s *Suite) Filepath() string {
	return s.filepath
}

// Case is a single assertion call.
type Case struct {
	Name    string `yaml:"name"`
	Assert  string `yaml:"assert"`
	Actual  any    `yaml:"actual"`
	Values  []any  `yaml:"values,omitempty"`
	Value   any    `yaml:"value,omitempty"`
	Index   int    `yaml:"index,omitempty"`
	Size    int    `yaml:"size,omitempty"`
	Extract string `yaml:"extract,omitempty"`
	Expect  Expect `yaml:"expect,omitempty"`
}

// LoadFile loads the suites of the YAML file at path. A file may hold several
// documents, one suite each.
func LoadFile(path string) ([]*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	suites, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	for _, s := range suites {
		s.filepath = path
	}
	return suites, nil
}

// Decode reads and validates the suites of a YAML stream.
func Decode(r io.Reader) ([]*Suite, error) {
	var suites []*Suite
	d := yaml.NewDecoder(r, yaml.UseOrderedMap(), yaml.Strict())
	for i := 0; ; i++ {
		var s Suite
		if err := d.Decode(&s); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "failed to decode YAML")
		}
		if err := s.validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid suite #%d", i)
		}
		suites = append(suites, &s)
	}
	return suites, nil
}

// LoadFiles loads the files concurrently, at most parallel at a time, and
// returns their suites in the order of paths.
func LoadFiles(ctx context.Context, paths []string, parallel int) ([]*Suite, error) {
	loaded := make([][]*Suite, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			suites, err := LoadFile(path)
			if err != nil {
				return err
			}
			loaded[i] = suites
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var suites []*Suite
	for _, ss := range loaded {
		suites = append(suites, ss...)
	}
	return suites, nil
}

func (s *Suite) validate() error {
	if s.Name == "" {
		return errors.ErrorPathf(".name", "name is required")
	}
	if _, err := strategyOf(s.Comparator); err != nil {
		return errors.WithPath(err, ".comparator")
	}
	if len(s.Cases) == 0 {
		return errors.ErrorPathf(".cases", "at least one case is required")
	}
	var errs []error
	for i, c := range s.Cases {
		if err := c.validate(); err != nil {
			errs = append(errs, errors.WithPath(err, fmt.Sprintf(".cases[%d]", i)))
		}
	}
	return errors.Errors(errs...)
}

func (c *Case) validate() error {
	if c == nil {
		return errors.ErrorPathf("", "case should not be null")
	}
	if c.Name == "" {
		return errors.ErrorPathf(".name", "name is required")
	}
	if _, ok := operations[c.Assert]; !ok {
		return errors.ErrorPathf(".assert", "unknown assertion %q", c.Assert)
	}
	switch c.Actual.(type) {
	case nil, []any:
	default:
		return errors.ErrorPathf(".actual", "actual should be a sequence but got %T", c.Actual)
	}
	switch c.Expect {
	case "":
		c.Expect = ExpectPass
	case ExpectPass, ExpectFail, ExpectError:
	default:
		return errors.ErrorPathf(".expect", "expect should be %s, %s or %s but got %q", ExpectPass, ExpectFail, ExpectError, c.Expect)
	}
	return nil
}
