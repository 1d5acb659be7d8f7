package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/scenarigo/verify/assert"
	"github.com/scenarigo/verify/color"
	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/config"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/reporter"
)

// Runner runs the cases of suites.
type Runner struct {
	cfg    *config.Config
	colors *color.Config
}

// WithConfig returns an option to set the rendering configuration.
func WithConfig(cfg *config.Config) func(*Runner) error {
	return func(r *Runner) error {
		r.cfg = cfg
		return nil
	}
}

// WithColorConfig returns an option to set the color configuration used to
// dump failed cases.
func WithColorConfig(c *color.Config) func(*Runner) error {
	return func(r *Runner) error {
		r.colors = c
		return nil
	}
}

// NewRunner returns a new runner.
func NewRunner(opts ...func(*Runner) error) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.cfg == nil {
		r.cfg = config.Default()
	}
	if r.colors == nil {
		r.colors = color.FromConfig(r.cfg)
	}
	return r, nil
}

// Run evaluates the cases of s in order. A case fails when its outcome
// differs from the one it expects.
func (r *Runner) Run(ctx context.Context, s *Suite) ([]reporter.Result, error) {
	strategy, err := strategyOf(s.Comparator)
	if err != nil {
		return nil, err
	}
	results := make([]reporter.Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.runCase(s.Name, strategy, c))
	}
	return results, nil
}

func (r *Runner) runCase(suiteName string, strategy comparison.Strategy, c *Case) reporter.Result {
	start := time.Now()
	col := reporter.NewCollector(reporter.WithConfig(r.cfg), reporter.WithColor(r.colors))
	outcome, err := evaluate(col, strategy, c)
	res := reporter.Result{
		Name:     fmt.Sprintf("%s/%s", suiteName, c.Name),
		Failed:   outcome != c.Expect,
		Logs:     col.Messages(),
		Duration: time.Since(start),
	}
	if err != nil {
		res.Logs = append(res.Logs, err.Error())
	}
	if res.Failed {
		res.Logs = append(res.Logs, fmt.Sprintf("expected %q but got %q", c.Expect, outcome))
		if b, err := r.colors.MarshalYAML(c); err == nil {
			res.Logs = append(res.Logs, string(b))
		}
	}
	return res
}

// evaluate calls the assertion of c and returns its outcome. Any returned
// error, a usage error or operands the strategy can not compare, counts as
// ExpectError.
func evaluate(col *reporter.Collector, strategy comparison.Strategy, c *Case) (Expect, error) {
	info := failure.NewInfo(failure.WithDescription("%s", c.Name))
	lists, err := assert.NewLists[any](col, assert.WithStrategy(strategy))
	if err != nil {
		return ExpectError, err
	}
	actual, _ := c.Actual.([]any)
	if c.Extract != "" && actual != nil {
		objects, err := assert.NewObjects(col, assert.WithStrategy(strategy))
		if err != nil {
			return ExpectError, err
		}
		actual, err = objects.ExtractingFromEach(info, actual, c.Extract)
		if err != nil {
			return ExpectError, err
		}
	}
	if err := operations[c.Assert](lists, info, actual, c); err != nil {
		return ExpectError, err
	}
	if col.Failed() {
		return ExpectFail, nil
	}
	return ExpectPass, nil
}
