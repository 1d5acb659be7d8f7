// Package reporter provides the ways an assertion failure becomes visible to
// the caller.
package reporter

import (
	"sync"
	"testing"

	"github.com/scenarigo/verify/color"
	"github.com/scenarigo/verify/config"
	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/failure"
	"github.com/scenarigo/verify/presentation"
)

//go:generate mockgen -destination ../mock/reporter/reporter.go -package mockreporter github.com/scenarigo/verify/reporter Reporter

// A Reporter receives every assertion failure. Report must make the failure
// observable; it is never called for passing assertions.
type Reporter interface {
	Report(info *failure.Info, d *failure.Descriptor)
}

// Func is an adaptor to allow the use of ordinary functions as reporters.
type Func func(info *failure.Info, d *failure.Descriptor)

// Report calls f(info, d).
func (f Func) Report(info *failure.Info, d *failure.Descriptor) {
	f(info, d)
}

// Option configures a reporter.
type Option func(*options)

type options struct {
	cfg     *config.Config
	colors  *color.Config
	failNow bool
}

// WithConfig sets the rendering configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithColor sets the color configuration.
func WithColor(c *color.Config) Option {
	return func(o *options) {
		o.colors = c
	}
}

// FailNow makes a test reporter stop the test at the first failure.
func FailNow() Option {
	return func(o *options) {
		o.failNow = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg == nil {
		o.cfg = config.Default()
	}
	if o.colors == nil {
		o.colors = color.FromConfig(o.cfg)
	}
	return o
}

func (o *options) message(info *failure.Info, d *failure.Descriptor) string {
	if !o.cfg.DescriptionEnabled() {
		info = failure.NewInfo(failure.WithOverridingMessage("%s", info.OverridingMessage()))
	}
	return failure.Message(info, d, presentation.New(o.cfg))
}

type testReporter struct {
	t    testing.TB
	opts *options
}

// FromT returns a reporter marking t as failed for each failure.
func FromT(t testing.TB, opts ...Option) Reporter {
	return &testReporter{t: t, opts: newOptions(opts)}
}

func (r *testReporter) Report(info *failure.Info, d *failure.Descriptor) {
	r.t.Helper()
	msg := r.opts.colors.Fail().Sprint(r.opts.message(info, d))
	if r.opts.failNow {
		r.t.Fatal(msg)
		return
	}
	r.t.Error(msg)
}

type panicReporter struct {
	opts *options
}

// Panic returns a reporter panicking with a *failure.Error.
func Panic(opts ...Option) Reporter {
	return &panicReporter{opts: newOptions(opts)}
}

func (r *panicReporter) Report(info *failure.Info, d *failure.Descriptor) {
	panic(failure.NewError(info, d, presentation.New(r.opts.cfg)))
}

// Collector records failures instead of stopping at the first one.
// It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	opts     *options
	failures []*failure.Error
}

// NewCollector returns an empty Collector.
func NewCollector(opts ...Option) *Collector {
	return &Collector{opts: newOptions(opts)}
}

// Report records the failure.
func (c *Collector) Report(info *failure.Info, d *failure.Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, failure.NewError(info, d, presentation.New(c.opts.cfg)))
}

// Failed reports whether a failure has been recorded.
func (c *Collector) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.failures) > 0
}

// Failures returns the recorded failures in order.
func (c *Collector) Failures() []*failure.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	failures := make([]*failure.Error, len(c.failures))
	copy(failures, c.failures)
	return failures
}

// Descriptors returns the descriptors of the recorded failures.
func (c *Collector) Descriptors() []*failure.Descriptor {
	failures := c.Failures()
	ds := make([]*failure.Descriptor, len(failures))
	for i, f := range failures {
		ds[i] = f.Descriptor
	}
	return ds
}

// Messages returns the rendered messages of the recorded failures.
func (c *Collector) Messages() []string {
	failures := c.Failures()
	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = c.opts.message(f.Info, f.Descriptor)
	}
	return msgs
}

// Err returns an error aggregating the recorded failures, or nil.
func (c *Collector) Err() error {
	failures := c.Failures()
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errors.Errors(errs...)
}

// Reset discards the recorded failures.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = nil
}
