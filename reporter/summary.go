package reporter

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/scenarigo/verify/color"
)

// Result is the outcome of a named group of assertions.
type Result struct {
	Name     string
	Failed   bool
	Logs     []string
	Duration time.Duration
}

// Summary counts results. It is safe for concurrent use.
type Summary struct {
	mu     sync.Mutex
	passed int
	failed []string
}

// Add counts r.
func (s *Summary) Add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Failed {
		s.failed = append(s.failed, r.Name)
		return
	}
	s.passed++
}

// Failed reports whether a failed result has been added.
func (s *Summary) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failed) > 0
}

// String converts Summary to the string like below.
// 11 cases run: 9 passed, 2 failed
//
// Failed cases:
//   - fellowship/contains frodo
//   - fellowship/is sorted
func (s *Summary) String(c *color.Config) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		c = color.New()
	}
	return fmt.Sprintf(
		"\n%d cases run: %s, %s\n\n%s",
		s.passed+len(s.failed),
		c.Pass().Sprintf("%d passed", s.passed),
		c.Fail().Sprintf("%d failed", len(s.failed)),
		c.Fail().Sprint(s.failedCases()),
	)
}

func (s *Summary) failedCases() string {
	if len(s.failed) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Failed cases:\n")
	for _, name := range s.failed {
		fmt.Fprintf(&b, "\t- %s\n", name)
	}
	b.WriteString("\n")
	return b.String()
}

// Printer writes results in the format of go test.
type Printer struct {
	w       io.Writer
	colors  *color.Config
	verbose bool
}

// NewPrinter returns a Printer writing to w. Logs of passed results are
// printed only in verbose mode.
func NewPrinter(w io.Writer, c *color.Config, verbose bool) *Printer {
	if c == nil {
		c = color.New()
	}
	return &Printer{w: w, colors: c, verbose: verbose}
}

// Print writes r.
func (p *Printer) Print(r Result) error {
	if !r.Failed && !p.verbose {
		return nil
	}
	status, c := "PASS", p.colors.Pass()
	if r.Failed {
		status, c = "FAIL", p.colors.Fail()
	}
	lines := []string{c.Sprintf("--- %s: %s (%.2fs)", status, r.Name, r.Duration.Seconds())}
	for _, l := range r.Logs {
		lines = append(lines, pad(l, "    "))
	}
	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}

func pad(s string, indent string) string {
	s = strings.Trim(s, "\n")
	var b strings.Builder
	for i, l := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(l)
	}
	return b.String()
}
