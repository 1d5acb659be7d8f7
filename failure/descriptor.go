// Package failure builds the structured descriptions of failed assertions.
//
// A Descriptor is built from data an algorithm already computed and is
// rendered into a message only when a reporter needs one.
package failure

import (
	"fmt"
	"strings"

	"github.com/scenarigo/verify/comparison"
	"github.com/scenarigo/verify/internal/deepcopy"
	"github.com/scenarigo/verify/presentation"
)

// Descriptor is an immutable description of an assertion failure.
type Descriptor struct {
	kind       Kind
	actual     any
	expected   any
	missing    any
	unexpected any
	index      int
	strategy   comparison.Strategy
	named      bool
	format     string
	args       []any
	details    string
}

type field func(*Descriptor)

func withExpected(v any) field {
	return func(d *Descriptor) { d.expected = deepcopy.Snapshot(v) }
}

func withMissing(v any) field {
	return func(d *Descriptor) { d.missing = deepcopy.Snapshot(v) }
}

func withUnexpected(v any) field {
	return func(d *Descriptor) { d.unexpected = deepcopy.Snapshot(v) }
}

func withIndex(i int) field {
	return func(d *Descriptor) { d.index = i }
}

func withStrategy(s comparison.Strategy) field {
	return func(d *Descriptor) { d.strategy = s }
}

// withNamedStrategy keeps s for a message which already names its comparator.
func withNamedStrategy(s comparison.Strategy) field {
	return func(d *Descriptor) {
		d.strategy = s
		d.named = true
	}
}

func withDetails(details string) field {
	return func(d *Descriptor) { d.details = details }
}

// newDescriptor snapshots the operands. args are rendered with the
// representation in use when the message is built; string arguments meant to
// be printed verbatim must be presentation.Unquoted.
func newDescriptor(kind Kind, actual any, format string, args []any, fields ...field) *Descriptor {
	d := &Descriptor{
		kind:   kind,
		actual: deepcopy.Snapshot(actual),
		index:  -1,
		format: format,
	}
	for _, f := range fields {
		f(d)
	}
	d.args = make([]any, len(args))
	for i, arg := range args {
		d.args[i] = deepcopy.Snapshot(arg)
	}
	return d
}

// Kind returns the kind of the violation.
func (d *Descriptor) Kind() Kind { return d.kind }

// Actual returns the actual value.
func (d *Descriptor) Actual() any { return d.actual }

// Expected returns the expected value or values, if any.
func (d *Descriptor) Expected() any { return d.expected }

// Missing returns the expected values not found, if any.
func (d *Descriptor) Missing() any { return d.missing }

// Unexpected returns the values found but not expected, such as unexpected
// elements, found elements or duplicates.
func (d *Descriptor) Unexpected() any { return d.unexpected }

// Index returns the index the failure refers to, or -1.
func (d *Descriptor) Index() int { return d.index }

// Strategy returns the comparison strategy in effect.
func (d *Descriptor) Strategy() comparison.Strategy { return d.strategy }

// Render returns the failure message using rep.
func (d *Descriptor) Render(rep presentation.Representation) string {
	args := make([]any, len(d.args))
	for i, arg := range d.args {
		args[i] = rep.Format(arg)
	}
	var b strings.Builder
	fmt.Fprintf(&b, d.format, args...)
	if d.details != "" {
		b.WriteString(d.details)
	}
	if !d.strategy.IsStandard() && !d.named {
		b.WriteString(d.strategy.String())
	}
	return b.String()
}

// Error implements the error interface with the standard representation.
func (d *Descriptor) Error() string {
	return strings.TrimSuffix(d.Render(presentation.Standard()), "\n")
}

// Message builds the final failure message of d for the assertion call
// described by info. An overriding message supersedes the rendering.
func Message(info *Info, d *Descriptor, rep presentation.Representation) string {
	if msg := info.OverridingMessage(); msg != "" {
		return msg
	}
	msg := d.Render(rep)
	if desc := info.Description(); desc != "" {
		return fmt.Sprintf("[%s] %s", desc, msg)
	}
	return msg
}

// Error is an assertion failure as an error value.
type Error struct {
	Info       *Info
	Descriptor *Descriptor
	rep        presentation.Representation
}

// NewError returns the failure of d as an error.
func NewError(info *Info, d *Descriptor, rep presentation.Representation) *Error {
	return &Error{Info: info, Descriptor: d, rep: rep}
}

func (e *Error) Error() string {
	return strings.TrimSuffix(Message(e.Info, e.Descriptor, e.rep), "\n")
}
