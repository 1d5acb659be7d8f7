// Package errors provides the error types shared by the verify packages.
//
// Two taxonomies never mix: usage errors (programmer misuse such as a nil
// group of values to look for) are returned to the caller, while assertion
// failures always travel through a reporter as failure descriptors.
package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Sentinel usage errors. Match them with Is.
var (
	ErrValuesIsNil      = errors.New("the array of values to look for should not be nil")
	ErrValuesIsEmpty    = errors.New("the array of values to look for should not be empty")
	ErrIndexIsNil       = errors.New("index should not be nil")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrComparatorIsNil  = errors.New("the given comparator should not be nil")
	ErrNotArray         = errors.New("the object should be an array or a slice")
	ErrNotIterable      = errors.New("the object should be iterable")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotComparable    = errors.New("operands are not comparable")
)

func New(message string) error {
	return errors.New(message)
}

func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// UsageError reports a misuse of an assertion by its caller.
type UsageError struct {
	Op  string
	Err error
}

// Usage returns a usage error of the operation op caused by err.
func Usage(op string, err error) error {
	return &UsageError{Op: op, Err: errors.WithStack(err)}
}

// Usagef returns a usage error of the operation op wrapping the sentinel.
func Usagef(op string, sentinel error, format string, args ...any) error {
	return &UsageError{Op: op, Err: errors.Wrapf(sentinel, format, args...)}
}

func (e *UsageError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsage reports whether err is a usage error. Operands that can not be
// compared are a misuse as well.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue) || errors.Is(err, ErrNotComparable)
}

// ErrorPathf returns an error with the YAML path where it occurred.
func ErrorPathf(path, msg string, args ...any) error {
	return &PathError{
		Path: path,
		Err:  errors.Errorf(msg, args...),
	}
}

// WithPath adds path to err.
func WithPath(err error, path string) error {
	var pe *PathError
	if errors.As(err, &pe) {
		pe.AppendPath(path)
		return err
	}
	return &PathError{
		Err:  err,
		Path: path,
	}
}

// PathError represents an error at a path of a YAML document.
type PathError struct {
	Path string
	Err  error
}

// AppendPath prepends the parent path.
func (e *PathError) AppendPath(path string) {
	e.Path = path + e.Path
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Errors returns an error which aggregates errs. Nil errors are dropped and
// nil is returned when nothing remains.
func Errors(errs ...error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err == nil {
			continue
		}
		merr = multierror.Append(merr, err)
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = formatErrors
	return merr
}

func formatErrors(es []error) string {
	if len(es) == 1 {
		return fmt.Sprintf("1 error occurred:\n%s\n", strings.TrimLeft(es[0].Error(), "\t"))
	}

	points := make([]string, len(es))
	for i, err := range es {
		points[i] = fmt.Sprintf("%d) %s", i+1, strings.TrimLeft(err.Error(), "\t"))
	}

	return fmt.Sprintf(
		"%d errors occurred:\n%s\n",
		len(es), strings.Join(points, "\n"))
}

// Flatten returns the errors aggregated into err.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}
