// Package reflectutil provides views over arbitrary Go values used as
// sequences.
package reflectutil

import (
	"iter"
	"reflect"

	"github.com/scenarigo/verify/errors"
)

// Elem returns the value that the interface v contains or that the pointer v
// points to, repeatedly.
func Elem(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// IsNil reports whether v is an untyped nil or a typed nil of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsArray reports whether v is an array, a slice or a pointer to an array.
func IsArray(v any) bool {
	rv := arrayValue(reflect.ValueOf(v))
	return rv.IsValid()
}

func arrayValue(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		return rv
	default:
		return reflect.Value{}
	}
}

// ArrayValues returns the elements of the array or slice v.
// A nil slice yields an empty result.
func ArrayValues(v any) ([]any, error) {
	rv := arrayValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, errors.Usagef("", errors.ErrNotArray, "%T is not an array", v)
	}
	values := make([]any, rv.Len())
	for i := range rv.Len() {
		values[i] = rv.Index(i).Interface()
	}
	return values, nil
}

// Iterate returns a sequence over the elements of v. Arrays, slices, maps
// (keys) and range-over-func iterators are supported; channels are rejected
// because ranging over them consumes their elements.
func Iterate(v any) (iter.Seq[any], error) {
	rv := reflect.ValueOf(v)
	if av := arrayValue(rv); av.IsValid() {
		return func(yield func(any) bool) {
			for i := range av.Len() {
				if !yield(av.Index(i).Interface()) {
					return
				}
			}
		}, nil
	}
	switch rv.Kind() {
	case reflect.Map:
		return func(yield func(any) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface()) {
					return
				}
			}
		}, nil
	case reflect.Func:
		if rv.IsNil() || !rv.Type().CanSeq() {
			break
		}
		return func(yield func(any) bool) {
			for e := range rv.Seq() {
				if !yield(e.Interface()) {
					return
				}
			}
		}, nil
	}
	return nil, errors.Usagef("", errors.ErrNotIterable, "%T is not iterable", v)
}

// Len returns the length of an array, slice, map or string.
func Len(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	if av := arrayValue(rv); av.IsValid() {
		return av.Len(), true
	}
	switch rv.Kind() {
	case reflect.Map, reflect.String, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}
