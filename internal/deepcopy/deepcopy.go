// Package deepcopy snapshots operands so that a failure keeps the values seen
// at assertion time.
package deepcopy

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"
)

// Copy returns a deep copy of v.
func Copy(v any) (any, error) {
	if v == nil {
		return nil, nil //nolint:nilnil
	}
	x, err := copystructure.Copy(v)
	if err != nil {
		return nil, fmt.Errorf("deep copy failed: %w", err)
	}
	return x, nil
}

// Snapshot returns a copy of v that is not affected by later mutations of v.
// Types with unexported fields can not be deep copied; for them only the
// top-level slice or map is copied. Values that can not be copied at all are
// returned as is.
func Snapshot(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if !hasUnexportedFields(rv.Type(), map[reflect.Type]bool{}) {
		if x, err := Copy(v); err == nil {
			return x
		}
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			cp.SetMapIndex(it.Key(), it.Value())
		}
		return cp.Interface()
	default:
		return v
	}
}

func hasUnexportedFields(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || hasUnexportedFields(f.Type, seen) {
				return true
			}
		}
	case reflect.Slice, reflect.Array, reflect.Pointer:
		return hasUnexportedFields(t.Elem(), seen)
	case reflect.Map:
		return hasUnexportedFields(t.Key(), seen) || hasUnexportedFields(t.Elem(), seen)
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// the dynamic contents are unknown
		return true
	}
	return false
}
