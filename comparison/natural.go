package comparison

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/scenarigo/verify/errors"
	"github.com/scenarigo/verify/internal/reflectutil"
)

var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// naturalEqual reports whether a and b are deeply equal. Nil pointers, maps,
// slices and the like equal nil. Numbers of any kind are equal when their
// values are, as naturalCompare orders them. Types with an Equal method are
// compared with it.
func naturalEqual(a, b any) bool {
	if reflectutil.IsNil(a) || reflectutil.IsNil(b) {
		return reflectutil.IsNil(a) && reflectutil.IsNil(b)
	}
	if i, ok, err := compareNumber(a, b); ok {
		return err == nil && i == 0
	}
	return cmp.Equal(a, b, equalOptions...)
}

// naturalCompare compares a and b by their natural order: numbers of any
// kind, strings, booleans (false < true) and types with a Compare method such
// as time.Time.
func naturalCompare(a, b any) (int, error) {
	if a == nil || b == nil {
		return 0, errors.Wrapf(ErrNotComparable, "%T and %T", a, b)
	}
	if i, ok, err := compareNumber(a, b); ok {
		return i, err
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String()), nil
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return compareBool(va.Bool(), vb.Bool()), nil
	}
	if i, ok := compareByMethod(va, vb); ok {
		return i, nil
	}
	return 0, errors.Wrapf(ErrNotComparable, "%T and %T", a, b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// compareByMethod calls a.Compare(b) when a has a method of the form
// `Compare(T) int` and b is assignable to T.
func compareByMethod(a, b reflect.Value) (int, bool) {
	m := a.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	t := m.Type()
	if t.NumIn() != 1 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	if !b.Type().AssignableTo(t.In(0)) {
		return 0, false
	}
	return int(m.Call([]reflect.Value{b})[0].Int()), true
}

// compareNumber compares two numbers of any kind. The second result reports
// whether both operands were numbers. Two NaNs are equal; a single NaN can not
// be ordered.
func compareNumber(a, b any) (int, bool, error) {
	n1, ok := toNumber(a)
	if !ok {
		return 0, false, nil
	}
	n2, ok := toNumber(b)
	if !ok {
		return 0, false, nil
	}
	if isKindOfInt(n1) && isKindOfInt(n2) {
		return convertToBigInt(n1).Cmp(convertToBigInt(n2)), true, nil
	}
	f1, f2 := convertToBigFloat(n1), convertToBigFloat(n2)
	if f1 == nil && f2 == nil {
		return 0, true, nil
	}
	if f1 == nil || f2 == nil {
		return 0, true, errors.Wrapf(ErrNotComparable, "NaN can not be ordered")
	}
	return f1.Cmp(f2), true, nil
}

func toNumber(v any) (reflect.Value, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return reflect.ValueOf(i), true
		}
		if f, err := n.Float64(); err == nil {
			return reflect.ValueOf(f), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if !isKindOfInt(rv) && !isKindOfFloat(rv) {
		return reflect.Value{}, false
	}
	return rv, true
}

func isKindOfInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isKindOfFloat(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func convertToBigInt(v reflect.Value) *big.Int {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(v.Int())
	default:
		return new(big.Int).SetUint64(v.Uint())
	}
}

// convertToBigFloat returns nil for NaN.
func convertToBigFloat(v reflect.Value) *big.Float {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(v.Int())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != f {
			return nil
		}
		return big.NewFloat(f)
	default:
		return new(big.Float).SetUint64(v.Uint())
	}
}
